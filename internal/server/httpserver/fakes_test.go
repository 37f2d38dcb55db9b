package httpserver

import (
	"context"
	"database/sql"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/dbx"
	"github.com/mkravets/tasktrack/internal/server/models"
	todosrepo "github.com/mkravets/tasktrack/internal/server/repositories/todos"
	usersrepo "github.com/mkravets/tasktrack/internal/server/repositories/users"
)

// In-memory repositories so the full HTTP stack can run under httptest
// without a database.

type fakeUsersRepo struct {
	byID map[string]*models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(_ context.Context) ([]*models.User, error) {
	result := make([]*models.User, 0, len(f.byID))
	for _, u := range f.byID {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUsersRepo) UpdateProfile(_ context.Context, id string, nickname, avatarKey string) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Nickname = nickname
	u.AvatarKey = avatarKey
	return nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id string, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUsersRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.IsActive = active
	return nil
}

type fakeTodosRepo struct {
	byID map[string]*models.Todo
}

func newFakeTodosRepo() *fakeTodosRepo {
	return &fakeTodosRepo{byID: make(map[string]*models.Todo)}
}

func (f *fakeTodosRepo) Create(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	f.byID[todo.ID] = todo
	return todo, nil
}

func (f *fakeTodosRepo) GetByID(_ context.Context, userID, id string) (*models.Todo, error) {
	td, ok := f.byID[id]
	if !ok || td.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return td, nil
}

func (f *fakeTodosRepo) ListByUser(_ context.Context, userID string) ([]*models.Todo, error) {
	var result []*models.Todo
	for _, td := range f.byID {
		if td.UserID == userID {
			result = append(result, td)
		}
	}
	return result, nil
}

func (f *fakeTodosRepo) Update(_ context.Context, todo *models.Todo) error {
	existing, ok := f.byID[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return common.ErrorNotFound
	}
	f.byID[todo.ID] = todo
	return nil
}

func (f *fakeTodosRepo) Delete(_ context.Context, userID, id string) error {
	td, ok := f.byID[id]
	if !ok || td.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTodosRepo) DeleteCompleted(_ context.Context, userID string) (int64, error) {
	var deleted int64
	for id, td := range f.byID {
		if td.UserID == userID && td.Completed {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	td *fakeTodosRepo
}

func (m *fakeRepoManager) DriverName() string                           { return "sqlite" }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Todos(dbx.DBTX) todosrepo.Repository          { return m.td }
