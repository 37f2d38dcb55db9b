package auth

import (
	"context"
	"errors"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/server/models"
)

// fakeUserRepo is an in-memory users.Repository for the tests in this
// package. failWith, when set, is returned from every lookup to simulate a
// store outage.
type fakeUserRepo struct {
	byID     map[string]*models.User
	failWith error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[string]*models.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*models.User, 0, len(r.byID))
	for _, u := range r.byID {
		result = append(result, u)
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, nickname, avatarKey string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Nickname = nickname
	u.AvatarKey = avatarKey
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id string, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.IsActive = active
	return nil
}

var errStoreDown = errors.New("store down")
