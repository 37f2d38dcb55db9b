package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/tasktrack/internal/dbx"
	"github.com/mkravets/tasktrack/internal/server/models"
	"github.com/mkravets/tasktrack/internal/server/repositories/repomanager"
)

// TodoService provides per-user CRUD over todo items. Every operation is
// scoped by the owning user id; a todo owned by someone else is
// indistinguishable from a missing one.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// Create stores a new, not-yet-completed todo for the user.
func (s *TodoService) Create(ctx context.Context, userID, title, description string) (*models.Todo, error) {
	now := time.Now().UTC()
	todo := &models.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repomanager.Todos(s.db).Create(ctx, todo)
}

// Get returns the user's todo with the given id.
func (s *TodoService) Get(ctx context.Context, userID, id string) (*models.Todo, error) {
	return s.repomanager.Todos(s.db).GetByID(ctx, userID, id)
}

// List returns all of the user's todos in creation order.
func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	return s.repomanager.Todos(s.db).ListByUser(ctx, userID)
}

// Update replaces the title, description and completion state of the user's
// todo and returns the updated item.
func (s *TodoService) Update(ctx context.Context, userID, id, title, description string, completed bool) (*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	todo, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.Description = description
	todo.Completed = completed
	todo.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes the user's todo.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Todos(s.db).Delete(ctx, userID, id)
}

// ClearCompleted removes all of the user's completed todos in a single
// transaction and reports how many were deleted.
func (s *TodoService) ClearCompleted(ctx context.Context, userID string) (int64, error) {
	var deleted int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		deleted, txErr = s.repomanager.Todos(tx).DeleteCompleted(ctx, userID)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
