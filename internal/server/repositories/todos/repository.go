package todos

import (
	"context"

	"github.com/mkravets/tasktrack/internal/server/models"
)

// Repository persists todo items. All lookups are scoped by the owning user:
// a todo belonging to someone else behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	GetByID(ctx context.Context, userID, id string) (*models.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, userID, id string) error
	DeleteCompleted(ctx context.Context, userID string) (int64, error)
}
