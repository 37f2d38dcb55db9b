package users

import (
	"context"

	"github.com/mkravets/tasktrack/internal/server/models"
)

// Repository is the persistence contract the authentication core depends on.
// Implementations return common.ErrorNotFound for missing rows and
// common.ErrorAlreadyExists for unique-constraint violations.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, id string, nickname, avatarKey string) error
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
}
