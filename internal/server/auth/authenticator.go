package auth

import (
	"context"
	"errors"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/server/models"
	"github.com/mkravets/tasktrack/internal/server/repositories/users"
)

// Authenticator verifies credentials against the user store.
type Authenticator struct {
	users  users.Repository
	hasher *Hasher
}

func NewAuthenticator(users users.Repository, hasher *Hasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Authenticate looks the user up by username, falling back to email (the
// identifier is deliberately ambiguous; callers may pass either), and
// verifies the password. A missing user and a wrong password both return
// ErrInvalidCredentials so the caller cannot tell accounts apart.
//
// The active flag is NOT checked here: "wrong credentials" and "inactive
// account" stay distinguishable failure reasons for the layers above.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := a.users.GetByUsername(ctx, identifier)
	if errors.Is(err, common.ErrorNotFound) {
		user, err = a.users.GetByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}
