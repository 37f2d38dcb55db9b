package auth

import (
	"context"
	"errors"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/server/models"
	"github.com/mkravets/tasktrack/internal/server/repositories/users"
)

// Resolver turns a bearer token into the current user and gates access on
// account state. Resolve, RequireActive and RequireSuperuser compose in
// sequence on protected routes; each is independently testable.
type Resolver struct {
	codec *Codec
	users users.Repository
}

func NewResolver(codec *Codec, users users.Repository) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve decodes the bearer token and loads the user it names. Missing
// token, failed decode, refresh tokens presented as access tokens, an empty
// subject, and an unknown subject all collapse into ErrUnauthenticated.
func (r *Resolver) Resolve(ctx context.Context, bearerToken string) (*models.User, error) {
	if bearerToken == "" {
		return nil, common.ErrUnauthenticated
	}

	claims, err := r.codec.Decode(bearerToken)
	if err != nil {
		return nil, common.ErrUnauthenticated
	}
	if claims.TokenType == TokenTypeRefresh {
		return nil, common.ErrUnauthenticated
	}
	if claims.Subject == "" {
		return nil, common.ErrUnauthenticated
	}

	user, err := r.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// RequireActive fails with ErrInactiveAccount for deactivated users.
func (r *Resolver) RequireActive(user *models.User) error {
	if !user.IsActive {
		return common.ErrInactiveAccount
	}
	return nil
}

// RequireSuperuser fails with ErrForbidden for non-admin users.
func (r *Resolver) RequireSuperuser(user *models.User) error {
	if !user.IsSuperuser {
		return common.ErrForbidden
	}
	return nil
}
