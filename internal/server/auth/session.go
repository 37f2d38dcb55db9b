package auth

import (
	"context"
	"errors"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/server/repositories/users"
)

// TokenPair bundles a short-lived access token with a longer-lived refresh
// token. TokenType is always "bearer".
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// Sessions orchestrates the login and refresh flows. Sessions are stateless:
// nothing is persisted per login, and a refresh token stays valid until its
// natural expiry (no single-use tracking).
type Sessions struct {
	authenticator *Authenticator
	codec         *Codec
	users         users.Repository
}

func NewSessions(authenticator *Authenticator, codec *Codec, users users.Repository) *Sessions {
	return &Sessions{authenticator: authenticator, codec: codec, users: users}
}

// Login verifies the credentials and mints a token pair. Credential failures
// surface as ErrInvalidCredentials; a correct password on a deactivated
// account surfaces as ErrInactiveAccount.
func (s *Sessions) Login(ctx context.Context, identifier, password string) (*TokenPair, error) {
	user, err := s.authenticator.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, common.ErrInactiveAccount
	}

	return s.mint(user.ID)
}

// Refresh validates a refresh token and mints a fresh pair (rotation). Any
// defect — bad signature, expiry, wrong token type, or a subject that no
// longer resolves to an active user — collapses into ErrInvalidToken.
func (s *Sessions) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if claims.TokenType != TokenTypeRefresh || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	if !user.IsActive {
		return nil, common.ErrInvalidToken
	}

	return s.mint(user.ID)
}

func (s *Sessions) mint(userID string) (*TokenPair, error) {
	access, err := s.codec.EncodeAccess(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.codec.EncodeRefresh(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}
