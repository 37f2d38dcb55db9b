// Package common defines shared constants and sentinel errors used across
// the layers of tasktrack. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication errors. ErrInvalidCredentials deliberately covers both
	// "no such user" and "wrong password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrForbidden          = errors.New("forbidden")

	// Token errors (malformed, bad signature, expired, or wrong type).
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors.
	ErrWeakPassword = errors.New("password does not meet policy")
)
