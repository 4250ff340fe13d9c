// Package common defines shared constants and sentinel errors used across
// taskkeeper layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Registration conflicts. Both wrap ErrConflict.
	ErrConflict      = errors.New("conflict")
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)

	// Login errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrorUnauthorized is what every token rejection collapses to at the API
	// boundary. The specific cause stays wrapped alongside it.
	ErrorUnauthorized = errors.New("unauthorized")

	// Token errors.
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenBlacklisted = errors.New("token is blacklisted")
	ErrWrongTokenType   = errors.New("wrong token type")

	// Logout on a token whose jti is already revoked.
	ErrAlreadyLoggedOut = errors.New("already logged out")
)

// Unauthorized wraps cause so that errors.Is matches both ErrorUnauthorized
// and the cause.
func Unauthorized(cause error) error {
	return fmt.Errorf("%w: %w", ErrorUnauthorized, cause)
}
