// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates no valid credential was presented (401-class).
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden indicates a valid credential with insufficient ownership (403-class).
	ErrForbidden = errors.New("forbidden")

	// ErrEmailTaken indicates a unique constraint violation on signup.
	ErrEmailTaken = errors.New("email taken")

	// ErrInvalidCredentials covers both unknown email and wrong password on login.
	// A single sentinel on purpose: callers must not learn which of the two failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a token that failed signature, shape or expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
