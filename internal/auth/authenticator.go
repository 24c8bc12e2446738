package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/repository"
	"github.com/avolchek/gamevault/internal/token"
)

// Authenticator turns a raw Authorization header into a Subject.
//
// A missing, malformed, invalid or orphaned token degrades to anonymous
// rather than failing the request; many operations (signup, login) are
// legitimately unauthenticated and the rest enforce their own requirement.
// Only a credential-store failure is surfaced as an error.
type Authenticator struct {
	tokens *token.Service
	users  repository.UserRepository
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(tokens *token.Service, users repository.UserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate derives the subject for a request given its Authorization
// header value. A token that verifies is additionally checked against the
// credential store: a token for a deleted account must never grant identity.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (Subject, error) {
	raw, ok := bearerToken(header)
	if !ok {
		return Anonymous(), nil
	}

	subjectID, err := a.tokens.Verify(raw)
	if err != nil {
		return Anonymous(), nil
	}

	u, err := a.users.GetByID(ctx, subjectID)
	switch {
	case err == nil:
		return Authenticated(u.Identity()), nil
	case errors.Is(err, errs.ErrNotFound):
		// verified but orphaned: the account is gone
		return Anonymous(), nil
	default:
		return Anonymous(), err
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, bool) {
	v := strings.TrimSpace(header)
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") {
		return "", false
	}
	t := strings.TrimSpace(v[7:])
	return t, t != ""
}
