// Package token issues and verifies signed bearer tokens.
//
// Tokens are stateless HS256 JWTs carrying only the subject user ID and
// issuance time. There is no per-token revocation: rotating the signing key
// invalidates every outstanding token at once.
package token

import (
	"errors"
	"time"

	"github.com/avolchek/gamevault/internal/errs"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies identity tokens with a symmetric key.
type Service struct {
	signKey []byte
	ttl     time.Duration // 0 disables expiry
}

// New constructs a token service. ttl == 0 issues non-expiring tokens.
func New(signKey []byte, ttl time.Duration) *Service {
	return &Service{signKey: signKey, ttl: ttl}
}

// Issue creates a signed token binding the subject and issuance time.
func (s *Service) Issue(subject uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  subject.String(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.signKey)
}

// Verify parses and validates a token and returns its subject.
// Any failure — bad signature, malformed payload, wrong algorithm, bad
// subject, expiry — collapses into errs.ErrInvalidToken so callers can treat
// the request as anonymous without inspecting the cause.
func (s *Service) Verify(raw string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errs.ErrInvalidToken
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errs.ErrInvalidToken
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrInvalidToken
	}
	return id, nil
}
