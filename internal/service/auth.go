// Package service contains application services for authentication and the game catalog.
package service

import (
	"context"
	"errors"

	pkgcrypto "github.com/avolchek/gamevault/internal/crypto"
	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/limiter"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/avolchek/gamevault/internal/repository"
	"github.com/avolchek/gamevault/internal/token"
	"github.com/gofrs/uuid/v5"
)

// AuthService orchestrates signup and login: credential hashing, persistence
// and token issuance.
type AuthService interface {
	// Signup creates a new account and returns its identity with a fresh token.
	Signup(ctx context.Context, email, password string) (model.Identity, string, error)
	// LoginWithIP applies rate-limiting and authenticates the user.
	LoginWithIP(ctx context.Context, email, password, ip string) (model.Identity, string, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Service, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim}
}

// Signup creates a new user record with a per-user salt and issues a token.
// A duplicate email surfaces as errs.ErrEmailTaken from the store's unique
// constraint; there is no read-then-write race window.
func (s *AuthServiceImpl) Signup(ctx context.Context, email, password string) (model.Identity, string, error) {
	if email == "" || password == "" {
		return model.Identity{}, "", errors.New("empty email/password")
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.Identity{}, "", err
	}
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		return model.Identity{}, "", err
	}

	u := &model.User{
		ID:       uid,
		Email:    email,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		SaltAuth: salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return model.Identity{}, "", err
	}

	tok, err := s.tokens.Issue(uid)
	if err != nil {
		return model.Identity{}, "", err
	}
	return u.Identity(), tok, nil
}

// LoginWithIP authenticates with rate limiting by (email, ip).
// Unknown email and wrong password both yield errs.ErrInvalidCredentials so
// callers cannot enumerate accounts.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, email, password, ip string) (model.Identity, string, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Identity{}, "", err
	}
	if !allowed {
		return model.Identity{}, "", errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		// Record failure; if threshold reached — return rate-limited.
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return model.Identity{}, "", errs.ErrRateLimited
		}
		// lookup miss and wrong password collapse into one error
		return model.Identity{}, "", errs.ErrInvalidCredentials
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, email, ipHash)

	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return model.Identity{}, "", err
	}
	return u.Identity(), tok, nil
}
