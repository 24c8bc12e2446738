// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/avolchek/gamevault/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository is the credential store: durable user records with hashed secrets.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields errs.ErrEmailTaken.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
