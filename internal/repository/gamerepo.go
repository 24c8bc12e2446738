package repository

import (
	"context"

	"github.com/avolchek/gamevault/internal/model"
	"github.com/gofrs/uuid/v5"
)

// GameRepository provides access to games and their nested reviews.
type GameRepository interface {
	// List returns all games with their reviews (including author emails).
	List(ctx context.Context) ([]model.Game, error)
	// Create inserts a new game.
	Create(ctx context.Context, title string) (*model.Game, error)
	// Delete removes a game and all its reviews in a single transaction.
	// Either the game row and every dependent review go, or nothing does.
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository provides access to user-owned reviews.
type ReviewRepository interface {
	// Create inserts a review for an existing game; unknown game yields errs.ErrNotFound.
	Create(ctx context.Context, userID uuid.UUID, gameID int64, content string) (*model.Review, error)
	// GetOwner returns the owning user of a review.
	GetOwner(ctx context.Context, id int64) (uuid.UUID, error)
	// Delete removes a review.
	Delete(ctx context.Context, id int64) error
}
