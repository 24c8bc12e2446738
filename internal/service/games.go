package service

import (
	"context"
	"errors"

	"github.com/avolchek/gamevault/internal/auth"
	"github.com/avolchek/gamevault/internal/authz"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/avolchek/gamevault/internal/repository"
)

// GameService defines operations on the game catalog and its reviews.
// Every operation takes the caller's subject and consults the policy guard
// before touching the stores.
type GameService interface {
	// Me returns the caller's own identity.
	Me(ctx context.Context, sub auth.Subject) (model.Identity, error)
	// List returns all games with nested reviews.
	List(ctx context.Context, sub auth.Subject) ([]model.Game, error)
	// CreateGame adds a game to the catalog. Games carry no owner.
	CreateGame(ctx context.Context, sub auth.Subject, title string) (*model.Game, error)
	// DeleteGame removes a game and all its reviews atomically.
	DeleteGame(ctx context.Context, sub auth.Subject, id int64) error
	// CreateReview adds a review owned by the caller.
	CreateReview(ctx context.Context, sub auth.Subject, gameID int64, content string) (*model.Review, error)
	// DeleteReview removes a review; only its owner may do so.
	DeleteReview(ctx context.Context, sub auth.Subject, id int64) error
}

type GameServiceImpl struct {
	games   repository.GameRepository
	reviews repository.ReviewRepository
}

// NewGameService constructs GameService over the domain stores.
func NewGameService(games repository.GameRepository, reviews repository.ReviewRepository) *GameServiceImpl {
	return &GameServiceImpl{games: games, reviews: reviews}
}

// Me requires an authenticated caller and echoes its identity.
func (s *GameServiceImpl) Me(_ context.Context, sub auth.Subject) (model.Identity, error) {
	if err := authz.Authorize(sub, authz.ActionRead, authz.Unowned()); err != nil {
		return model.Identity{}, err
	}
	id, _ := sub.Identity()
	return id, nil
}

// List returns the catalog; any authenticated identity may read it.
func (s *GameServiceImpl) List(ctx context.Context, sub auth.Subject) ([]model.Game, error) {
	if err := authz.Authorize(sub, authz.ActionList, authz.Unowned()); err != nil {
		return nil, err
	}
	return s.games.List(ctx)
}

// CreateGame adds an un-owned game.
func (s *GameServiceImpl) CreateGame(ctx context.Context, sub auth.Subject, title string) (*model.Game, error) {
	if err := authz.Authorize(sub, authz.ActionCreate, authz.Unowned()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errors.New("validation: empty title")
	}
	return s.games.Create(ctx, title)
}

// DeleteGame removes a game. Games have no owner, so any authenticated
// caller may delete one; the repository removes dependent reviews in the
// same transaction.
func (s *GameServiceImpl) DeleteGame(ctx context.Context, sub auth.Subject, id int64) error {
	if err := authz.Authorize(sub, authz.ActionDelete, authz.Unowned()); err != nil {
		return err
	}
	return s.games.Delete(ctx, id)
}

// CreateReview adds a review owned by the caller.
func (s *GameServiceImpl) CreateReview(ctx context.Context, sub auth.Subject, gameID int64, content string) (*model.Review, error) {
	if err := authz.Authorize(sub, authz.ActionCreate, authz.Unowned()); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("validation: empty content")
	}
	id, _ := sub.Identity()
	return s.reviews.Create(ctx, id.ID, gameID, content)
}

// DeleteReview checks ownership against the stored owner before deleting.
// A missing review is reported as not-found, distinct from forbidden.
func (s *GameServiceImpl) DeleteReview(ctx context.Context, sub auth.Subject, id int64) error {
	// Authenticate first so anonymous callers get the 401-class denial even
	// for reviews that do not exist.
	if err := authz.Authorize(sub, authz.ActionRead, authz.Unowned()); err != nil {
		return err
	}
	owner, err := s.reviews.GetOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ActionDelete, authz.OwnedBy(owner)); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}
