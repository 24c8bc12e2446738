package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolchek/gamevault/internal/auth"
	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/avolchek/gamevault/internal/repository"
	"github.com/gofrs/uuid/v5"
)

type fakeGames struct {
	games   map[int64]*model.Game
	nextID  int64
	listErr error
}

var _ repository.GameRepository = (*fakeGames)(nil)

func (f *fakeGames) List(context.Context) ([]model.Game, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.Game{}
	for _, g := range f.games {
		out = append(out, *g)
	}
	return out, nil
}
func (f *fakeGames) Create(_ context.Context, title string) (*model.Game, error) {
	if f.games == nil {
		f.games = map[int64]*model.Game{}
	}
	f.nextID++
	g := &model.Game{ID: f.nextID, Title: title, Reviews: []model.Review{}}
	f.games[g.ID] = g
	return g, nil
}
func (f *fakeGames) Delete(_ context.Context, id int64) error {
	if _, ok := f.games[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.games, id)
	return nil
}

type fakeReviews struct {
	reviews map[int64]*model.Review
	nextID  int64
}

var _ repository.ReviewRepository = (*fakeReviews)(nil)

func (f *fakeReviews) Create(_ context.Context, userID uuid.UUID, gameID int64, content string) (*model.Review, error) {
	if f.reviews == nil {
		f.reviews = map[int64]*model.Review{}
	}
	f.nextID++
	rv := &model.Review{ID: f.nextID, GameID: gameID, UserID: userID, Content: content, CreatedAt: time.Now()}
	f.reviews[rv.ID] = rv
	return rv, nil
}
func (f *fakeReviews) GetOwner(_ context.Context, id int64) (uuid.UUID, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return uuid.Nil, errs.ErrNotFound
	}
	return rv.UserID, nil
}
func (f *fakeReviews) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func authed(id uuid.UUID) auth.Subject {
	return auth.Authenticated(model.Identity{ID: id, Email: "u@x.com"})
}

func TestGames_AnonymousDeniedEverywhere(t *testing.T) {
	t.Parallel()

	s := NewGameService(&fakeGames{}, &fakeReviews{})
	ctx := context.Background()
	anon := auth.Anonymous()

	if _, err := s.Me(ctx, anon); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("Me: want ErrUnauthenticated, got %v", err)
	}
	if _, err := s.List(ctx, anon); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("List: want ErrUnauthenticated, got %v", err)
	}
	if _, err := s.CreateGame(ctx, anon, "t"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("CreateGame: want ErrUnauthenticated, got %v", err)
	}
	if err := s.DeleteGame(ctx, anon, 1); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("DeleteGame: want ErrUnauthenticated, got %v", err)
	}
	if _, err := s.CreateReview(ctx, anon, 1, "c"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("CreateReview: want ErrUnauthenticated, got %v", err)
	}
	if err := s.DeleteReview(ctx, anon, 1); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("DeleteReview: want ErrUnauthenticated, got %v", err)
	}
}

func TestGames_Me(t *testing.T) {
	t.Parallel()

	s := NewGameService(&fakeGames{}, &fakeReviews{})
	uid := uuid.Must(uuid.NewV4())

	id, err := s.Me(context.Background(), authed(uid))
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if id.ID != uid {
		t.Fatalf("Me returned %s, want %s", id.ID, uid)
	}
}

func TestGames_CreateAndListAndDelete(t *testing.T) {
	t.Parallel()

	games := &fakeGames{}
	s := NewGameService(games, &fakeReviews{})
	ctx := context.Background()
	sub := authed(uuid.Must(uuid.NewV4()))

	if _, err := s.CreateGame(ctx, sub, ""); err == nil {
		t.Fatalf("want validation error on empty title")
	}

	g, err := s.CreateGame(ctx, sub, "Hades")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	list, err := s.List(ctx, sub)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: %v, n=%d", err, len(list))
	}

	// un-owned aggregate: any authenticated identity may delete
	other := authed(uuid.Must(uuid.NewV4()))
	if err := s.DeleteGame(ctx, other, g.ID); err != nil {
		t.Fatalf("DeleteGame by non-creator: %v", err)
	}
	if err := s.DeleteGame(ctx, other, g.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestGames_ReviewOwnership(t *testing.T) {
	t.Parallel()

	reviews := &fakeReviews{}
	s := NewGameService(&fakeGames{}, reviews)
	ctx := context.Background()

	userA := uuid.Must(uuid.NewV4())
	userB := uuid.Must(uuid.NewV4())

	rv, err := s.CreateReview(ctx, authed(userA), 1, "solid")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if rv.UserID != userA {
		t.Fatalf("review owner = %s, want %s", rv.UserID, userA)
	}

	// B attempts delete -> forbidden, review survives
	if err := s.DeleteReview(ctx, authed(userB), rv.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("delete by stranger: want ErrForbidden, got %v", err)
	}
	if _, err := reviews.GetOwner(ctx, rv.ID); err != nil {
		t.Fatalf("review must survive a forbidden delete: %v", err)
	}

	// A deletes -> ok; second delete -> not found
	if err := s.DeleteReview(ctx, authed(userA), rv.ID); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if err := s.DeleteReview(ctx, authed(userA), rv.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestGames_CreateReview_Validation(t *testing.T) {
	t.Parallel()

	s := NewGameService(&fakeGames{}, &fakeReviews{})
	if _, err := s.CreateReview(context.Background(), authed(uuid.Must(uuid.NewV4())), 1, ""); err == nil {
		t.Fatalf("want validation error on empty content")
	}
}
