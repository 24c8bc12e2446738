package postgres

import (
	"context"
	"errors"

	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ReviewRepo implements ReviewRepository using PostgreSQL.
type ReviewRepo struct{ db *DB }

// NewReviewRepo constructs a review repository.
func NewReviewRepo(db *DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review row and returns it with the author email filled in.
func (r *ReviewRepo) Create(ctx context.Context, userID uuid.UUID, gameID int64, content string) (*model.Review, error) {
	const q = `
INSERT INTO reviews (game_id, user_id, content)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	rv := model.Review{GameID: gameID, UserID: userID, Content: content}
	if err := r.db.Pool.QueryRow(ctx, q, gameID, userID, content).Scan(&rv.ID, &rv.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	const qEmail = `SELECT email FROM users WHERE id=$1`
	if err := r.db.Pool.QueryRow(ctx, qEmail, userID).Scan(&rv.AuthorEmail); err != nil {
		return nil, err
	}
	return &rv, nil
}

// GetOwner returns the owning user id of a review.
func (r *ReviewRepo) GetOwner(ctx context.Context, id int64) (uuid.UUID, error) {
	const q = `SELECT user_id FROM reviews WHERE id=$1`
	var owner uuid.UUID
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, errs.ErrNotFound
		}
		return uuid.Nil, err
	}
	return owner, nil
}

// Delete removes a review row.
func (r *ReviewRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM reviews WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
