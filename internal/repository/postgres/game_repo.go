package postgres

import (
	"context"
	"errors"

	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/jackc/pgx/v5"
)

// GameRepo implements GameRepository using PostgreSQL.
type GameRepo struct{ db *DB }

// NewGameRepo constructs a game repository.
func NewGameRepo(db *DB) *GameRepo { return &GameRepo{db: db} }

// List returns all games with their reviews, ordered by id.
func (r *GameRepo) List(ctx context.Context) ([]model.Game, error) {
	const qGames = `SELECT id, title FROM games ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, qGames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []model.Game{}
	idx := map[int64]int{}
	for rows.Next() {
		var g model.Game
		if err = rows.Scan(&g.ID, &g.Title); err != nil {
			return nil, err
		}
		g.Reviews = []model.Review{}
		idx[g.ID] = len(games)
		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	const qReviews = `
SELECT r.id, r.game_id, r.user_id, u.email, r.content, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id
ORDER BY r.id ASC`
	rrows, err := r.db.Pool.Query(ctx, qReviews)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()

	for rrows.Next() {
		var rv model.Review
		if err = rrows.Scan(&rv.ID, &rv.GameID, &rv.UserID, &rv.AuthorEmail, &rv.Content, &rv.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := idx[rv.GameID]; ok {
			games[i].Reviews = append(games[i].Reviews, rv)
		}
	}
	return games, rrows.Err()
}

// Create inserts a new game row.
func (r *GameRepo) Create(ctx context.Context, title string) (*model.Game, error) {
	const q = `INSERT INTO games (title) VALUES ($1) RETURNING id`
	var g model.Game
	g.Title = title
	g.Reviews = []model.Review{}
	if err := r.db.Pool.QueryRow(ctx, q, title).Scan(&g.ID); err != nil {
		return nil, err
	}
	return &g, nil
}

// Delete removes a game and its reviews in one transaction.
// The game row is locked first so a concurrent review insert cannot slip
// between the review sweep and the game delete.
func (r *GameRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const sel = `SELECT id FROM games WHERE id=$1 FOR UPDATE`
	const delReviews = `DELETE FROM reviews WHERE game_id=$1`
	const delGame = `DELETE FROM games WHERE id=$1`

	var gid int64
	if err = tx.QueryRow(ctx, sel, id).Scan(&gid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	if _, err = tx.Exec(ctx, delReviews, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, delGame, id); err != nil {
		return err
	}
	return nil
}
