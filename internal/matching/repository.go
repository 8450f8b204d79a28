package matching

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrMatchNotFound = errors.New("match not found")

// Repository persists matches. The write path is transactional: WithTx
// hands the engine a MatchStore scoped to one transaction, so a failed run
// rolls back to the previous match set instead of leaving a partial one.
type Repository interface {
	WithTx(ctx context.Context, fn func(store MatchStore) error) error
	GetForUser(ctx context.Context, userID int64) (*Match, error)
	MarkRevealed(ctx context.Context, matchID int64) error
	RevealDue(ctx context.Context, now time.Time) ([]int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(ctx context.Context, fn func(store MatchStore) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(&txMatchStore{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *postgresRepository) GetForUser(ctx context.Context, userID int64) (*Match, error) {
	var match Match
	query := `
        SELECT id, user1_id, user2_id, compatibility_score, astro_breakdown,
               cosmic_description, match_type, revealed, reveal_at, created_at
        FROM matches
        WHERE user1_id = $1 OR user2_id = $1
    `

	err := r.db.QueryRowxContext(ctx, query, userID).StructScan(&match)
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}

	return &match, nil
}

func (r *postgresRepository) MarkRevealed(ctx context.Context, matchID int64) error {
	query := `UPDATE matches SET revealed = TRUE WHERE id = $1 AND revealed = FALSE`

	res, err := r.db.ExecContext(ctx, query, matchID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		RecordReveal()
	}

	return nil
}

func (r *postgresRepository) RevealDue(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
        UPDATE matches SET revealed = TRUE
        WHERE revealed = FALSE AND reveal_at IS NOT NULL AND reveal_at <= $1
        RETURNING user1_id, user2_id
    `

	rows, err := r.db.QueryxContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []int64
	for rows.Next() {
		var u1, u2 int64
		if err := rows.Scan(&u1, &u2); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, u1, u2)
		RecordReveal()
	}

	return userIDs, rows.Err()
}

// txMatchStore is the transaction-scoped store a run writes through.
type txMatchStore struct {
	tx *sqlx.Tx
}

func (s *txMatchStore) Clear(ctx context.Context) error {
	_, err := s.tx.ExecContext(ctx, `DELETE FROM matches`)
	return err
}

func (s *txMatchStore) Create(ctx context.Context, match *Match) error {
	query := `
        INSERT INTO matches (
            user1_id, user2_id, compatibility_score, astro_breakdown,
            cosmic_description, match_type, revealed, reveal_at
        ) VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
        RETURNING id, created_at
    `

	return s.tx.QueryRowxContext(
		ctx, query,
		match.User1ID, match.User2ID, match.Score, match.Breakdown,
		match.Description, match.MatchType, match.RevealAt,
	).Scan(&match.ID, &match.CreatedAt)
}
