package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository"
)

type sessionsRepo struct{ pool *pgxpool.Pool }

func (r *sessionsRepo) Create(ctx context.Context, s models.Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions(token, role, created_at) VALUES($1,$2,$3)`,
		s.Token, s.Role, s.CreatedAt,
	)
	return err
}

func (r *sessionsRepo) Get(ctx context.Context, token string) (models.Session, error) {
	var s models.Session
	err := r.pool.QueryRow(ctx,
		`SELECT token, role, created_at FROM sessions WHERE token=$1`, token,
	).Scan(&s.Token, &s.Role, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Session{}, repository.ErrNotFound
	}
	return s, err
}

// Delete is idempotent: deleting an absent token is not an error.
func (r *sessionsRepo) Delete(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	return err
}

func (r *sessionsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
