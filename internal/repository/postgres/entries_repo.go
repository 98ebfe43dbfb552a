package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository"
)

type entriesRepo struct{ pool *pgxpool.Pool }

func (r *entriesRepo) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO entries(id, entry_date, description, amount, direction, created_at)
		 VALUES($1,$2,$3,$4,$5, now())
		 RETURNING created_at`,
		e.ID, e.Date, e.Description, e.Amount, e.Direction,
	).Scan(&e.CreatedAt)
	return e, err
}

func (r *entriesRepo) List(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, entry_date, description, amount, direction, created_at FROM entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Amount, &e.Direction, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *entriesRepo) GetByID(ctx context.Context, id string) (models.Entry, error) {
	var e models.Entry
	err := r.pool.QueryRow(ctx,
		`SELECT id, entry_date, description, amount, direction, created_at
		   FROM entries WHERE id=$1`, id,
	).Scan(&e.ID, &e.Date, &e.Description, &e.Amount, &e.Direction, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Entry{}, repository.ErrNotFound
	}
	return e, err
}

// Update rewrites every mutable field; created_at keeps the insertion time so
// the chronological ordering of the view is not disturbed by edits.
func (r *entriesRepo) Update(ctx context.Context, e models.Entry) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE entries
		    SET entry_date=$2, description=$3, amount=$4, direction=$5
		  WHERE id=$1`,
		e.ID, e.Date, e.Description, e.Amount, e.Direction,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *entriesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
