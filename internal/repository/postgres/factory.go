package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/saiyeshwin/housebook-backend/internal/repository"
)

type Repositories struct {
	Sessions repo.Sessions
	Entries  repo.Entries
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Sessions: &sessionsRepo{pool},
		Entries:  &entriesRepo{pool},
	}
}
