package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/models"
)

// ErrNotFound is returned when a lookup or targeted mutation misses.
var ErrNotFound = errors.New("record not found")

// Sessions is plain token-keyed CRUD. TTL semantics (check-on-read with an
// injected clock) live in the session service so every implementation behaves
// identically; DeleteOlderThan exists so the sweep can reclaim expired rows.
type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, token string) (models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Entries is generic document CRUD over ledger entries. No ordering or
// balance guarantees; the ledger engine recomputes the view from List on
// every read.
type Entries interface {
	Create(ctx context.Context, e models.Entry) (models.Entry, error)
	List(ctx context.Context) ([]models.Entry, error)
	GetByID(ctx context.Context, id string) (models.Entry, error)
	Update(ctx context.Context, e models.Entry) error
	Delete(ctx context.Context, id string) error
}
