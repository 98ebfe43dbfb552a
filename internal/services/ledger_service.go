package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/events"
	"github.com/saiyeshwin/housebook-backend/internal/ledger"
	"github.com/saiyeshwin/housebook-backend/internal/metrics"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	repo "github.com/saiyeshwin/housebook-backend/internal/repository"
	"github.com/saiyeshwin/housebook-backend/internal/worker"
	"github.com/shopspring/decimal"
)

// View is what a ledger read returns: lines most-recent-first with closing
// balances attached, plus the two values the original app derived from them.
type View struct {
	Entries        []ledger.Line   `json:"entries"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	LastActivity   ledger.Recency  `json:"last_activity"`
}

// EntryInput carries the mutable fields of an entry; id and createdAt are
// never client-supplied.
type EntryInput struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Direction   models.Direction
}

// LedgerService mediates between the entries store and the ledger engine.
// Balances are recomputed from the full entry set on every read; nothing is
// cached, so concurrent edits can never leave a stale running total behind.
type LedgerService struct {
	entries repo.Entries
	pub     events.Publisher
	wp      *worker.Pool
	now     func() time.Time
}

func NewLedgerService(r repo.Entries, pub events.Publisher, wp *worker.Pool) *LedgerService {
	return &LedgerService{entries: r, pub: pub, wp: wp, now: time.Now}
}

// WithClock replaces the wall clock used for the recency value.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

func (s *LedgerService) View(ctx context.Context) (View, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return View{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	lines := ledger.ComputeView(all)
	return View{
		Entries:        lines,
		CurrentBalance: ledger.CurrentBalance(lines),
		LastActivity:   ledger.RecencySince(lines, s.now()),
	}, nil
}

func (s *LedgerService) Create(ctx context.Context, in EntryInput) (models.Entry, error) {
	e := models.Entry{
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		Direction:   in.Direction,
	}
	if err := e.Validate(); err != nil {
		return models.Entry{}, err
	}
	e, err := s.entries.Create(ctx, e)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	metrics.MutationsTotal.WithLabelValues("create").Inc()
	s.announce(events.ActionCreated, e.ID)
	return e, nil
}

func (s *LedgerService) Update(ctx context.Context, id string, in EntryInput) (models.Entry, error) {
	e := models.Entry{
		ID:          id,
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		Direction:   in.Direction,
	}
	if err := e.Validate(); err != nil {
		return models.Entry{}, err
	}
	if err := s.entries.Update(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	metrics.MutationsTotal.WithLabelValues("update").Inc()
	s.announce(events.ActionUpdated, id)
	updated, err := s.entries.GetByID(ctx, id)
	if err != nil {
		// the entry can vanish between the update and this read-back
		if errors.Is(err, repo.ErrNotFound) {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return updated, nil
}

func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	s.announce(events.ActionDeleted, id)
	return nil
}

// announce hands the event to the worker pool so a slow broker never blocks
// the request.
func (s *LedgerService) announce(action, entryID string) {
	ev := events.EntryMutated{Action: action, EntryID: entryID, OccurredAt: s.now()}
	s.wp.Submit(func() {
		if err := s.pub.Publish(ev); err != nil {
			slog.Error("publish event", "action", action, "entry_id", entryID, "err", err)
		}
	})
}
