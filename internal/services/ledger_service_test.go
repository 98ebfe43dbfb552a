package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/events"
	"github.com/saiyeshwin/housebook-backend/internal/ledger"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository/memory"
	"github.com/saiyeshwin/housebook-backend/internal/worker"
	"github.com/shopspring/decimal"
)

type capturingPublisher struct {
	mu        sync.Mutex
	published []events.EntryMutated
}

func (p *capturingPublisher) Publish(ev events.EntryMutated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, ev)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.published))
	for i, ev := range p.published {
		out[i] = ev.Action
	}
	return out
}

func newLedgerFixture() (*LedgerService, *capturingPublisher, *worker.Pool, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)}
	pub := &capturingPublisher{}
	wp := worker.NewPool(1)
	store := memory.NewEntryStoreWithClock(clock.now)
	svc := NewLedgerService(store, pub, wp).WithClock(clock.now)
	return svc, pub, wp, clock
}

func in(date, desc, amount string, dir models.Direction) EntryInput {
	return EntryInput{
		Date:        date,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Direction:   dir,
	}
}

func TestLedgerCreateAndView(t *testing.T) {
	svc, pub, wp, clock := newLedgerFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, in("2024-01-01", "groceries income", "100", models.Credit)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clock.advance(time.Minute)
	if _, err := svc.Create(ctx, in("2024-01-02", "electricity", "40", models.Debit)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	view, err := svc.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view.Entries) != 2 {
		t.Fatalf("len = %d, want 2", len(view.Entries))
	}
	if view.Entries[0].Direction != models.Debit {
		t.Error("most recent entry must come first")
	}
	if got := view.CurrentBalance.StringFixed(2); got != "60.00" {
		t.Errorf("current balance = %s, want 60.00", got)
	}
	if view.LastActivity.State != ledger.RecencyJustNow {
		t.Errorf("last activity = %+v, want just_now", view.LastActivity)
	}

	wp.Stop() // drain async publishes before asserting
	got := pub.actions()
	if len(got) != 2 || got[0] != events.ActionCreated || got[1] != events.ActionCreated {
		t.Errorf("published events = %v", got)
	}
}

func TestLedgerEmptyView(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()

	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view.Entries) != 0 {
		t.Fatalf("len = %d, want 0", len(view.Entries))
	}
	if got := view.CurrentBalance.StringFixed(2); got != "0.00" {
		t.Errorf("current balance = %s, want 0.00", got)
	}
	if view.LastActivity.State != ledger.RecencyNone {
		t.Errorf("last activity = %+v, want none", view.LastActivity)
	}
}

func TestLedgerUpdate(t *testing.T) {
	svc, pub, wp, _ := newLedgerFixture()
	ctx := context.Background()

	e, err := svc.Create(ctx, in("2024-01-01", "rent", "500", models.Debit))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, e.ID, in("2024-01-03", "rent corrected", "550", models.Debit))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "rent corrected" || !updated.Amount.Equal(decimal.RequireFromString("550")) {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(e.CreatedAt) {
		t.Error("edit moved the entry's createdAt")
	}

	wp.Stop()
	got := pub.actions()
	if len(got) != 2 || got[1] != events.ActionUpdated {
		t.Errorf("published events = %v", got)
	}
}

func TestLedgerUpdateMissing(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()

	_, err := svc.Update(context.Background(), "no-such-id", in("2024-01-01", "x", "1", models.Credit))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLedgerDelete(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	ctx := context.Background()

	e, _ := svc.Create(ctx, in("2024-01-01", "coffee", "3.50", models.Debit))
	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete: want ErrNotFound, got %v", err)
	}

	view, _ := svc.View(ctx)
	if len(view.Entries) != 0 {
		t.Fatal("deleted entry still listed")
	}
}

func TestLedgerRejectsInvalidInput(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, in("2024-01-01", "bad dir", "5", "XX")); err == nil {
		t.Error("direction XX accepted")
	}
	if _, err := svc.Create(ctx, in("2024-01-01", "negative", "-5", models.Credit)); err == nil {
		t.Error("negative amount accepted")
	}

	view, _ := svc.View(ctx)
	if len(view.Entries) != 0 {
		t.Fatal("rejected input reached the store")
	}
}
