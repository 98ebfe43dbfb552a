package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository/memory"
)

// fakeClock makes TTL behavior testable without waiting.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newSessionFixture(ttl time.Duration) (*SessionService, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewSessionService(memory.NewSessionStore(), ttl).WithClock(clock.now)
	return svc, clock
}

func TestSessionResolvesUntilDestroyed(t *testing.T) {
	svc, _ := newSessionFixture(time.Hour)
	ctx := context.Background()

	sess, err := svc.Create(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("empty token issued")
	}

	role, err := svc.Resolve(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if role != models.RoleAdmin {
		t.Fatalf("role = %q, want Admin", role)
	}

	if err := svc.Destroy(ctx, sess.Token); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := svc.Resolve(ctx, sess.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("destroyed token resolved: %v", err)
	}
}

func TestSessionExpiresAbsolutely(t *testing.T) {
	svc, clock := newSessionFixture(time.Hour)
	ctx := context.Background()

	sess, err := svc.Create(ctx, models.RoleViewer)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// lookups must not slide the expiry
	clock.advance(59 * time.Minute)
	if _, err := svc.Resolve(ctx, sess.Token); err != nil {
		t.Fatalf("Resolve before TTL: %v", err)
	}
	clock.advance(time.Minute)
	if _, err := svc.Resolve(ctx, sess.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Resolve at TTL: want ErrUnauthenticated, got %v", err)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	svc, _ := newSessionFixture(time.Hour)
	ctx := context.Background()

	if err := svc.Destroy(ctx, "never-issued"); err != nil {
		t.Fatalf("Destroy of unknown token: %v", err)
	}

	sess, _ := svc.Create(ctx, models.RoleViewer)
	if err := svc.Destroy(ctx, sess.Token); err != nil {
		t.Fatalf("first Destroy: %v", err)
	}
	if err := svc.Destroy(ctx, sess.Token); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
}

func TestUnknownTokensAllResolveTheSame(t *testing.T) {
	svc, clock := newSessionFixture(time.Hour)
	ctx := context.Background()

	expired, _ := svc.Create(ctx, models.RoleAdmin)
	clock.advance(2 * time.Hour)

	for _, token := range []string{"", "well-formed-but-never-issued", expired.Token} {
		if _, err := svc.Resolve(ctx, token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Resolve(%q): want ErrUnauthenticated, got %v", token, err)
		}
	}
}

func TestSweepReclaimsOnlyExpired(t *testing.T) {
	svc, clock := newSessionFixture(time.Hour)
	ctx := context.Background()

	old, _ := svc.Create(ctx, models.RoleViewer)
	clock.advance(90 * time.Minute)
	fresh, _ := svc.Create(ctx, models.RoleAdmin)

	n, err := svc.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("Sweep reclaimed %d records, want 1", n)
	}

	if _, err := svc.Resolve(ctx, old.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Error("swept token still resolves")
	}
	if _, err := svc.Resolve(ctx, fresh.Token); err != nil {
		t.Errorf("live token swept: %v", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	svc, _ := newSessionFixture(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := svc.Create(ctx, models.RoleViewer)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[sess.Token] {
			t.Fatalf("duplicate token issued: %s", sess.Token)
		}
		seen[sess.Token] = true
	}
}
