package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	repo "github.com/saiyeshwin/housebook-backend/internal/repository"
)

// SessionService owns the token table. Expiry is absolute from creation:
// lookups never refresh it, and any record older than the TTL is treated as
// absent whether or not the sweep has reclaimed it yet.
type SessionService struct {
	sessions repo.Sessions
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(r repo.Sessions, ttl time.Duration) *SessionService {
	return &SessionService{sessions: r, ttl: ttl, now: time.Now}
}

// WithClock replaces the wall clock, so TTL behavior is testable without
// real waits.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Create issues a fresh opaque token bound to the role. Tokens are random
// UUIDv4 strings; uniqueness across live sessions follows from that.
func (s *SessionService) Create(ctx context.Context, role models.Role) (models.Session, error) {
	sess := models.Session{
		Token:     uuid.NewString(),
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return sess, nil
}

// Resolve maps a presented token back to its role. Unknown, destroyed and
// expired tokens are indistinguishable to the caller.
func (s *SessionService) Resolve(ctx context.Context, token string) (models.Role, error) {
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if s.now().Sub(sess.CreatedAt) >= s.ttl {
		return "", ErrUnauthenticated
	}
	return sess.Role, nil
}

// Destroy is idempotent; destroying an absent token is fine.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Sweep reclaims expired session records. Resolve already refuses them, so
// this only keeps the store from growing; running it or not is externally
// unobservable.
func (s *SessionService) Sweep(ctx context.Context) (int64, error) {
	return s.sessions.DeleteOlderThan(ctx, s.now().Add(-s.ttl))
}
