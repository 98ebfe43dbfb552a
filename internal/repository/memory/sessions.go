// Package memory holds mutex-guarded in-process implementations of the
// repository interfaces, used by the tests and by storeless dev runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository"
)

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]models.Session)}
}

func (m *SessionStore) Create(ctx context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = s
	return nil
}

func (m *SessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return models.Session{}, repository.ErrNotFound
	}
	return s, nil
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *SessionStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for token, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

var _ repository.Sessions = (*SessionStore)(nil)
