package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/repository"
)

type EntryStore struct {
	mu      sync.Mutex
	entries map[string]models.Entry
	now     func() time.Time
}

func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make(map[string]models.Entry), now: time.Now}
}

// NewEntryStoreWithClock pins the createdAt clock, so tests can place entries
// at exact insertion times.
func NewEntryStoreWithClock(now func() time.Time) *EntryStore {
	return &EntryStore{entries: make(map[string]models.Entry), now: now}
}

func (m *EntryStore) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = m.now()
	m.entries[e.ID] = e
	return e, nil
}

// List returns a copy in no particular order; ordering belongs to the ledger
// engine.
func (m *EntryStore) List(ctx context.Context) ([]models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *EntryStore) GetByID(ctx context.Context, id string) (models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return models.Entry{}, repository.ErrNotFound
	}
	return e, nil
}

func (m *EntryStore) Update(ctx context.Context, e models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.entries[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	e.CreatedAt = prev.CreatedAt // edits never move an entry in time
	m.entries[e.ID] = e
	return nil
}

func (m *EntryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

var _ repository.Entries = (*EntryStore)(nil)
