package events

import "time"

const (
	ActionCreated = "entry.created"
	ActionUpdated = "entry.updated"
	ActionDeleted = "entry.deleted"
)

// EntryMutated announces a committed ledger mutation to whoever listens
// (nothing in this service consumes them; they exist for household dashboards
// and the like).
type EntryMutated struct {
	Action     string    `json:"action"`
	EntryID    string    `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(event EntryMutated) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(EntryMutated) error { return nil }
func (Noop) Close() error               { return nil }
