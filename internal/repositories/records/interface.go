// Package records persists emitted chat records.
package records

import (
	"context"
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
)

// Repository defines the interface for chat record persistence
type Repository interface {
	// Create stores a record, assigning an ID when it has none and stamping CreatedAt.
	// The stored copy is returned.
	Create(ctx context.Context, record *chat.Record) (*chat.Record, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*chat.Record, error)

	// ListByActor returns the actor's records in creation order
	ListByActor(ctx context.Context, actorID string) ([]*chat.Record, error)
}

// TimeProvider allows for mocking time in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock in UTC
type RealTimeProvider struct{}

// Now returns the current time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func cloneRecord(record *chat.Record) *chat.Record {
	out := *record
	if record.SpellLevel != nil {
		level := *record.SpellLevel
		out.SpellLevel = &level
	}
	return &out
}
