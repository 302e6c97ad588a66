package records

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
	"github.com/KirkDiggler/dnd-autoroll/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the record repository
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string]*chat.Record
	byActor       map[string][]string
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(gen uuid.Generator, tp TimeProvider) *InMemoryRepository {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	if tp == nil {
		tp = RealTimeProvider{}
	}
	return &InMemoryRepository{
		records:       make(map[string]*chat.Record),
		byActor:       make(map[string][]string),
		uuidGenerator: gen,
		timeProvider:  tp,
	}
}

// Create implements Repository
func (r *InMemoryRepository) Create(_ context.Context, record *chat.Record) (*chat.Record, error) {
	if record == nil {
		return nil, dnderr.InvalidArgument("record cannot be nil")
	}

	stored := cloneRecord(record)
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}
	stored.CreatedAt = r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[stored.ID]; !exists && stored.ActorID != "" {
		r.byActor[stored.ActorID] = append(r.byActor[stored.ActorID], stored.ID)
	}
	r.records[stored.ID] = stored

	return cloneRecord(stored), nil
}

// Get implements Repository
func (r *InMemoryRepository) Get(_ context.Context, id string) (*chat.Record, error) {
	if id == "" {
		return nil, repositories.NewMissingIDError("record")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, repositories.NewNotFoundError("record", id)
	}
	return cloneRecord(record), nil
}

// ListByActor implements Repository
func (r *InMemoryRepository) ListByActor(_ context.Context, actorID string) ([]*chat.Record, error) {
	if actorID == "" {
		return nil, repositories.NewMissingIDError("actor")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byActor[actorID]
	out := make([]*chat.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecord(r.records[id]))
	}
	return out, nil
}
