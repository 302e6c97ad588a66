package actors

import (
	"context"
	"encoding/json"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
)

// InMemoryRepository is an in-memory implementation of the actor repository.
// Actors are stored encoded so callers never share item pointers with the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		actors: make(map[string][]byte),
	}
}

// Get implements Repository
func (r *InMemoryRepository) Get(_ context.Context, id string) (*item.Actor, error) {
	if id == "" {
		return nil, repositories.NewMissingIDError("actor")
	}

	r.mu.RLock()
	data, ok := r.actors[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repositories.NewNotFoundError("actor", id)
	}

	var actor item.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to decode actor "+id)
	}
	actor.Link()
	return &actor, nil
}

// Save implements Repository
func (r *InMemoryRepository) Save(_ context.Context, actor *item.Actor) error {
	if actor == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return repositories.NewMissingIDError("actor")
	}

	data, err := json.Marshal(actor)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to encode actor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.actors[actor.ID] = data
	return nil
}
