package settings

import (
	"context"
	"maps"
	"sync"
)

// InMemoryRepository is an in-memory implementation of the settings repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	defaults map[string]bool
	values   map[string]bool
}

// NewInMemoryRepository creates a new in-memory repository with the given defaults
func NewInMemoryRepository(defaults map[string]bool) *InMemoryRepository {
	return &InMemoryRepository{
		defaults: maps.Clone(defaults),
		values:   make(map[string]bool),
	}
}

// Get implements Repository
func (r *InMemoryRepository) Get(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, known := r.defaults[key]
	if !known {
		return false, unknownKey(key)
	}
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// Set implements Repository
func (r *InMemoryRepository) Set(_ context.Context, key string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.defaults[key]; !known {
		return unknownKey(key)
	}
	r.values[key] = value
	return nil
}

// All implements Repository
func (r *InMemoryRepository) All(_ context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]bool, len(r.defaults))
	maps.Copy(out, r.defaults)
	maps.Copy(out, r.values)
	return out, nil
}
