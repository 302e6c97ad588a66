package flags

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
)

type entry struct {
	overrides *Overrides
	groups    []item.FormulaGroup
}

// InMemoryRepository is an in-memory implementation of the flag repository
// Useful for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]*entry),
	}
}

// GetOverrides implements Repository
func (r *InMemoryRepository) GetOverrides(_ context.Context, itemID string) (*Overrides, error) {
	if itemID == "" {
		return nil, repositories.NewMissingIDError("item")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[itemID]
	if !ok {
		return &Overrides{}, nil
	}
	return e.overrides.clone(), nil
}

// SetOverrides implements Repository
func (r *InMemoryRepository) SetOverrides(_ context.Context, itemID string, overrides *Overrides) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}
	if overrides == nil {
		return dnderr.InvalidArgument("overrides cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry(itemID).overrides = overrides.clone()
	return nil
}

// GetFormulaGroups implements Repository
func (r *InMemoryRepository) GetFormulaGroups(_ context.Context, itemID string) ([]item.FormulaGroup, error) {
	if itemID == "" {
		return nil, repositories.NewMissingIDError("item")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[itemID]
	if !ok {
		return nil, nil
	}
	return cloneGroups(e.groups), nil
}

// SetFormulaGroups implements Repository
func (r *InMemoryRepository) SetFormulaGroups(_ context.Context, itemID string, groups []item.FormulaGroup) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}
	if groups == nil {
		groups = []item.FormulaGroup{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry(itemID).groups = cloneGroups(groups)
	return nil
}

// Delete implements Repository
func (r *InMemoryRepository) Delete(_ context.Context, itemID string) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, itemID)
	return nil
}

// entry must be called with the write lock held
func (r *InMemoryRepository) entry(itemID string) *entry {
	e, ok := r.entries[itemID]
	if !ok {
		e = &entry{overrides: &Overrides{}}
		r.entries[itemID] = e
	}
	return e
}
