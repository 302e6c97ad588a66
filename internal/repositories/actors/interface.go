// Package actors persists actors together with the items they own.
package actors

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor with its items linked back to it
	Get(ctx context.Context, id string) (*item.Actor, error)

	// Save creates or replaces an actor
	Save(ctx context.Context, actor *item.Actor) error
}
