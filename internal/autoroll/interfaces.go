package autoroll

//go:generate mockgen -destination=mock/mock_interfaces.go -package=mockautoroll -source=interfaces.go

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
)

// UseOptions are the caller's arguments to a use-item call
type UseOptions struct {
	// CreateMessage asks for the resulting record to be persisted and broadcast.
	// Nil means true.
	CreateMessage *bool `json:"createMessage,omitempty"`

	// SpellLevel overrides the slot level the item is used at
	SpellLevel *int `json:"spellLevel,omitempty"`
}

// ItemUser is the use-item operation. A nil record with a nil error means the
// use was cancelled.
type ItemUser interface {
	Use(ctx context.Context, it *item.Item, opts *UseOptions) (*chat.Record, error)
}

// Settings reads global switches by key
type Settings interface {
	Get(ctx context.Context, key string) (bool, error)
}

// FlagStore reads per-item configuration
type FlagStore interface {
	GetOverrides(ctx context.Context, itemID string) (*flags.Overrides, error)
	GetFormulaGroups(ctx context.Context, itemID string) ([]item.FormulaGroup, error)
}

// Localizer looks up display strings by key
type Localizer interface {
	Localize(key string) string
}

// FormulaInitializer makes sure an item's formula groups exist before use
type FormulaInitializer interface {
	Initialize(ctx context.Context, it *item.Item) error
}

// SnapshotSource provides the latest modifier state
type SnapshotSource interface {
	Snapshot() input.Snapshot
}
