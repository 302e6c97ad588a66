// Package itemroll performs the individual rolls an item can make.
package itemroll

//go:generate mockgen -destination=mock/mock_roller.go -package=mockitemroll -source=roller.go

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
)

// CheckOptions configures an attack roll or tool check
type CheckOptions struct {
	Modifiers input.Snapshot

	// ChatMessage emits the roll as a chat record of its own
	ChatMessage bool
}

// DamageOptions configures a damage or healing roll
type DamageOptions struct {
	Modifiers input.Snapshot

	// SpellLevel is the slot level the item was used at, nil for the base level
	SpellLevel *int

	// FormulaGroup selects one of the item's formula groups, nil rolls every part
	FormulaGroup *int
}

// FormulaOptions configures a roll of the item's freeform formula
type FormulaOptions struct {
	Modifiers input.Snapshot
}

// Roller rolls on behalf of an item. Damage and formula rolls are always
// emitted to chat.
type Roller interface {
	RollAttack(ctx context.Context, it *item.Item, opts CheckOptions) (*rolls.Roll, error)
	RollToolCheck(ctx context.Context, it *item.Item, opts CheckOptions) (*rolls.Roll, error)
	RollDamage(ctx context.Context, it *item.Item, opts DamageOptions) (*rolls.Roll, error)
	RollFormula(ctx context.Context, it *item.Item, opts FormulaOptions) (*rolls.Roll, error)
}

// GroupSource reads an item's configured formula groups
type GroupSource interface {
	GetFormulaGroups(ctx context.Context, itemID string) ([]item.FormulaGroup, error)
}

// Localizer looks up display strings by key
type Localizer interface {
	Localize(key string) string
}
