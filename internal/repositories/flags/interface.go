// Package flags stores per-item auto-roll overrides and formula groups.
package flags

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// Overrides are per-item auto-roll switches. A nil field defers to the global setting.
type Overrides struct {
	AutoRollCheck  *bool `json:"autoRollAttack,omitempty"`
	AutoRollDamage *bool `json:"autoRollDamage,omitempty"`
	AutoRollOther  *bool `json:"autoRollOther,omitempty"`
}

// Repository defines the interface for item flag persistence
type Repository interface {
	// GetOverrides returns the item's overrides, empty when none were set
	GetOverrides(ctx context.Context, itemID string) (*Overrides, error)

	// SetOverrides replaces the item's overrides
	SetOverrides(ctx context.Context, itemID string, overrides *Overrides) error

	// GetFormulaGroups returns the item's formula groups in display order, nil when
	// the item was never initialized
	GetFormulaGroups(ctx context.Context, itemID string) ([]item.FormulaGroup, error)

	// SetFormulaGroups replaces the item's formula groups
	SetFormulaGroups(ctx context.Context, itemID string, groups []item.FormulaGroup) error

	// Delete removes every flag of the item
	Delete(ctx context.Context, itemID string) error
}

func (o *Overrides) clone() *Overrides {
	if o == nil {
		return &Overrides{}
	}
	return &Overrides{
		AutoRollCheck:  cloneBool(o.AutoRollCheck),
		AutoRollDamage: cloneBool(o.AutoRollDamage),
		AutoRollOther:  cloneBool(o.AutoRollOther),
	}
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneGroups(groups []item.FormulaGroup) []item.FormulaGroup {
	if groups == nil {
		return nil
	}
	out := make([]item.FormulaGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].FormulaSet = append([]int(nil), g.FormulaSet...)
	}
	return out
}
