package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// Damage is an SRD damage profile expressed as item damage formulas
type Damage struct {
	Parts     []item.DamagePart
	Versatile string
}

// Client looks up SRD reference data used to fill in items that were
// created without a damage profile
type Client interface {
	GetWeaponDamage(key string) (*Damage, error)

	// GetSpellDamage returns the damage of the spell cast at its base level
	GetSpellDamage(key string) (*Damage, error)
}
