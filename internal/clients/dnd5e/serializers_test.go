package dnd5e

import (
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
)

func TestApiWeaponToDamage(t *testing.T) {
	weapon := &apiEntities.Weapon{
		Damage: &apiEntities.Damage{
			DamageDice: "1d8",
			DamageType: &apiEntities.ReferenceItem{Key: "slashing", Name: "Slashing"},
		},
		TwoHandedDamage: &apiEntities.Damage{
			DamageDice: "1d10",
			DamageType: &apiEntities.ReferenceItem{Key: "slashing", Name: "Slashing"},
		},
	}

	got := apiWeaponToDamage(weapon)

	assert.Equal(t, []item.DamagePart{{Formula: "1d8", Type: "slashing"}}, got.Parts)
	assert.Equal(t, "1d10", got.Versatile)
}

func TestApiWeaponToDamage_NoDamage(t *testing.T) {
	got := apiWeaponToDamage(&apiEntities.Weapon{})

	assert.Empty(t, got.Parts)
	assert.Empty(t, got.Versatile)
	assert.NotNil(t, apiWeaponToDamage(nil))
}

func TestApiDamageToPart_StripsSpaces(t *testing.T) {
	part, ok := apiDamageToPart(&apiEntities.Damage{DamageDice: " 2d6 + 3 "})

	assert.True(t, ok)
	assert.Equal(t, "2d6+3", part.Formula)
	assert.Empty(t, part.Type)
}

func TestApiSpellToDamage_NoSpellDamage(t *testing.T) {
	got := apiSpellToDamage(&apiEntities.Spell{SpellLevel: 1})

	assert.Empty(t, got.Parts)
}

func TestSlotLevelDamage(t *testing.T) {
	byLevel := []string{"", "", "8d6", "9d6", "10d6", "", "", "", ""}

	tests := []struct {
		name  string
		level int
		want  string
	}{
		{name: "base level", level: 3, want: "8d6"},
		{name: "higher level", level: 5, want: "10d6"},
		{name: "cantrip falls back to lowest", level: 0, want: "8d6"},
		{name: "missing level falls back to lowest", level: 7, want: "8d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slotLevelDamage(byLevel, tt.level))
		})
	}

	assert.Empty(t, slotLevelDamage(nil, 1))
}
