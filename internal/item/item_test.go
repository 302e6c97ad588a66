package item_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name string
		item *item.Item
		want item.Capabilities
	}{
		{
			name: "melee weapon with damage",
			item: &item.Item{
				Type:       item.TypeWeapon,
				ActionType: item.ActionMeleeWeaponAttack,
				Damage:     item.Damage{Parts: []item.DamagePart{{Formula: "1d8+3", Type: "slashing"}}},
			},
			want: item.Capabilities{Check: item.CheckAttack, Damage: true},
		},
		{
			name: "tool without damage",
			item: &item.Item{Type: item.TypeTool, ActionType: item.ActionAbilityCheck},
			want: item.Capabilities{Check: item.CheckTool},
		},
		{
			name: "attack wins over tool",
			item: &item.Item{Type: item.TypeTool, ActionType: item.ActionRangedWeaponAttack},
			want: item.Capabilities{Check: item.CheckAttack},
		},
		{
			name: "healing potion",
			item: &item.Item{
				Type:       item.TypeConsumable,
				ActionType: item.ActionHealing,
				Damage:     item.Damage{Parts: []item.DamagePart{{Formula: "2d4+2", Type: "healing"}}},
			},
			want: item.Capabilities{Check: item.CheckNone, Damage: true, Healing: true},
		},
		{
			name: "utility feat with formula",
			item: &item.Item{Type: item.TypeFeat, ActionType: item.ActionUtility, Formula: "1d4"},
			want: item.Capabilities{Check: item.CheckNone, Formula: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Capabilities())
		})
	}
}

func TestAmmunition(t *testing.T) {
	actor := &item.Actor{ID: "actor-1", Name: "Vex"}
	arrows := &item.Item{ID: "arrows", Name: "Arrows +1", Type: item.TypeConsumable}
	bow := &item.Item{
		ID:         "bow",
		Name:       "Longbow",
		Type:       item.TypeWeapon,
		ActionType: item.ActionRangedWeaponAttack,
		Consume:    &item.Consume{Type: item.ConsumeTypeAmmo, Target: "arrows", Amount: 1},
	}
	actor.AddItem(arrows)
	actor.AddItem(bow)

	assert.Same(t, arrows, bow.Ammunition())
	assert.Same(t, actor, bow.Actor())

	bow.Consume.Target = "bolts"
	assert.Nil(t, bow.Ammunition())

	unowned := &item.Item{Consume: &item.Consume{Type: item.ConsumeTypeAmmo, Target: "arrows"}}
	assert.Nil(t, unowned.Ammunition())
}

func TestActorLink(t *testing.T) {
	actor := &item.Actor{ID: "a", Items: []*item.Item{{ID: "x"}}}
	assert.Nil(t, actor.Items[0].Actor())

	actor.Link()
	assert.Same(t, actor, actor.Item("x").Actor())
	assert.Nil(t, actor.Item("missing"))
}

func TestFormulaGroup_Formulas(t *testing.T) {
	sword := &item.Item{
		Damage: item.Damage{
			Parts: []item.DamagePart{
				{Formula: "1d8+3", Type: "slashing"},
				{Formula: "1d6", Type: "fire"},
			},
			Versatile: "1d10+3",
		},
	}

	assert.Equal(t, sword.Damage.Parts, item.FormulaGroup{FormulaSet: []int{0, 1}}.Formulas(sword))
	assert.Equal(t,
		[]item.DamagePart{{Formula: "1d10+3", Type: "slashing"}, {Formula: "1d6", Type: "fire"}},
		item.FormulaGroup{FormulaSet: []int{0, 1}, Versatile: true}.Formulas(sword))
	assert.Equal(t,
		[]item.DamagePart{{Formula: "1d6", Type: "fire"}},
		item.FormulaGroup{FormulaSet: []int{1, 7, -1}}.Formulas(sword))
}
