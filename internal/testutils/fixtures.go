package testutils

import (
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// CreateTestActor creates an actor owning the given items
func CreateTestActor(id, name string, items ...*item.Item) *item.Actor {
	actor := &item.Actor{ID: id, Name: name}
	for _, it := range items {
		actor.AddItem(it)
	}
	return actor
}

// CreateTestLongsword creates a versatile melee weapon
func CreateTestLongsword() *item.Item {
	return &item.Item{
		ID:          "longsword",
		Name:        "Longsword",
		Type:        item.TypeWeapon,
		ActionType:  item.ActionMeleeWeaponAttack,
		Description: "A versatile blade.",
		AttackBonus: 5,
		Damage: item.Damage{
			Parts:     []item.DamagePart{{Formula: "1d8+3", Type: "slashing"}},
			Versatile: "1d10+3",
		},
		SRDKey: "longsword",
	}
}

// CreateTestShortbow creates a ranged weapon that consumes arrows
func CreateTestShortbow() *item.Item {
	return &item.Item{
		ID:          "shortbow",
		Name:        "Shortbow",
		Type:        item.TypeWeapon,
		ActionType:  item.ActionRangedWeaponAttack,
		AttackBonus: 4,
		Damage: item.Damage{
			Parts: []item.DamagePart{{Formula: "1d6+2", Type: "piercing"}},
		},
		Consume: &item.Consume{Type: item.ConsumeTypeAmmo, Target: "arrows", Amount: 1},
	}
}

// CreateTestArrows creates ammunition for CreateTestShortbow
func CreateTestArrows() *item.Item {
	return &item.Item{
		ID:   "arrows",
		Name: "Arrows",
		Type: item.TypeConsumable,
	}
}

// CreateTestThievesTools creates a tool with no damage
func CreateTestThievesTools() *item.Item {
	return &item.Item{
		ID:        "thieves-tools",
		Name:      "Thieves' Tools",
		Type:      item.TypeTool,
		ToolBonus: 4,
	}
}

// CreateTestCureWounds creates a levelled healing spell with two damage parts
func CreateTestCureWounds() *item.Item {
	return &item.Item{
		ID:         "cure-wounds",
		Name:       "Cure Wounds",
		Type:       item.TypeSpell,
		ActionType: item.ActionHealing,
		Level:      1,
		Damage: item.Damage{
			Parts: []item.DamagePart{
				{Formula: "1d8+3", Type: "healing"},
				{Formula: "1d4", Type: "healing"},
			},
		},
		Scaling: item.Scaling{Mode: item.ScalingLevel, Formula: "1d8"},
	}
}

// CreateTestFireCold returns two formula groups labelled Fire and Cold
func CreateTestFireCold() []item.FormulaGroup {
	return []item.FormulaGroup{
		{Label: "Fire", FormulaSet: []int{0}},
		{Label: "Cold", FormulaSet: []int{1}},
	}
}
