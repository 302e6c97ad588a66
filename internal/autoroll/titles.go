package autoroll

import (
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
)

// Localization keys used by the orchestrator
const (
	KeyAttackRoll   = "DND5E.AttackRoll"
	KeyToolCheck    = "DND5E.ToolCheck"
	KeyAdvantage    = "DND5E.Advantage"
	KeyDisadvantage = "DND5E.Disadvantage"
	KeyDamage       = "DND5E.Damage"
	KeyHealing      = "DND5E.Healing"
)

// AttackTitle titles an attack roll, naming the ammunition used when the item
// draws it from the actor
func AttackTitle(it *item.Item, roll *rolls.Roll, loc Localizer) string {
	title := loc.Localize(KeyAttackRoll)
	if ammo := it.Ammunition(); ammo != nil {
		title += " [" + ammo.Name + "]"
	}
	return title + tierSuffix(roll, loc)
}

// ToolTitle titles a tool check
func ToolTitle(roll *rolls.Roll, loc Localizer) string {
	return loc.Localize(KeyToolCheck) + tierSuffix(roll, loc)
}

func tierSuffix(roll *rolls.Roll, loc Localizer) string {
	if roll == nil {
		return ""
	}
	switch roll.Tier {
	case rolls.TierAdvantage:
		return " (" + loc.Localize(KeyAdvantage) + ")"
	case rolls.TierDisadvantage:
		return " (" + loc.Localize(KeyDisadvantage) + ")"
	default:
		return ""
	}
}
