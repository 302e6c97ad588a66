package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func apiWeaponToDamage(input *apiEntities.Weapon) *Damage {
	out := &Damage{}
	if input == nil {
		return out
	}

	if part, ok := apiDamageToPart(input.Damage); ok {
		out.Parts = append(out.Parts, part)
	}
	if versatile, ok := apiDamageToPart(input.TwoHandedDamage); ok {
		out.Versatile = versatile.Formula
	}

	return out
}

func apiDamageToPart(input *apiEntities.Damage) (item.DamagePart, bool) {
	if input == nil {
		return item.DamagePart{}, false
	}

	formula := strings.ReplaceAll(strings.TrimSpace(input.DamageDice), " ", "")
	if formula == "" {
		return item.DamagePart{}, false
	}

	return item.DamagePart{
		Formula: formula,
		Type:    apiReferenceKey(input.DamageType),
	}, true
}

func apiSpellToDamage(input *apiEntities.Spell) *Damage {
	out := &Damage{}
	if input == nil || input.SpellDamage == nil {
		return out
	}

	formula := slotLevelDamage(apiSlotLevels(input.SpellDamage), input.SpellLevel)
	if formula == "" {
		return out
	}

	out.Parts = append(out.Parts, item.DamagePart{
		Formula: strings.ReplaceAll(formula, " ", ""),
		Type:    apiReferenceKey(input.SpellDamage.SpellDamageType),
	})
	return out
}

func apiSlotLevels(input *apiEntities.SpellDamage) []string {
	slots := input.SpellDamageAtSlotLevel
	if slots == nil {
		return nil
	}

	return []string{
		slots.FirstLevel,
		slots.SecondLevel,
		slots.ThirdLevel,
		slots.FourthLevel,
		slots.FifthLevel,
		slots.SixthLevel,
		slots.SeventhLevel,
		slots.EighthLevel,
		slots.NinthLevel,
	}
}

// slotLevelDamage picks the formula for level from formulas indexed by slot level minus one
func slotLevelDamage(byLevel []string, level int) string {
	// Cantrips and unknown levels fall back to the lowest listed slot
	if level >= 1 && level <= len(byLevel) && byLevel[level-1] != "" {
		return byLevel[level-1]
	}
	for _, formula := range byLevel {
		if formula != "" {
			return formula
		}
	}
	return ""
}

func apiReferenceKey(input *apiEntities.ReferenceItem) string {
	if input == nil {
		return ""
	}
	return input.Key
}
