package item

// FormulaGroup is a named selection of the item's damage parts rolled together.
// Groups are ordered; the order is the display order of their buttons.
type FormulaGroup struct {
	Label string `json:"label"`

	// FormulaSet indexes into Damage.Parts
	FormulaSet []int `json:"formulaSet"`

	// Versatile substitutes the versatile formula for the first part
	Versatile bool `json:"versatile,omitempty"`
}

// Formulas returns the damage formulas selected by the group, skipping
// indexes that no longer exist on the item
func (g FormulaGroup) Formulas(it *Item) []DamagePart {
	parts := make([]DamagePart, 0, len(g.FormulaSet))
	for _, idx := range g.FormulaSet {
		if idx < 0 || idx >= len(it.Damage.Parts) {
			continue
		}
		part := it.Damage.Parts[idx]
		if g.Versatile && idx == 0 && it.Damage.Versatile != "" {
			part.Formula = it.Damage.Versatile
		}
		parts = append(parts, part)
	}
	return parts
}
