// Package item models the usable items an actor owns and what each of them can roll.
package item

// Type is the item's inventory category
type Type string

const (
	TypeWeapon     Type = "weapon"
	TypeEquipment  Type = "equipment"
	TypeConsumable Type = "consumable"
	TypeTool       Type = "tool"
	TypeSpell      Type = "spell"
	TypeFeat       Type = "feat"
)

// ActionType classifies what using the item does
type ActionType string

const (
	ActionMeleeWeaponAttack  ActionType = "mwak"
	ActionRangedWeaponAttack ActionType = "rwak"
	ActionMeleeSpellAttack   ActionType = "msak"
	ActionRangedSpellAttack  ActionType = "rsak"
	ActionSavingThrow        ActionType = "save"
	ActionHealing            ActionType = "heal"
	ActionAbilityCheck       ActionType = "abil"
	ActionUtility            ActionType = "util"
	ActionOther              ActionType = "other"
)

// IsAttack reports whether the action type rolls to hit
func (a ActionType) IsAttack() bool {
	switch a {
	case ActionMeleeWeaponAttack, ActionRangedWeaponAttack, ActionMeleeSpellAttack, ActionRangedSpellAttack:
		return true
	}
	return false
}

// DamagePart is one formula of an item's damage profile
type DamagePart struct {
	Formula string `json:"formula"`
	Type    string `json:"type,omitempty"`
}

// Damage is the item's damage profile
type Damage struct {
	Parts     []DamagePart `json:"parts,omitempty"`
	Versatile string       `json:"versatile,omitempty"`
}

// ScalingMode controls how damage grows when a spell is cast with a higher slot
type ScalingMode string

const (
	ScalingNone  ScalingMode = ""
	ScalingLevel ScalingMode = "level"
)

// Scaling adds Formula once per slot level above the spell's base level
type Scaling struct {
	Mode    ScalingMode `json:"mode,omitempty"`
	Formula string      `json:"formula,omitempty"`
}

// ConsumeTypeAmmo marks an item that draws ammunition from the actor's inventory
const ConsumeTypeAmmo = "ammo"

// Consume describes a resource the item uses up
type Consume struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	Amount int    `json:"amount,omitempty"`
}

// Item is a single usable item
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        Type       `json:"type"`
	ActionType  ActionType `json:"action_type,omitempty"`
	Description string     `json:"description,omitempty"`

	// Level is the base spell level; zero for cantrips and non-spells
	Level int `json:"level,omitempty"`

	AttackBonus int      `json:"attack_bonus,omitempty"`
	ToolBonus   int      `json:"tool_bonus,omitempty"`
	Damage      Damage   `json:"damage"`
	Scaling     Scaling  `json:"scaling"`
	Formula     string   `json:"formula,omitempty"`
	Consume     *Consume `json:"consume,omitempty"`

	// SRDKey links the item to the SRD equipment index, e.g. "longsword"
	SRDKey string `json:"srd_key,omitempty"`

	actor *Actor
}

// Actor returns the owning actor, nil for unowned items
func (i *Item) Actor() *Actor {
	return i.actor
}

// HasDamage reports whether the item has at least one damage formula
func (i *Item) HasDamage() bool {
	return len(i.Damage.Parts) > 0
}

// IsVersatile reports whether the item has an alternate versatile formula
func (i *Item) IsVersatile() bool {
	return i.Damage.Versatile != ""
}

// IsHealing reports whether damage rolls from this item restore hit points
func (i *Item) IsHealing() bool {
	return i.ActionType == ActionHealing
}

// Ammunition returns the item this one consumes as ammo, if the actor still has it
func (i *Item) Ammunition() *Item {
	if i.Consume == nil || i.Consume.Type != ConsumeTypeAmmo || i.actor == nil {
		return nil
	}
	return i.actor.Item(i.Consume.Target)
}
