package item

// CheckKind is the d20 check an item use implies. The variants are exclusive.
type CheckKind int

const (
	CheckNone CheckKind = iota
	CheckAttack
	CheckTool
)

func (k CheckKind) String() string {
	switch k {
	case CheckAttack:
		return "attack"
	case CheckTool:
		return "tool"
	default:
		return "none"
	}
}

// Capabilities is what an item can roll, resolved once per use
type Capabilities struct {
	Check   CheckKind
	Damage  bool
	Formula bool
	Healing bool
}

// Capabilities resolves the item's capability set. An attack wins over a tool check.
func (i *Item) Capabilities() Capabilities {
	caps := Capabilities{
		Check:   CheckNone,
		Damage:  i.HasDamage(),
		Formula: i.Formula != "",
		Healing: i.IsHealing(),
	}

	switch {
	case i.ActionType.IsAttack():
		caps.Check = CheckAttack
	case i.Type == TypeTool:
		caps.Check = CheckTool
	}

	return caps
}
