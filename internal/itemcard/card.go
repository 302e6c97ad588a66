package itemcard

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// Localization keys for the card's buttons
const (
	KeyAttack       = "DND5E.Attack"
	KeyOtherFormula = "DND5E.OtherFormula"
	KeyItemToolUse  = "DND5E.ItemToolUse"
	KeyVersatile    = "DND5E.Versatile"
)

// ActionFormula is the button rolling the item's freeform formula
const ActionFormula = "formula"

type cardButton struct {
	Action string
	Label  string
}

type cardView struct {
	ActorID     string
	ItemID      string
	Name        string
	Description string
	SpellLevel  string
	Buttons     []cardButton
}

var cardTemplate = template.Must(template.New("item-card").Parse(
	`<div class="dnd5e chat-card item-card" data-actor-id="{{.ActorID}}" data-item-id="{{.ItemID}}"` +
		`{{if .SpellLevel}} data-spell-level="{{.SpellLevel}}"{{end}}>` +
		`<header class="card-header"><h3 class="item-name">{{.Name}}</h3></header>` +
		`<div class="card-content">{{if .Description}}<p>{{.Description}}</p>{{end}}</div>` +
		`<div class="card-buttons">{{range .Buttons}}<button data-action="{{.Action}}">{{.Label}}</button>{{end}}</div>` +
		`</div>`))

// renderCard builds the chat card for one use of it
func renderCard(it *item.Item, spellLevel *int, loc autoroll.Localizer) (string, error) {
	view := cardView{
		ItemID:      it.ID,
		Name:        it.Name,
		Description: it.Description,
		Buttons:     buttonsFor(it, loc),
	}
	if actor := it.Actor(); actor != nil {
		view.ActorID = actor.ID
	}
	if spellLevel != nil {
		view.SpellLevel = strconv.Itoa(*spellLevel)
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buttonsFor(it *item.Item, loc autoroll.Localizer) []cardButton {
	caps := it.Capabilities()

	var buttons []cardButton
	if caps.Check == item.CheckAttack {
		buttons = append(buttons, cardButton{autoroll.ActionAttack, loc.Localize(KeyAttack)})
	}
	if caps.Damage {
		key := autoroll.KeyDamage
		if caps.Healing {
			key = autoroll.KeyHealing
		}
		buttons = append(buttons, cardButton{autoroll.ActionDamage, loc.Localize(key)})
		if it.IsVersatile() {
			buttons = append(buttons, cardButton{autoroll.ActionVersatile, loc.Localize(KeyVersatile)})
		}
	}
	if caps.Formula {
		buttons = append(buttons, cardButton{ActionFormula, loc.Localize(KeyOtherFormula)})
	}
	if caps.Check == item.CheckTool {
		buttons = append(buttons, cardButton{autoroll.ActionToolCheck, loc.Localize(KeyItemToolUse)})
	}
	return buttons
}
