package autoroll

import (
	"strconv"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/chatcard"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
)

// RegenerateButtons replaces the card's damage and versatile buttons with one
// button per formula group, ahead of any other buttons and in group order
func RegenerateButtons(rec *chat.Record, it *item.Item, groups []item.FormulaGroup, loc Localizer) error {
	if rec == nil || it == nil {
		return dnderr.InvalidArgument("record and item are required")
	}

	card, err := chatcard.Parse(rec.Content)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse item card")
	}

	card.RemoveActions(ActionDamage, ActionVersatile)

	if len(groups) > 0 {
		key := KeyDamage
		if it.IsHealing() {
			key = KeyHealing
		}
		base := loc.Localize(key)

		buttons := make([]chatcard.Button, len(groups))
		for i, g := range groups {
			label := base
			if len(groups) > 1 {
				label += " (" + g.Label + ")"
			}
			buttons[i] = chatcard.Button{
				Action: ActionFormulaGroup,
				Label:  label,
				Data:   map[string]string{"formula-group": strconv.Itoa(i)},
			}
		}
		card.PrependButtons(buttons...)
	}

	content, err := card.Render()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to render item card")
	}
	rec.Content = content
	return nil
}
