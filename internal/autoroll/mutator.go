package autoroll

import (
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/chatcard"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
)

// ClassAutoRollCard marks a card whose check was rolled on use
const ClassAutoRollCard = "autoroll-item-card"

// Card actions replaced by the orchestrator
const (
	ActionAttack       = "attack"
	ActionToolCheck    = "toolCheck"
	ActionDamage       = "damage"
	ActionVersatile    = "versatile"
	ActionFormulaGroup = "formula-group"
)

// MutateWithCheckRoll splices a check roll into the record's card: the card is
// marked pre-rolled, the attack and tool buttons go, and the titled roll is
// shown below the description. Only rec.Content changes.
func MutateWithCheckRoll(rec *chat.Record, check *rolls.Roll, title string) error {
	if rec == nil || check == nil {
		return dnderr.InvalidArgument("record and check roll are required")
	}

	card, err := chatcard.Parse(rec.Content)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse item card")
	}

	rendered, err := check.Render()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to render check roll")
	}
	block, err := chatcard.RollBlock(title, rendered)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to build roll block")
	}

	card.AddClass(ClassAutoRollCard)
	card.RemoveActions(ActionAttack, ActionToolCheck)
	card.AppendToContent(chatcard.Separator())
	card.InsertAfterContent(block)
	if len(card.Buttons()) > 0 {
		card.InsertBeforeButtons(chatcard.Separator())
	}

	content, err := card.Render()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to render item card")
	}
	rec.Content = content
	return nil
}
