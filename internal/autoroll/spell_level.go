package autoroll

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/chatcard"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
)

// AttrSpellLevel is the card attribute the base operation writes the slot level to
const AttrSpellLevel = "data-spell-level"

// resolveSpellLevel picks the slot level for the damage roll: the caller's
// override, then the record's field, then the card attribute. Nil means none.
func resolveSpellLevel(opts *UseOptions, rec *chat.Record) (*int, error) {
	if opts != nil && opts.SpellLevel != nil {
		level := *opts.SpellLevel
		return &level, nil
	}
	if rec.SpellLevel != nil {
		level := *rec.SpellLevel
		return &level, nil
	}
	return ParseSpellLevel(rec.Content)
}

// ParseSpellLevel reads data-spell-level from card markup. An absent or empty
// attribute yields nil; anything else must be an integer.
func ParseSpellLevel(content string) (*int, error) {
	card, err := chatcard.Parse(content)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse item card")
	}

	raw, ok := card.Attr(AttrSpellLevel)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, nil
	}

	level, err := strconv.Atoi(raw)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid spell level "+strconv.Quote(raw)).
			WithMeta("spell_level", raw)
	}
	return &level, nil
}
