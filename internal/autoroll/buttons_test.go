package autoroll_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/chatcard"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyLocalizer struct{}

func (keyLocalizer) Localize(key string) string {
	switch key {
	case autoroll.KeyDamage:
		return "Damage"
	case autoroll.KeyHealing:
		return "Healing"
	}
	return key
}

func TestRegenerateButtons(t *testing.T) {
	testCases := []struct {
		name     string
		it       *item.Item
		content  string
		groups   []item.FormulaGroup
		expected string
	}{
		{
			name:     "single group has no label suffix",
			it:       testutils.CreateTestLongsword(),
			content:  `<div class="card-buttons"><button data-action="damage">Damage</button><button data-action="consume">Consume</button></div>`,
			groups:   []item.FormulaGroup{{Label: "Default", FormulaSet: []int{0}}},
			expected: `<div class="card-buttons"><button data-action="formula-group" data-formula-group="0">Damage</button><button data-action="consume">Consume</button></div>`,
		},
		{
			name:    "healing groups keep order",
			it:      testutils.CreateTestCureWounds(),
			content: `<div class="card-buttons"><button data-action="versatile">Versatile</button></div>`,
			groups:  testutils.CreateTestFireCold(),
			expected: `<div class="card-buttons">` +
				`<button data-action="formula-group" data-formula-group="0">Healing (Fire)</button>` +
				`<button data-action="formula-group" data-formula-group="1">Healing (Cold)</button>` +
				`</div>`,
		},
		{
			name:     "no groups removes damage buttons only",
			it:       testutils.CreateTestLongsword(),
			content:  `<div class="card-buttons"><button data-action="damage">Damage</button><button data-action="attack">Attack</button></div>`,
			expected: `<div class="card-buttons"><button data-action="attack">Attack</button></div>`,
		},
		{
			name:     "button area created when missing",
			it:       testutils.CreateTestLongsword(),
			content:  `<div class="chat-card"><div class="card-content"></div></div>`,
			groups:   []item.FormulaGroup{{Label: "Default", FormulaSet: []int{0}}},
			expected: `<div class="chat-card"><div class="card-content"></div><div class="card-buttons"><button data-action="formula-group" data-formula-group="0">Damage</button></div></div>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &chat.Record{Content: tc.content}

			err := autoroll.RegenerateButtons(rec, tc.it, tc.groups, keyLocalizer{})
			require.NoError(t, err)

			assert.Equal(t, tc.expected, rec.Content)
		})
	}
}

func TestRegenerateButtons_IndexesMatchGroups(t *testing.T) {
	groups := []item.FormulaGroup{{Label: "A"}, {Label: "B"}, {Label: "C"}}
	rec := &chat.Record{Content: `<div class="chat-card"><div class="card-buttons"></div></div>`}

	require.NoError(t, autoroll.RegenerateButtons(rec, testutils.CreateTestLongsword(), groups, keyLocalizer{}))

	card, err := chatcard.Parse(rec.Content)
	require.NoError(t, err)
	buttons := card.Buttons()
	require.Len(t, buttons, len(groups))
	for i, b := range buttons {
		assert.Equal(t, autoroll.ActionFormulaGroup, b.Action)
		assert.Equal(t, "Damage ("+groups[i].Label+")", b.Label)
		assert.Equal(t, string(rune('0'+i)), b.Data["formula-group"])
	}
}
