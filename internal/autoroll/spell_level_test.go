package autoroll_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpellLevel(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected *int
		invalid  bool
	}{
		{name: "present", content: `<div class="chat-card" data-spell-level="3"></div>`, expected: intPtr(3)},
		{name: "padded", content: `<div class="chat-card" data-spell-level=" 5 "></div>`, expected: intPtr(5)},
		{name: "absent", content: `<div class="chat-card"></div>`},
		{name: "empty", content: `<div class="chat-card" data-spell-level=""></div>`},
		{name: "no card", content: ``},
		{name: "not a number", content: `<div class="chat-card" data-spell-level="third"></div>`, invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, err := autoroll.ParseSpellLevel(tc.content)

			if tc.invalid {
				require.Error(t, err)
				assert.True(t, dnderr.IsInvalidArgument(err))
				assert.Nil(t, level)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}
