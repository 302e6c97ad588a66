package autoroll_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/i18n"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
	"github.com/KirkDiggler/dnd-autoroll/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitles(t *testing.T) {
	cat, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	loc, err := cat.Localizer("en-US")
	require.NoError(t, err)

	bow := testutils.CreateTestShortbow()
	testutils.CreateTestActor("actor-1", "Legolas", bow, testutils.CreateTestArrows())
	emptyQuiver := testutils.CreateTestShortbow()
	testutils.CreateTestActor("actor-2", "Gimli", emptyQuiver)

	normal := &rolls.Roll{Tier: rolls.TierNormal}
	advantage := &rolls.Roll{Tier: rolls.TierAdvantage}
	disadvantage := &rolls.Roll{Tier: rolls.TierDisadvantage}

	assert.Equal(t, "Attack Roll", autoroll.AttackTitle(testutils.CreateTestLongsword(), normal, loc))
	assert.Equal(t, "Attack Roll (Advantage)", autoroll.AttackTitle(testutils.CreateTestLongsword(), advantage, loc))
	assert.Equal(t, "Attack Roll [Arrows] (Disadvantage)", autoroll.AttackTitle(bow, disadvantage, loc))
	assert.Equal(t, "Attack Roll", autoroll.AttackTitle(emptyQuiver, normal, loc))

	assert.Equal(t, "Tool Check", autoroll.ToolTitle(normal, loc))
	assert.Equal(t, "Tool Check (Advantage)", autoroll.ToolTitle(advantage, loc))
}
