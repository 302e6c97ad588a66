//go:build integration
// +build integration

package flags_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/KirkDiggler/dnd-autoroll/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := flags.NewRedisRepository(&flags.RedisRepoConfig{Client: client})
	ctx := context.Background()

	off := false
	require.NoError(t, repo.SetOverrides(ctx, "shortbow", &flags.Overrides{AutoRollCheck: &off}))
	require.NoError(t, repo.SetFormulaGroups(ctx, "shortbow", []item.FormulaGroup{{Label: "Default", FormulaSet: []int{0}}}))

	overrides, err := repo.GetOverrides(ctx, "shortbow")
	require.NoError(t, err)
	require.NotNil(t, overrides.AutoRollCheck)
	assert.False(t, *overrides.AutoRollCheck)
	assert.Nil(t, overrides.AutoRollDamage)

	// Replacing overrides clears fields that are no longer set
	on := true
	require.NoError(t, repo.SetOverrides(ctx, "shortbow", &flags.Overrides{AutoRollDamage: &on}))
	overrides, err = repo.GetOverrides(ctx, "shortbow")
	require.NoError(t, err)
	assert.Nil(t, overrides.AutoRollCheck)
	require.NotNil(t, overrides.AutoRollDamage)
	assert.True(t, *overrides.AutoRollDamage)

	groups, err := repo.GetFormulaGroups(ctx, "shortbow")
	require.NoError(t, err)
	assert.Equal(t, []item.FormulaGroup{{Label: "Default", FormulaSet: []int{0}}}, groups)

	require.NoError(t, repo.Delete(ctx, "shortbow"))
	groups, err = repo.GetFormulaGroups(ctx, "shortbow")
	require.NoError(t, err)
	assert.Nil(t, groups)
}
