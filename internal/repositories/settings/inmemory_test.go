package settings_test

import (
	"context"
	"testing"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewInMemoryRepository(map[string]bool{
		settings.KeyAutoCheck: true,
		settings.KeyAutoOther: false,
	})

	v, err := repo.Get(ctx, settings.KeyAutoCheck)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, repo.Set(ctx, settings.KeyAutoCheck, false))
	v, err = repo.Get(ctx, settings.KeyAutoCheck)
	require.NoError(t, err)
	assert.False(t, v)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{settings.KeyAutoCheck: false, settings.KeyAutoOther: false}, all)

	_, err = repo.Get(ctx, settings.KeyAutoDamage)
	assert.True(t, dnderr.IsNotFound(err))
	assert.True(t, dnderr.IsNotFound(repo.Set(ctx, settings.KeyAutoDamage, true)))
}
