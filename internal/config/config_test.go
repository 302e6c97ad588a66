package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Settings.AutoCheck)
	assert.True(t, cfg.Settings.AutoDamage)
	assert.False(t, cfg.Settings.AutoOther)
	assert.Equal(t, 100*time.Millisecond, cfg.Rolls.SettleDelay)
	assert.Equal(t, "sounds/dice.wav", cfg.Rolls.DiceSound)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AUTOROLL_AUTO_DAMAGE", "false")
	t.Setenv("AUTOROLL_SETTLE_DELAY", "250ms")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.Settings.AutoDamage)
	assert.Equal(t, 250*time.Millisecond, cfg.Rolls.SettleDelay)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoad_FromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTOROLL_LOCALE=fr-FR\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("AUTOROLL_LOCALE") })

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fr-FR", cfg.Locale)
}

func TestLoad_DiscordRequiresChannel(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "DISCORD_CHANNEL_ID")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("AUTOROLL_SETTLE_DELAY", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "parse env:")
}

func TestSettingsDefaults(t *testing.T) {
	defaults := config.SettingsConfig{AutoCheck: true, AutoDamage: false, AutoOther: true}.Defaults()

	assert.Equal(t, map[string]bool{"autoCheck": true, "autoDamage": false, "autoOther": true}, defaults)
}
