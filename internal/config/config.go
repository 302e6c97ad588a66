package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	HTTP      HTTPConfig
	Settings  SettingsConfig
	Rolls     RollsConfig
	Log       LogConfig
	Telemetry TelemetryConfig

	// Locale selects the message catalog used for titles and button labels
	Locale string `env:"AUTOROLL_LOCALE" envDefault:"en-US"`
}

// DiscordConfig holds Discord-specific configuration.
// Broadcasting is disabled when Token is empty.
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// RedisConfig holds Redis-specific configuration.
// An empty URL selects the in-memory repositories.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// HTTPConfig holds the listen address for the HTTP/websocket surface
type HTTPConfig struct {
	Addr string `env:"AUTOROLL_HTTP_ADDR" envDefault:":8080"`
}

// SettingsConfig holds the global auto-roll defaults. Values stored in the
// settings repository take precedence over these.
type SettingsConfig struct {
	AutoCheck  bool `env:"AUTOROLL_AUTO_CHECK" envDefault:"true"`
	AutoDamage bool `env:"AUTOROLL_AUTO_DAMAGE" envDefault:"true"`
	AutoOther  bool `env:"AUTOROLL_AUTO_OTHER" envDefault:"false"`
}

// RollsConfig tunes the orchestrator
type RollsConfig struct {
	// SettleDelay is waited between emitting the card and each follow-up roll
	SettleDelay time.Duration `env:"AUTOROLL_SETTLE_DELAY" envDefault:"100ms"`

	// DiceSound is attached to cards that carry a check roll
	DiceSound string `env:"AUTOROLL_DICE_SOUND" envDefault:"sounds/dice.wav"`
}

// LogConfig configures zap
type LogConfig struct {
	Level       string `env:"AUTOROLL_LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"AUTOROLL_LOG_DEVELOPMENT" envDefault:"false"`
}

// TelemetryConfig configures OpenTelemetry tracing. Tracing is off when Endpoint is empty.
type TelemetryConfig struct {
	Enabled     bool   `env:"AUTOROLL_OTEL_ENABLED" envDefault:"true"`
	Endpoint    string `env:"AUTOROLL_OTEL_ENDPOINT"`
	ServiceName string `env:"AUTOROLL_OTEL_SERVICE_NAME" envDefault:"dnd-autoroll"`
}

// Load loads configuration from environment variables, reading a .env file first when present
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are fine, the environment may already be populated
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Discord.Token != "" && cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	if cfg.Rolls.SettleDelay < 0 {
		return nil, fmt.Errorf("AUTOROLL_SETTLE_DELAY cannot be negative")
	}

	return cfg, nil
}

// Defaults returns the global settings as the keyed map the settings store expects
func (s SettingsConfig) Defaults() map[string]bool {
	return map[string]bool{
		"autoCheck":  s.AutoCheck,
		"autoDamage": s.AutoDamage,
		"autoOther":  s.AutoOther,
	}
}
