package settings

import (
	"context"
	"errors"
	"maps"
	"strconv"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/redis/go-redis/v9"
)

const settingsKey = "autoroll:settings"

// redisRepo implements the Repository interface using one Redis hash
type redisRepo struct {
	client   redis.UniversalClient
	defaults map[string]bool
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// Defaults lists the known keys and their values when unset
	Defaults map[string]bool
}

// NewRedisRepository creates a new Redis-backed settings repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{
		client:   cfg.Client,
		defaults: maps.Clone(cfg.Defaults),
	}
}

func (r *redisRepo) Get(ctx context.Context, key string) (bool, error) {
	def, known := r.defaults[key]
	if !known {
		return false, unknownKey(key)
	}

	raw, err := r.client.HGet(ctx, settingsKey, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return def, nil
		}
		return false, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get setting "+key)
	}

	return parseValue(key, raw)
}

func (r *redisRepo) Set(ctx context.Context, key string, value bool) error {
	if _, known := r.defaults[key]; !known {
		return unknownKey(key)
	}

	if err := r.client.HSet(ctx, settingsKey, key, strconv.FormatBool(value)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to set setting "+key)
	}
	return nil
}

func (r *redisRepo) All(ctx context.Context) (map[string]bool, error) {
	stored, err := r.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get settings")
	}

	out := maps.Clone(r.defaults)
	if out == nil {
		out = map[string]bool{}
	}
	for key, raw := range stored {
		if _, known := r.defaults[key]; !known {
			continue
		}
		v, err := parseValue(key, raw)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func parseValue(key, raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dnderr.WrapWithCode(err, dnderr.CodeInternal, "invalid value for setting "+key)
	}
	return v, nil
}

func unknownKey(key string) error {
	return dnderr.NotFoundf("setting not found: %s", key).WithMeta("setting_key", key)
}
