package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client}
}

func actorKey(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*item.Actor, error) {
	if id == "" {
		return nil, repositories.NewMissingIDError("actor")
	}

	data, err := r.client.Get(ctx, actorKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.NewNotFoundError("actor", id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get actor "+id)
	}

	var actor item.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal actor "+id)
	}
	actor.Link()

	return &actor, nil
}

func (r *redisRepo) Save(ctx context.Context, actor *item.Actor) error {
	if actor == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return repositories.NewMissingIDError("actor")
	}

	data, err := json.Marshal(actor)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal actor")
	}

	if err := r.client.Set(ctx, actorKey(actor.ID), string(data), 0).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to save actor "+actor.ID)
	}

	return nil
}
