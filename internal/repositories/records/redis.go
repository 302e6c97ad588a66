package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
	"github.com/KirkDiggler/dnd-autoroll/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRedisRepository creates a new Redis-backed record repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo
}

func recordKey(id string) string {
	return fmt.Sprintf("record:%s", id)
}

func actorRecordsKey(actorID string) string {
	return fmt.Sprintf("actor:%s:records", actorID)
}

func (r *redisRepo) Create(ctx context.Context, record *chat.Record) (*chat.Record, error) {
	if record == nil {
		return nil, dnderr.InvalidArgument("record cannot be nil")
	}

	stored := cloneRecord(record)
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}
	stored.CreatedAt = r.timeProvider.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal record")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(stored.ID), string(data), 0)
	if stored.ActorID != "" {
		pipe.RPush(ctx, actorRecordsKey(stored.ActorID), stored.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to store record")
	}

	return stored, nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*chat.Record, error) {
	if id == "" {
		return nil, repositories.NewMissingIDError("record")
	}

	data, err := r.client.Get(ctx, recordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.NewNotFoundError("record", id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get record "+id)
	}

	var record chat.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal record "+id)
	}

	return &record, nil
}

func (r *redisRepo) ListByActor(ctx context.Context, actorID string) ([]*chat.Record, error) {
	if actorID == "" {
		return nil, repositories.NewMissingIDError("actor")
	}

	ids, err := r.client.LRange(ctx, actorRecordsKey(actorID), 0, -1).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list records of actor "+actorID)
	}

	out := make([]*chat.Record, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			record, err := r.Get(ctx, id)
			if err != nil {
				return dnderr.Wrapf(err, "failed to get record %s", id)
			}
			out[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
