package flags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories"
	"github.com/redis/go-redis/v9"
)

// Hash fields of item:{id}:flags
const (
	fieldAutoRollCheck  = "autoRollAttack"
	fieldAutoRollDamage = "autoRollDamage"
	fieldAutoRollOther  = "autoRollOther"
	fieldFormulaGroups  = "formulaGroups"
)

var overrideFields = []string{fieldAutoRollCheck, fieldAutoRollDamage, fieldAutoRollOther}

// redisRepo implements the Repository interface using a Redis hash per item
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed flag repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client}
}

func flagsKey(itemID string) string {
	return fmt.Sprintf("item:%s:flags", itemID)
}

func (r *redisRepo) GetOverrides(ctx context.Context, itemID string) (*Overrides, error) {
	if itemID == "" {
		return nil, repositories.NewMissingIDError("item")
	}

	fields, err := r.client.HGetAll(ctx, flagsKey(itemID)).Result()
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get flags for item %s", itemID)
	}

	overrides := &Overrides{}
	targets := map[string]**bool{
		fieldAutoRollCheck:  &overrides.AutoRollCheck,
		fieldAutoRollDamage: &overrides.AutoRollDamage,
		fieldAutoRollOther:  &overrides.AutoRollOther,
	}
	for field, target := range targets {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal,
				fmt.Sprintf("invalid %s flag on item %s", field, itemID))
		}
		*target = &v
	}

	return overrides, nil
}

func (r *redisRepo) SetOverrides(ctx context.Context, itemID string, overrides *Overrides) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}
	if overrides == nil {
		return dnderr.InvalidArgument("overrides cannot be nil")
	}

	key := flagsKey(itemID)
	values := make([]any, 0, 2*len(overrideFields))
	for _, f := range []struct {
		name  string
		value *bool
	}{
		{fieldAutoRollCheck, overrides.AutoRollCheck},
		{fieldAutoRollDamage, overrides.AutoRollDamage},
		{fieldAutoRollOther, overrides.AutoRollOther},
	} {
		if f.value != nil {
			values = append(values, f.name, strconv.FormatBool(*f.value))
		}
	}

	pipe := r.client.Pipeline()
	pipe.HDel(ctx, key, overrideFields...)
	if len(values) > 0 {
		pipe.HSet(ctx, key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to set overrides for item %s", itemID)
	}

	return nil
}

func (r *redisRepo) GetFormulaGroups(ctx context.Context, itemID string) ([]item.FormulaGroup, error) {
	if itemID == "" {
		return nil, repositories.NewMissingIDError("item")
	}

	raw, err := r.client.HGet(ctx, flagsKey(itemID), fieldFormulaGroups).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, dnderr.Wrapf(err, "failed to get formula groups for item %s", itemID)
	}

	var groups []item.FormulaGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal,
			fmt.Sprintf("failed to unmarshal formula groups for item %s", itemID))
	}

	return groups, nil
}

func (r *redisRepo) SetFormulaGroups(ctx context.Context, itemID string, groups []item.FormulaGroup) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}
	if groups == nil {
		groups = []item.FormulaGroup{}
	}

	data, err := json.Marshal(groups)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal formula groups")
	}

	if err := r.client.HSet(ctx, flagsKey(itemID), fieldFormulaGroups, string(data)).Err(); err != nil {
		return dnderr.Wrapf(err, "failed to set formula groups for item %s", itemID)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, itemID string) error {
	if itemID == "" {
		return repositories.NewMissingIDError("item")
	}

	if err := r.client.Del(ctx, flagsKey(itemID)).Err(); err != nil {
		return dnderr.Wrapf(err, "failed to delete flags for item %s", itemID)
	}

	return nil
}
