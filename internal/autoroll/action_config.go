package autoroll

import (
	"context"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/settings"
)

// ActionConfig is which follow-up rolls one use performs
type ActionConfig struct {
	AutoRollCheck  bool
	AutoRollDamage bool
	AutoRollOther  bool
}

// resolveActionConfig resolves each switch as item override, else global setting
func (s *Service) resolveActionConfig(ctx context.Context, it *item.Item) (ActionConfig, error) {
	overrides, err := s.flags.GetOverrides(ctx, it.ID)
	if err != nil {
		return ActionConfig{}, dnderr.Wrapf(err, "failed to read overrides for item %s", it.ID)
	}
	if overrides == nil {
		overrides = &flags.Overrides{}
	}

	var cfg ActionConfig
	for _, sw := range []struct {
		override *bool
		key      string
		target   *bool
	}{
		{overrides.AutoRollCheck, settings.KeyAutoCheck, &cfg.AutoRollCheck},
		{overrides.AutoRollDamage, settings.KeyAutoDamage, &cfg.AutoRollDamage},
		{overrides.AutoRollOther, settings.KeyAutoOther, &cfg.AutoRollOther},
	} {
		if sw.override != nil {
			*sw.target = *sw.override
			continue
		}
		v, err := s.settings.Get(ctx, sw.key)
		if err != nil {
			return ActionConfig{}, dnderr.Wrapf(err, "failed to read setting %s", sw.key)
		}
		*sw.target = v
	}

	return cfg, nil
}
