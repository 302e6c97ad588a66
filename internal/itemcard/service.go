// Package itemcard is the plain use-item operation: it renders the item's chat
// card with one button per thing the item can roll and persists it on request.
package itemcard

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"go.uber.org/zap"
)

// SlotPrompter asks the user which slot level to cast a spell at. ok is false
// when the user dismissed the prompt.
type SlotPrompter interface {
	PromptSlotLevel(ctx context.Context, it *item.Item) (level int, ok bool, err error)
}

// Service renders item cards
type Service struct {
	sink      chat.Sink
	prompter  SlotPrompter
	localizer autoroll.Localizer
	logger    *zap.Logger
}

// Config holds the dependencies of a Service
type Config struct {
	Sink      chat.Sink
	Localizer autoroll.Localizer

	// Prompter is optional; without it spells are cast at their base level
	Prompter SlotPrompter

	Logger *zap.Logger
}

// NewService creates a Service
func NewService(cfg *Config) *Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Sink == nil {
		panic("chat sink is required")
	}
	if cfg.Localizer == nil {
		panic("localizer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		sink:      cfg.Sink,
		prompter:  cfg.Prompter,
		localizer: cfg.Localizer,
		logger:    logger,
	}
}

var _ autoroll.ItemUser = (*Service)(nil)

// Use renders the card. It persists it through the sink unless
// opts.CreateMessage is false. A dismissed slot prompt cancels the use.
func (s *Service) Use(ctx context.Context, it *item.Item, opts *autoroll.UseOptions) (*chat.Record, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}

	spellLevel, ok, err := s.spellLevel(ctx, it, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("slot prompt dismissed", zap.String("item_id", it.ID))
		return nil, nil
	}

	content, err := renderCard(it, spellLevel, s.localizer)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to render item card")
	}

	rec := &chat.Record{
		ItemID:     it.ID,
		Content:    content,
		Type:       chat.MessageTypeOther,
		Flavor:     it.Name,
		SpellLevel: spellLevel,
	}
	if actor := it.Actor(); actor != nil {
		rec.ActorID = actor.ID
	}

	if opts != nil && opts.CreateMessage != nil && !*opts.CreateMessage {
		return rec, nil
	}

	stored, err := s.sink.Create(ctx, rec)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to create card for item %s", it.ID)
	}
	return stored, nil
}

// spellLevel picks the slot level for levelled spells. ok is false when the
// prompt was dismissed.
func (s *Service) spellLevel(ctx context.Context, it *item.Item, opts *autoroll.UseOptions) (*int, bool, error) {
	if it.Type != item.TypeSpell || it.Level <= 0 {
		return nil, true, nil
	}

	if opts != nil && opts.SpellLevel != nil {
		level := *opts.SpellLevel
		if level < it.Level {
			return nil, false, dnderr.InvalidArgumentf("spell level %d is below the base level %d of %s", level, it.Level, it.Name).
				WithMeta("item_id", it.ID)
		}
		return &level, true, nil
	}

	if s.prompter == nil {
		level := it.Level
		return &level, true, nil
	}

	level, ok, err := s.prompter.PromptSlotLevel(ctx, it)
	if err != nil {
		return nil, false, dnderr.Wrapf(err, "failed to prompt slot level for %s", it.ID)
	}
	if !ok {
		return nil, false, nil
	}
	if level < it.Level {
		return nil, false, dnderr.InvalidArgumentf("spell level %d is below the base level %d of %s", level, it.Level, it.Name)
	}
	return &level, true, nil
}
