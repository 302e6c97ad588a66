// Package autoroll chains the rolls an item use implies onto the use itself.
// A wrapped use captures the held modifiers, rolls the attack or tool check into
// the item card, rebuilds the damage buttons, emits the card once and then rolls
// damage and the item's formula.
package autoroll

import (
	"context"
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/itemroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/KirkDiggler/dnd-autoroll/internal/autoroll"

// DefaultSettleDelay is the pause before each follow-up roll
const DefaultSettleDelay = 100 * time.Millisecond

// Service wraps a base ItemUser
type Service struct {
	base        ItemUser
	rolls       itemroll.Roller
	settings    Settings
	flags       FlagStore
	localizer   Localizer
	initializer FormulaInitializer
	input       SnapshotSource
	sink        chat.Sink
	bus         *events.Bus
	settleDelay time.Duration
	diceSound   string
	logger      *zap.Logger
	tracer      trace.Tracer
}

// Config holds the dependencies of a Service
type Config struct {
	Base        ItemUser
	Rolls       itemroll.Roller
	Settings    Settings
	Flags       FlagStore
	Localizer   Localizer
	Initializer FormulaInitializer
	Input       SnapshotSource
	Sink        chat.Sink

	// Bus, when set, receives a RecordEmittedEvent for every persisted card
	Bus *events.Bus

	// SettleDelay is waited before each follow-up roll so listeners of the
	// emitted card can catch up. Zero disables the pause; negative selects
	// DefaultSettleDelay.
	SettleDelay time.Duration

	DiceSound string
	Logger    *zap.Logger
}

// NewService creates a Service
func NewService(cfg *Config) *Service {
	if cfg == nil {
		panic("config is required")
	}
	switch {
	case cfg.Base == nil:
		panic("base item user is required")
	case cfg.Rolls == nil:
		panic("item roller is required")
	case cfg.Settings == nil:
		panic("settings are required")
	case cfg.Flags == nil:
		panic("flag store is required")
	case cfg.Localizer == nil:
		panic("localizer is required")
	case cfg.Initializer == nil:
		panic("formula initializer is required")
	case cfg.Input == nil:
		panic("snapshot source is required")
	case cfg.Sink == nil:
		panic("chat sink is required")
	}

	svc := &Service{
		base:        cfg.Base,
		rolls:       cfg.Rolls,
		settings:    cfg.Settings,
		flags:       cfg.Flags,
		localizer:   cfg.Localizer,
		initializer: cfg.Initializer,
		input:       cfg.Input,
		sink:        cfg.Sink,
		bus:         cfg.Bus,
		settleDelay: cfg.SettleDelay,
		diceSound:   cfg.DiceSound,
		logger:      cfg.Logger,
		tracer:      otel.Tracer(tracerName),
	}
	if svc.settleDelay < 0 {
		svc.settleDelay = DefaultSettleDelay
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// Wrap returns base augmented with auto-rolling
func Wrap(base ItemUser, cfg *Config) ItemUser {
	if cfg == nil {
		panic("config is required")
	}
	c := *cfg
	c.Base = base
	return NewService(&c)
}

// Use runs the base use and the rolls it implies. It returns the emitted
// record, or the finished record unpersisted when the caller asked for no
// message. A cancelled base use returns nil, nil with no side effects.
// Failures of the damage or formula roll come back as *FollowUpError together
// with the record.
func (s *Service) Use(ctx context.Context, it *item.Item, opts *UseOptions) (*chat.Record, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}

	ctx, span := s.tracer.Start(ctx, "autoroll.Use", trace.WithAttributes(
		attribute.String("item.id", it.ID),
		attribute.String("item.type", string(it.Type)),
	))
	defer span.End()

	rec, mods, cfg, err := s.useAndEmit(ctx, it, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if rec == nil {
		span.SetAttributes(attribute.Bool("autoroll.cancelled", true))
		return nil, nil
	}

	if err := s.followUp(ctx, it, opts, rec, mods, cfg); err != nil {
		span.RecordError(err)
		s.logger.Warn("follow-up roll failed",
			zap.String("item_id", it.ID),
			zap.String("record_id", rec.ID),
			zap.Error(err))
		return rec, err
	}

	return rec, nil
}

// useAndEmit runs the base use, the check roll and the button rebuild, then
// emits or returns the record
func (s *Service) useAndEmit(ctx context.Context, it *item.Item, opts *UseOptions) (*chat.Record, input.Snapshot, ActionConfig, error) {
	if err := s.initializer.Initialize(ctx, it); err != nil {
		return nil, input.Snapshot{}, ActionConfig{}, dnderr.Wrapf(err, "failed to initialize formula groups for item %s", it.ID)
	}

	mods := s.input.Snapshot().Clone()

	cfg, err := s.resolveActionConfig(ctx, it)
	if err != nil {
		return nil, mods, cfg, err
	}

	createMessage := true
	baseOpts := UseOptions{}
	if opts != nil {
		if opts.CreateMessage != nil {
			createMessage = *opts.CreateMessage
		}
		if opts.SpellLevel != nil {
			level := *opts.SpellLevel
			baseOpts.SpellLevel = &level
		}
	}
	noMessage := false
	baseOpts.CreateMessage = &noMessage

	rec, err := s.base.Use(ctx, it, &baseOpts)
	if err != nil {
		return nil, mods, cfg, dnderr.Wrapf(err, "failed to use item %s", it.ID)
	}
	if rec == nil {
		s.logger.Debug("item use cancelled", zap.String("item_id", it.ID))
		return nil, mods, cfg, nil
	}

	caps := it.Capabilities()
	if cfg.AutoRollCheck && caps.Check != item.CheckNone {
		if err := s.applyCheckRoll(ctx, it, caps.Check, rec, mods); err != nil {
			return nil, mods, cfg, err
		}
	}

	groups, err := s.flags.GetFormulaGroups(ctx, it.ID)
	if err != nil {
		return nil, mods, cfg, dnderr.Wrapf(err, "failed to read formula groups for item %s", it.ID)
	}
	if err := RegenerateButtons(rec, it, groups, s.localizer); err != nil {
		return nil, mods, cfg, err
	}

	if !createMessage {
		return rec, mods, cfg, nil
	}

	stored, err := s.sink.Create(ctx, rec)
	if err != nil {
		return nil, mods, cfg, dnderr.Wrapf(err, "failed to emit record for item %s", it.ID)
	}
	s.announce(stored)

	return stored, mods, cfg, nil
}

func (s *Service) applyCheckRoll(ctx context.Context, it *item.Item, kind item.CheckKind, rec *chat.Record, mods input.Snapshot) error {
	ctx, span := s.tracer.Start(ctx, "autoroll.check", trace.WithAttributes(
		attribute.String("check.kind", kind.String()),
	))
	defer span.End()

	opts := itemroll.CheckOptions{Modifiers: mods.Clone(), ChatMessage: false}

	var (
		check *rolls.Roll
		title string
		err   error
	)
	switch kind {
	case item.CheckAttack:
		check, err = s.rolls.RollAttack(ctx, it, opts)
		if err == nil {
			title = AttackTitle(it, check, s.localizer)
		}
	case item.CheckTool:
		check, err = s.rolls.RollToolCheck(ctx, it, opts)
		if err == nil {
			title = ToolTitle(check, s.localizer)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return dnderr.Wrapf(err, "failed to roll %s for item %s", kind, it.ID)
	}

	if err := MutateWithCheckRoll(rec, check, title); err != nil {
		return err
	}

	rec.Flavor = ""
	rec.Type = chat.MessageTypeRoll
	rec.Roll = check
	rec.Sound = s.diceSound

	span.SetAttributes(attribute.Int("check.total", check.Total))
	return nil
}

// followUp rolls damage and then the item's formula. The first failed stage
// ends the chain.
func (s *Service) followUp(ctx context.Context, it *item.Item, opts *UseOptions, rec *chat.Record, mods input.Snapshot, cfg ActionConfig) error {
	caps := it.Capabilities()

	type stage struct {
		name Stage
		run  func(context.Context) error
	}
	var stages []stage
	if caps.Damage && cfg.AutoRollDamage {
		stages = append(stages, stage{StageDamage, func(ctx context.Context) error {
			level, err := resolveSpellLevel(opts, rec)
			if err != nil {
				return err
			}
			_, err = s.rolls.RollDamage(ctx, it, itemroll.DamageOptions{
				Modifiers:  mods.Clone(),
				SpellLevel: level,
			})
			return err
		}})
	}
	if caps.Formula && cfg.AutoRollOther {
		stages = append(stages, stage{StageFormula, func(ctx context.Context) error {
			_, err := s.rolls.RollFormula(ctx, it, itemroll.FormulaOptions{Modifiers: mods.Clone()})
			return err
		}})
	}

	for _, st := range stages {
		err := s.settle(ctx)
		if err == nil {
			err = s.runStage(ctx, st.name, st.run)
		}
		if err != nil {
			return &FollowUpError{Stage: st.name, Err: err}
		}
	}
	return nil
}

func (s *Service) runStage(ctx context.Context, name Stage, run func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "autoroll."+string(name))
	defer span.End()

	if err := run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// settle waits out the settle delay. The delay gives listeners of the emitted
// card time to render it; Sink.Create returning is the only durable signal.
func (s *Service) settle(ctx context.Context) error {
	if s.settleDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.settleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) announce(rec *chat.Record) {
	s.logger.Info("emitted item card",
		zap.String("record_id", rec.ID),
		zap.String("actor_id", rec.ActorID),
		zap.String("item_id", rec.ItemID))

	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(events.NewRecordEmittedEvent(rec.ID, rec.ActorID, rec.ItemID)); err != nil {
		s.logger.Warn("record emitted listener failed",
			zap.String("record_id", rec.ID),
			zap.Error(err))
	}
}
