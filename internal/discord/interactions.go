package discord

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/itemroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// InteractionResponder is the part of *discordgo.Session the handler uses
type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// RecordStore loads emitted records
type RecordStore interface {
	Get(ctx context.Context, id string) (*chat.Record, error)
}

// ActorStore loads actors with their items
type ActorStore interface {
	Get(ctx context.Context, id string) (*item.Actor, error)
}

// DamageRoller rolls an item's damage
type DamageRoller interface {
	RollDamage(ctx context.Context, it *item.Item, opts itemroll.DamageOptions) (*rolls.Roll, error)
}

// Handler answers button presses on broadcast records
type Handler struct {
	responder InteractionResponder
	records   RecordStore
	actors    ActorStore
	rolls     DamageRoller
	logger    *zap.Logger
}

// HandlerConfig configures a Handler
type HandlerConfig struct {
	Responder InteractionResponder
	Records   RecordStore
	Actors    ActorStore
	Rolls     DamageRoller
	Logger    *zap.Logger
}

// NewHandler creates a Handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("config is required")
	}
	switch {
	case cfg.Responder == nil:
		panic("interaction responder is required")
	case cfg.Records == nil:
		panic("record store is required")
	case cfg.Actors == nil:
		panic("actor store is required")
	case cfg.Rolls == nil:
		panic("damage roller is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		responder: cfg.Responder,
		records:   cfg.Records,
		actors:    cfg.Actors,
		rolls:     cfg.Rolls,
		logger:    logger,
	}
}

// HandleInteractionCreate is registered with discordgo's AddHandler
func (h *Handler) HandleInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Handle(context.Background(), i.Interaction); err != nil {
		h.logger.Warn("interaction failed", zap.Error(err))
	}
}

// Handle rolls damage for a pressed formula group button. Interactions that
// are not ours are ignored.
func (h *Handler) Handle(ctx context.Context, interaction *discordgo.Interaction) error {
	if interaction == nil || interaction.Type != discordgo.InteractionMessageComponent {
		return nil
	}

	id, err := ParseCustomID(interaction.MessageComponentData().CustomID)
	if err != nil || id.Domain != Domain {
		return nil
	}

	if err := h.rollGroup(ctx, id); err != nil {
		if respErr := h.respondEphemeral(interaction, "Could not roll: "+err.Error()); respErr != nil {
			h.logger.Warn("failed to report interaction error", zap.Error(respErr))
		}
		return err
	}

	return h.responder.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx))
}

func (h *Handler) rollGroup(ctx context.Context, id *CustomID) error {
	if id.Action != autoroll.ActionFormulaGroup {
		return dnderr.InvalidArgumentf("unsupported action %q", id.Action)
	}
	if id.Target == "" || len(id.Args) != 1 {
		return dnderr.InvalidArgument("formula group button is missing its record or index")
	}
	idx, err := strconv.Atoi(id.Args[0])
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid formula group index")
	}

	rec, err := h.records.Get(ctx, id.Target)
	if err != nil {
		return err
	}
	actor, err := h.actors.Get(ctx, rec.ActorID)
	if err != nil {
		return err
	}
	it := actor.Item(rec.ItemID)
	if it == nil {
		return dnderr.NotFoundf("item %s not found on actor %s", rec.ItemID, rec.ActorID)
	}

	_, err = h.rolls.RollDamage(ctx, it, itemroll.DamageOptions{
		SpellLevel:   rec.SpellLevel,
		FormulaGroup: &idx,
	})
	return err
}

func (h *Handler) respondEphemeral(interaction *discordgo.Interaction, content string) error {
	return h.responder.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
