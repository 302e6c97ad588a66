// Package discord mirrors emitted chat records into a Discord channel and turns
// presses of their formula group buttons into damage rolls.
package discord

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// MessageSender is the part of *discordgo.Session the broadcaster uses
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Broadcaster posts records to one channel
type Broadcaster struct {
	sender    MessageSender
	channelID string
	logger    *zap.Logger
}

// BroadcasterConfig configures a Broadcaster
type BroadcasterConfig struct {
	Sender    MessageSender
	ChannelID string
	Logger    *zap.Logger
}

// NewBroadcaster creates a Broadcaster
func NewBroadcaster(cfg *BroadcasterConfig) *Broadcaster {
	if cfg == nil || cfg.Sender == nil {
		panic("discord broadcaster requires a sender")
	}
	if cfg.ChannelID == "" {
		panic("discord broadcaster requires a channel")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broadcaster{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		logger:    logger,
	}
}

var _ chat.Broadcaster = (*Broadcaster)(nil)

// Broadcast implements chat.Broadcaster
func (b *Broadcaster) Broadcast(ctx context.Context, rec *chat.Record) error {
	if rec == nil {
		return dnderr.InvalidArgument("record is required")
	}

	msg, err := RecordMessage(rec)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to build discord message")
	}

	sent, err := b.sender.ChannelMessageSendComplex(b.channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to send discord message").
			WithMeta("record_id", rec.ID)
	}

	if sent != nil {
		b.logger.Debug("broadcast record",
			zap.String("record_id", rec.ID),
			zap.String("message_id", sent.ID))
	}
	return nil
}
