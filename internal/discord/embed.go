package discord

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/chatcard"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorCard   = 0x3498db
	ColorCrit   = 0x2ecc71
	ColorFumble = 0xe74c3c
)

// RecordMessage converts a record into a Discord message: the card as an
// embed and one button per formula group
func RecordMessage(rec *chat.Record) (*discordgo.MessageSend, error) {
	card, err := chatcard.Parse(rec.Content)
	if err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       rec.Flavor,
		Description: card.ContentText(),
		Color:       ColorCard,
	}
	if embed.Title == "" {
		embed.Title = card.Title()
	}
	if !rec.CreatedAt.IsZero() {
		embed.Timestamp = rec.CreatedAt.Format(time.RFC3339)
	}
	if rec.Roll != nil {
		name := card.FlavorText()
		if name == "" {
			name = "Result"
		}
		value := fmt.Sprintf("`%s` = **%d**", rec.Roll.Formula, rec.Roll.Total)
		if rec.Roll.Breakdown != "" {
			value += "\n" + rec.Roll.Breakdown
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value})
		switch {
		case rec.Roll.Crit:
			embed.Color = ColorCrit
		case rec.Roll.Fumble:
			embed.Color = ColorFumble
		}
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}

	if rec.ID == "" {
		return msg, nil
	}
	builder := NewComponentBuilder()
	count := 0
	for _, b := range card.Buttons() {
		if b.Action != autoroll.ActionFormulaGroup {
			continue
		}
		idx, err := strconv.Atoi(b.Data["formula-group"])
		if err != nil {
			continue
		}
		customID, err := NewCustomID(b.Action).WithTarget(rec.ID).WithArgs(strconv.Itoa(idx)).Encode()
		if err != nil {
			return nil, err
		}
		builder.Button(b.Label, discordgo.PrimaryButton, customID)
		count++
	}
	if count > 0 {
		msg.Components = builder.Build()
	}
	return msg, nil
}
