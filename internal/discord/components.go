package discord

import (
	"github.com/bwmarrin/discordgo"
)

const maxButtonsPerRow = 5

// ComponentBuilder lays buttons out in action rows of at most five
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder() *ComponentBuilder {
	return &ComponentBuilder{
		currentRow: make([]discordgo.MessageComponent, 0, maxButtonsPerRow),
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, customID string) *ComponentBuilder {
	if len(b.currentRow) >= maxButtonsPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.currentRow})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxButtonsPerRow)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}
