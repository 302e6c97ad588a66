// Package chat defines the shareable chat record produced by an item use and
// the sink records are persisted and broadcast through.
package chat

import (
	"time"

	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
)

// MessageType is how a chat client displays a record
type MessageType string

const (
	MessageTypeOther MessageType = "other"
	MessageTypeRoll  MessageType = "roll"
)

// Record is one chat message. Content holds the chat card markup.
type Record struct {
	ID      string      `json:"id"`
	ActorID string      `json:"actor_id"`
	ItemID  string      `json:"item_id"`
	Content string      `json:"content"`
	Roll    *rolls.Roll `json:"roll,omitempty"`
	Type    MessageType `json:"type"`
	Sound   string      `json:"sound,omitempty"`
	Flavor  string      `json:"flavor,omitempty"`

	// SpellLevel is the slot level the item was used at, nil when not applicable.
	// The card markup carries the same value as data-spell-level.
	SpellLevel *int `json:"spell_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
