// Package rolls holds evaluated roll results and how they are rendered into chat cards.
package rolls

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/KirkDiggler/dnd-autoroll/internal/input"
)

// Tier is the advantage state a d20 roll was made with
type Tier int

const (
	TierNormal Tier = iota
	TierAdvantage
	TierDisadvantage
)

func (t Tier) String() string {
	switch t {
	case TierAdvantage:
		return "advantage"
	case TierDisadvantage:
		return "disadvantage"
	default:
		return "normal"
	}
}

// TierFor maps held modifier keys to a roll tier: alt grants advantage,
// ctrl imposes disadvantage, both together cancel out
func TierFor(mods input.Snapshot) Tier {
	switch {
	case mods.Alt && !mods.Ctrl:
		return TierAdvantage
	case mods.Ctrl && !mods.Alt:
		return TierDisadvantage
	default:
		return TierNormal
	}
}

// Part is one evaluated formula of a multi-part roll
type Part struct {
	Formula   string `json:"formula"`
	Type      string `json:"type,omitempty"`
	Total     int    `json:"total"`
	Breakdown string `json:"breakdown,omitempty"`
}

// Roll is an evaluated roll. It is never modified after creation.
type Roll struct {
	Formula   string `json:"formula"`
	Total     int    `json:"total"`
	Tier      Tier   `json:"tier"`
	Dice      []int  `json:"dice,omitempty"`
	Parts     []Part `json:"parts,omitempty"`
	Breakdown string `json:"breakdown,omitempty"`
	Crit      bool   `json:"crit,omitempty"`
	Fumble    bool   `json:"fumble,omitempty"`
}

var rollTemplate = template.Must(template.New("roll").Parse(
	`<div class="dice-roll" data-tier="{{.Tier}}">` +
		`<div class="dice-result">` +
		`<div class="dice-formula">{{.Formula}}</div>` +
		`{{if .Breakdown}}<div class="dice-tooltip">{{.Breakdown}}</div>{{end}}` +
		`{{range .Parts}}<div class="dice-part" data-type="{{.Type}}">{{.Formula}} = {{.Total}}</div>{{end}}` +
		`<h4 class="dice-total{{if .Crit}} critical{{end}}{{if .Fumble}} fumble{{end}}">{{.Total}}</h4>` +
		`</div></div>`))

// Render returns the chat markup for the roll
func (r *Roll) Render() (string, error) {
	var buf bytes.Buffer
	if err := rollTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render roll: %w", err)
	}
	return buf.String(), nil
}
