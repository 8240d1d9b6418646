package bounce

import (
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/config"
)

// Control describes one entry of the control scheme.
type Control struct {
	ID          string // Stable identifier, used as the JSON key on the status page
	Input       string // What the player presses
	Description string
}

// String formats the control the way the HUD shows it.
func (c Control) String() string {
	return c.Input + ": " + c.Description
}

// Controls returns the control scheme with point values taken from scoring.
func Controls(scoring config.ScoringConfig) []Control {
	return []Control{
		{ID: "space", Input: "SPACE", Description: fmt.Sprintf("Add random ball (+%d pts)", scoring.AddBall)},
		{ID: "click", Input: "Click", Description: fmt.Sprintf("Add ball at cursor (+%d pts)", scoring.ClickBall)},
		{ID: "r", Input: "R", Description: "Reset game"},
		{ID: "esc", Input: "ESC", Description: "Exit"},
	}
}
