package window

import "github.com/vovakirdan/tui-bounce/internal/core"

// Snapshot is the input state polled from the window once per update.
type Snapshot struct {
	Closing   bool // Close button pressed
	Add       bool // Space pressed this frame
	Reset     bool // R pressed this frame
	Terminate bool // Escape pressed this frame
	Primary   bool // Left button pressed this frame
	Secondary bool // Right button pressed this frame
	Cursor    core.Point
}

// Events translates a snapshot into input events in a fixed order: quit,
// keys, pointer move, then pointer presses. A move is reported only when the
// cursor differs from last.
func (s Snapshot) Events(last core.Point) []core.Event {
	var events []core.Event

	if s.Closing {
		events = append(events, core.Quit())
	}
	if s.Add {
		events = append(events, core.KeyDown(core.KeyAdd))
	}
	if s.Reset {
		events = append(events, core.KeyDown(core.KeyReset))
	}
	if s.Terminate {
		events = append(events, core.KeyDown(core.KeyTerminate))
	}
	if s.Cursor != last {
		events = append(events, core.PointerMove(s.Cursor))
	}
	if s.Primary {
		events = append(events, core.PointerDown(core.ButtonPrimary, s.Cursor))
	}
	if s.Secondary {
		events = append(events, core.PointerDown(core.ButtonSecondary, s.Cursor))
	}

	return events
}
