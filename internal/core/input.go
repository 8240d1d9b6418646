package core

import "fmt"

// EventKind is the abstract category of an input event.
// Hosts translate their native input (terminal keys, mouse reports, window
// callbacks) into these categories so the simulation never sees a platform type.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window closed, Ctrl+C, SSH session hangup
	EventKeyDown               // Key pressed; Key holds the discriminator
	EventPointerDown           // Pointer button pressed; Button and Pos are set
	EventPointerMove           // Pointer moved; Pos is set
)

// Key is the discriminator of a key-down event.
type Key int

const (
	KeyNone      Key = iota
	KeyAdd           // Space - add a ball at a random position
	KeyReset         // R - clear and repopulate
	KeyTerminate     // Escape - stop the simulation
)

// Button is the discriminator of a pointer-down event.
type Button int

const (
	ButtonNone      Button = iota
	ButtonPrimary          // Left mouse button
	ButtonSecondary        // Right mouse button
	ButtonMiddle           // Wheel click
)

// Event is a single input event delivered to a simulation tick.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	Pos    Point
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// PointerDown returns a pointer-down event for button b at p.
func PointerDown(b Button, p Point) Event {
	return Event{Kind: EventPointerDown, Button: b, Pos: p}
}

// PointerMove returns a pointer-move event to p.
func PointerMove(p Point) Event {
	return Event{Kind: EventPointerMove, Pos: p}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyAdd:
		return "Add"
	case KeyReset:
		return "Reset"
	case KeyTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// String describes the event, mostly for logs and test failures.
func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	case EventPointerDown:
		return fmt.Sprintf("PointerDown(%s, %d, %d)", e.Button, e.Pos.X, e.Pos.Y)
	case EventPointerMove:
		return fmt.Sprintf("PointerMove(%d, %d)", e.Pos.X, e.Pos.Y)
	default:
		return "None"
	}
}

// EventQueue buffers events between ticks.
// Hosts push as input arrives and the next tick drains the whole queue,
// preserving arrival order.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
