package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// KeyMap defines the terminal key bindings.
// Bindings translate to abstract input events; only Screenshot is handled
// by the platform itself.
type KeyMap struct {
	Add        key.Binding
	Reset      key.Binding
	Terminate  key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Reset, k.Terminate, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Reset},
		{k.Terminate, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "add ball"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Terminate: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to an input event.
// Returns false for keys that have no simulation meaning.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit(), true
	case key.Matches(msg, k.Add):
		return core.KeyDown(core.KeyAdd), true
	case key.Matches(msg, k.Reset):
		return core.KeyDown(core.KeyReset), true
	case key.Matches(msg, k.Terminate):
		return core.KeyDown(core.KeyTerminate), true
	}
	return core.Event{}, false
}

// MapMouse translates a mouse report to an input event.
// toPixel converts the cell under the pointer to a viewport position and
// reports false when the cell is outside the frame.
func MapMouse(msg tea.MouseMsg, toPixel func(x, y int) (core.Point, bool)) (core.Event, bool) {
	pos, ok := toPixel(msg.X, msg.Y)
	if !ok {
		return core.Event{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return core.PointerDown(core.ButtonPrimary, pos), true
		case tea.MouseButtonRight:
			return core.PointerDown(core.ButtonSecondary, pos), true
		case tea.MouseButtonMiddle:
			return core.PointerDown(core.ButtonMiddle, pos), true
		}
	case tea.MouseActionMotion:
		return core.PointerMove(pos), true
	}

	return core.Event{}, false
}
