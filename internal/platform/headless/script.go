package headless

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// YAMLScript is the on-disk form of an event script.
type YAMLScript struct {
	Ticks  int         `yaml:"ticks"`
	Events []YAMLEvent `yaml:"events"`
}

// YAMLEvent is one scripted input event.
type YAMLEvent struct {
	Tick   int    `yaml:"tick"`
	Kind   string `yaml:"kind"`             // quit, key, click, move
	Key    string `yaml:"key,omitempty"`    // add, reset, terminate
	Button string `yaml:"button,omitempty"` // primary (default), secondary, middle
	X      int    `yaml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"`
}

// Script is a parsed event script: the tick count and the events to deliver
// at each tick, in file order.
type Script struct {
	Ticks  int
	events map[int][]core.Event
}

// NewScript returns a script of ticks ticks with no events.
func NewScript(ticks int) *Script {
	return &Script{Ticks: ticks, events: make(map[int][]core.Event)}
}

// Add schedules e for delivery at tick.
func (s *Script) Add(tick int, e core.Event) {
	s.events[tick] = append(s.events[tick], e)
}

// At returns the events scheduled for tick.
func (s *Script) At(tick int) []core.Event {
	return s.events[tick]
}

// Len returns the number of scheduled events.
func (s *Script) Len() int {
	n := 0
	for _, evs := range s.events {
		n += len(evs)
	}
	return n
}

// LastTick returns the highest tick that has an event, or -1.
func (s *Script) LastTick() int {
	if len(s.events) == 0 {
		return -1
	}
	ticks := make([]int, 0, len(s.events))
	for t := range s.events {
		ticks = append(ticks, t)
	}
	return slices.Max(ticks)
}

// ParseScript parses a YAML event script.
func ParseScript(data []byte) (*Script, error) {
	var ys YAMLScript
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("headless: yaml unmarshal: %w", err)
	}

	s := NewScript(ys.Ticks)
	for i, ye := range ys.Events {
		if ye.Tick < 0 {
			return nil, fmt.Errorf("headless: event %d: negative tick %d", i, ye.Tick)
		}
		e, err := ye.event()
		if err != nil {
			return nil, fmt.Errorf("headless: event %d: %w", i, err)
		}
		s.Add(ye.Tick, e)
	}

	if s.Ticks <= 0 {
		s.Ticks = s.LastTick() + 1
	}
	return s, nil
}

// LoadScript reads and parses the script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("headless: read script: %w", err)
	}
	return ParseScript(data)
}

func (ye YAMLEvent) event() (core.Event, error) {
	pos := core.Pt(ye.X, ye.Y)

	switch ye.Kind {
	case "quit":
		return core.Quit(), nil

	case "key":
		switch ye.Key {
		case "add":
			return core.KeyDown(core.KeyAdd), nil
		case "reset":
			return core.KeyDown(core.KeyReset), nil
		case "terminate":
			return core.KeyDown(core.KeyTerminate), nil
		}
		return core.Event{}, fmt.Errorf("unknown key %q", ye.Key)

	case "click":
		switch ye.Button {
		case "", "primary":
			return core.PointerDown(core.ButtonPrimary, pos), nil
		case "secondary":
			return core.PointerDown(core.ButtonSecondary, pos), nil
		case "middle":
			return core.PointerDown(core.ButtonMiddle, pos), nil
		}
		return core.Event{}, fmt.Errorf("unknown button %q", ye.Button)

	case "move":
		return core.PointerMove(pos), nil
	}

	return core.Event{}, fmt.Errorf("unknown kind %q", ye.Kind)
}
