package headless

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

func newGame(t *testing.T) *bounce.Game {
	t.Helper()
	g, err := bounce.New(config.DefaultBounceConfig(), core.RuntimeConfig{TickRate: 60, Seed: 7})
	if err != nil {
		t.Fatalf("bounce.New: %v", err)
	}
	return g
}

func TestParseScript(t *testing.T) {
	data := []byte(`
ticks: 30
events:
  - tick: 1
    kind: key
    key: add
  - tick: 1
    kind: move
    x: 100
    y: 200
  - tick: 4
    kind: click
    x: 300
    y: 150
  - tick: 4
    kind: click
    button: secondary
  - tick: 9
    kind: quit
`)

	s, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	if s.Ticks != 30 {
		t.Errorf("Ticks = %d, expected 30", s.Ticks)
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", s.Len())
	}
	if s.LastTick() != 9 {
		t.Errorf("LastTick() = %d, expected 9", s.LastTick())
	}

	at1 := s.At(1)
	if len(at1) != 2 || at1[0] != core.KeyDown(core.KeyAdd) || at1[1] != core.PointerMove(core.Pt(100, 200)) {
		t.Errorf("At(1) = %v", at1)
	}
	at4 := s.At(4)
	if len(at4) != 2 || at4[0] != core.PointerDown(core.ButtonPrimary, core.Pt(300, 150)) ||
		at4[1].Button != core.ButtonSecondary {
		t.Errorf("At(4) = %v", at4)
	}
	if len(s.At(2)) != 0 {
		t.Errorf("At(2) = %v, expected no events", s.At(2))
	}
}

func TestParseScriptDefaultsTicks(t *testing.T) {
	s, err := ParseScript([]byte("events:\n  - tick: 12\n    kind: key\n    key: reset\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Ticks != 13 {
		t.Errorf("Ticks = %d, expected 13", s.Ticks)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "ticks: [1"},
		{"unknown kind", "events:\n  - tick: 0\n    kind: jump\n"},
		{"unknown key", "events:\n  - tick: 0\n    kind: key\n    key: space\n"},
		{"unknown button", "events:\n  - tick: 0\n    kind: click\n    button: fourth\n"},
		{"negative tick", "events:\n  - tick: -1\n    kind: quit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerScenario(t *testing.T) {
	game := newGame(t)
	r, err := NewRunner(game)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	// 19 adds then a click: 20 balls, 19*10 + 5 points.
	s := NewScript(25)
	for tick := range 19 {
		s.Add(tick, core.KeyDown(core.KeyAdd))
	}
	s.Add(19, core.PointerDown(core.ButtonPrimary, core.Pt(400, 300)))
	s.Add(20, core.KeyDown(core.KeyAdd))

	st, err := r.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if st.Balls != 20 {
		t.Errorf("Balls = %d, expected 20", st.Balls)
	}
	if st.Score != 19*10+5+10 {
		t.Errorf("Score = %d, expected %d", st.Score, 19*10+5+10)
	}
	if st.Ticks != 25 {
		t.Errorf("Ticks = %d, expected 25", st.Ticks)
	}
	if !st.Running {
		t.Error("game should still be running")
	}
}

func TestRunnerStopsOnQuit(t *testing.T) {
	game := newGame(t)
	r, err := NewRunner(game)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	s := NewScript(100)
	s.Add(5, core.Quit())

	st, err := r.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if st.Running {
		t.Error("game should be stopped")
	}
	// The quitting tick still completes.
	if st.Ticks != 6 {
		t.Errorf("Ticks = %d, expected 6", st.Ticks)
	}
}

func TestRunnerCancelled(t *testing.T) {
	game := newGame(t)
	r, err := NewRunner(game, WithRealtime(60))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	st, err := r.Run(ctx, NewScript(1_000_000))
	if err == nil {
		t.Fatal("expected context error")
	}
	if st.Ticks == 0 || st.Ticks > 1000 {
		t.Errorf("Ticks = %d, expected a handful of paced ticks", st.Ticks)
	}
}

func TestRunnerRejectsBadTickRate(t *testing.T) {
	if _, err := NewRunner(newGame(t), WithRealtime(0)); err == nil {
		t.Error("expected error for zero tick rate")
	}
}

func TestRunnerSnapshot(t *testing.T) {
	game := newGame(t)
	r, err := NewRunner(game)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if _, err := r.Run(context.Background(), NewScript(3)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Snapshot(&buf); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("snapshot is %dx%d, expected 800x600", b.Dx(), b.Dy())
	}
}
