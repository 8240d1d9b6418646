// Package bounce implements the bouncing-ball simulation: a bounded list of
// balls driven by input events, advanced and rendered once per tick.
// The package holds no global state and knows nothing about terminals or
// windows; hosts feed it events and present the surface it renders.
package bounce

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// State is the lifecycle state of a game.
type State int

const (
	StateRunning State = iota
	StateStopped       // Terminal
)

// String returns the state name.
func (s State) String() string {
	if s == StateStopped {
		return "Stopped"
	}
	return "Running"
}

// HUD layout, in pixels.
const (
	hudMargin       = 10
	hudLineSpacing  = 40  // Between the score and ball count lines
	helpBlockHeight = 100 // Control lines start this far above the bottom
	helpLineSpacing = 20
	pointerInset    = 200 // Pointer readout starts this far left of the right edge
)

// Game is a single, explicitly owned simulation instance.
// It is not safe for concurrent use; hosts call Tick from one goroutine.
type Game struct {
	cfg      config.BounceConfig
	rng      Rand
	controls []Control

	balls   []*Ball // Oldest first
	score   int
	pointer core.Point
	state   State
	ticks   int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand replaces the seeded source with rng.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// New validates cfg and returns a running game populated with the initial
// balls. runtime.Seed seeds the random source; zero picks a time-based seed.
// Failures wrap ErrInit.
func New(cfg config.BounceConfig, runtime core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		controls: Controls(cfg.Scoring),
		balls:    make([]*Ball, 0, cfg.Simulation.Capacity+1),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInit)
	}

	g.populate()
	return g, nil
}

// Tick runs exactly one simulation tick: drain events, advance, enforce
// capacity and, when dst is non-nil, render the frame into dst.
// Pacing and yielding belong to the host.
//
// Any error or panic inside the tick is returned as a *TickError and stops
// the game. Ticking a stopped game does nothing and returns ErrStopped.
func (g *Game) Tick(events []core.Event, dst *core.Surface) (err error) {
	if g.state == StateStopped {
		return ErrStopped
	}

	defer func() {
		if r := recover(); r != nil {
			err = &TickError{Tick: g.ticks, Cause: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			g.state = StateStopped
		}
	}()

	g.Step(events)

	if dst != nil {
		if renderErr := g.Render(dst); renderErr != nil {
			return &TickError{Tick: g.ticks, Cause: renderErr}
		}
	}

	g.ticks++
	return nil
}

// Step performs the simulation part of a tick without rendering.
// A quit or terminate event stops the game, but the remaining events and
// the advance still run for this tick.
func (g *Game) Step(events []core.Event) {
	for _, e := range events {
		g.handleEvent(e)
	}

	w, h := g.viewport()
	for _, b := range g.balls {
		b.Advance(w, h)
	}

	g.enforceCapacity()
}

// handleEvent applies a single input event.
func (g *Game) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventQuit:
		g.state = StateStopped

	case core.EventKeyDown:
		switch e.Key {
		case core.KeyAdd:
			g.spawnRandom()
			g.score += g.cfg.Scoring.AddBall
		case core.KeyReset:
			clear(g.balls)
			g.balls = g.balls[:0]
			g.score = 0
			g.populate()
		case core.KeyTerminate:
			g.state = StateStopped
		}

	case core.EventPointerDown:
		if e.Button == core.ButtonPrimary {
			g.spawnAt(core.Vec{X: float64(e.Pos.X), Y: float64(e.Pos.Y)})
			g.score += g.cfg.Scoring.ClickBall
		}

	case core.EventPointerMove:
		g.pointer = e.Pos
	}
}

// enforceCapacity evicts the oldest balls until the list fits.
// With at most one spawn per tick this removes exactly one ball; a burst of
// spawns in one tick evicts as many as needed rather than a single one.
func (g *Game) enforceCapacity() {
	excess := len(g.balls) - g.cfg.Simulation.Capacity
	if excess <= 0 {
		return
	}
	n := len(g.balls)
	copy(g.balls, g.balls[excess:])
	clear(g.balls[n-excess:])
	g.balls = g.balls[:n-excess]
}

// populate appends the initial number of randomly placed balls.
func (g *Game) populate() {
	for range g.cfg.Simulation.InitialBalls {
		g.spawnRandom()
	}
}

// spawnRandom adds a ball at a random position at least spawn_margin
// pixels from every edge.
func (g *Game) spawnRandom() {
	m := g.cfg.Ball.SpawnMargin
	x := m + g.rng.Intn(g.cfg.Viewport.Width-2*m+1)
	y := m + g.rng.Intn(g.cfg.Viewport.Height-2*m+1)
	g.spawnAt(core.Vec{X: float64(x), Y: float64(y)})
}

func (g *Game) spawnAt(pos core.Vec) {
	g.balls = append(g.balls, NewBall(pos, g.cfg.Ball.Radius, g.cfg.Ball.MaxSpeed, g.rng))
}

// Render draws the current frame: background, balls oldest first, then the
// HUD text. dst must match the configured viewport.
func (g *Game) Render(dst *core.Surface) error {
	if dst.Width() != g.cfg.Viewport.Width || dst.Height() != g.cfg.Viewport.Height {
		return fmt.Errorf("bounce: surface is %dx%d, viewport is %dx%d",
			dst.Width(), dst.Height(), g.cfg.Viewport.Width, g.cfg.Viewport.Height)
	}

	dst.Clear(core.ColorBlack)

	for _, b := range g.balls {
		b.Render(dst)
	}

	dst.DrawText(hudMargin, hudMargin, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawText(hudMargin, hudMargin+hudLineSpacing, fmt.Sprintf("Balls: %d", len(g.balls)), core.ColorWhite)

	for i, c := range g.controls {
		dst.DrawText(hudMargin, dst.Height()-helpBlockHeight+i*helpLineSpacing, c.String(), core.ColorWhite)
	}

	dst.DrawText(dst.Width()-pointerInset, hudMargin,
		fmt.Sprintf("Mouse: %d, %d", g.pointer.X, g.pointer.Y), core.ColorWhite)
	return nil
}

// NewSurface allocates a surface matching the game's viewport.
func (g *Game) NewSurface() (*core.Surface, error) {
	s, err := core.NewSurface(g.cfg.Viewport.Width, g.cfg.Viewport.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return s, nil
}

// State returns a summary of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Balls:   len(g.balls),
		Pointer: g.pointer,
		Running: g.state == StateRunning,
		Ticks:   g.ticks,
	}
}

// Running reports whether the game still accepts ticks.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Balls returns a copy of the live balls, oldest first.
func (g *Game) Balls() []Ball {
	out := make([]Ball, len(g.balls))
	for i, b := range g.balls {
		out[i] = *b
	}
	return out
}

// Controls returns the control scheme shown in the HUD.
func (g *Game) Controls() []Control {
	return g.controls
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BounceConfig {
	return g.cfg
}

func (g *Game) viewport() (float64, float64) {
	return float64(g.cfg.Viewport.Width), float64(g.cfg.Viewport.Height)
}
