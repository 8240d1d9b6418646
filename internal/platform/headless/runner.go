// Package headless drives the simulation without a display: ticks are fed
// from an event script, optionally paced in real time, and the last frame can
// be written out as PNG.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Runner replays a script against one game.
type Runner struct {
	game     *bounce.Game
	surface  *core.Surface
	logger   *log.Logger
	tickRate int
	realtime bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithRealtime paces ticks at tickRate per second instead of running flat out.
func WithRealtime(tickRate int) Option {
	return func(r *Runner) {
		r.realtime = true
		r.tickRate = tickRate
	}
}

// WithLogger sets the logger used for tick failures.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner prepares a runner for game.
func NewRunner(game *bounce.Game, opts ...Option) (*Runner, error) {
	surface, err := game.NewSurface()
	if err != nil {
		return nil, err
	}
	r := &Runner{
		game:     game,
		surface:  surface,
		logger:   log.New(io.Discard),
		tickRate: game.Config().Simulation.TickRate,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.realtime && r.tickRate <= 0 {
		return nil, fmt.Errorf("%w: tick rate must be positive", bounce.ErrInit)
	}
	return r, nil
}

// Run plays script until its tick count is reached, the game stops, or ctx
// is cancelled. Each tick is followed by a scheduler yield. A tick failure is
// logged and ends the run without an error, like a normal stop.
func (r *Runner) Run(ctx context.Context, script *Script) (core.GameState, error) {
	var ticker *time.Ticker
	if r.realtime {
		ticker = time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
	}

	for tick := 0; tick < script.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return r.game.State(), err
		}

		if err := r.game.Tick(script.At(tick), r.surface); err != nil {
			var tickErr *bounce.TickError
			if errors.As(err, &tickErr) {
				r.logger.Error("error in game loop", "error", err)
			}
			break
		}
		if !r.game.Running() {
			break
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return r.game.State(), ctx.Err()
			case <-ticker.C:
			}
		}
		runtime.Gosched()
	}

	return r.game.State(), nil
}

// Snapshot writes the last rendered frame as PNG.
func (r *Runner) Snapshot(w io.Writer) error {
	if err := r.surface.EncodePNG(w); err != nil {
		return fmt.Errorf("headless: snapshot: %w", err)
	}
	return nil
}
