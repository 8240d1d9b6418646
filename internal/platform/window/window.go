// Package window hosts the simulation in a desktop window, or in a browser
// canvas when built for js/wasm, through Ebitengine.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Title is the window caption.
const Title = "Bouncing Balls"

// Host adapts a bounce game to ebiten.Game.
// Ebitengine calls Update at the configured TPS; each call is one tick.
type Host struct {
	game    *bounce.Game
	surface *core.Surface
	frame   *ebiten.Image
	logger  *log.Logger
	last    core.Point
}

// NewHost prepares a host for game.
func NewHost(game *bounce.Game, logger *log.Logger) (*Host, error) {
	surface, err := game.NewSurface()
	if err != nil {
		return nil, err
	}
	return &Host{
		game:    game,
		surface: surface,
		frame:   ebiten.NewImage(surface.Width(), surface.Height()),
		logger:  logger,
		last:    game.State().Pointer,
	}, nil
}

// Update polls input and runs one simulation tick.
func (h *Host) Update() error {
	snap := poll()
	if err := h.game.Tick(snap.Events(h.last), h.surface); err != nil {
		if !errors.Is(err, bounce.ErrStopped) {
			h.logger.Error("error in game loop", "error", err)
		}
		return ebiten.Termination
	}
	h.last = snap.Cursor

	if !h.game.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the rendered frame to the screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.frame.WritePixels(h.surface.Pix())
	screen.DrawImage(h.frame, nil)
}

// Layout keeps the logical screen at the viewport size; Ebitengine scales it
// to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.surface.Width(), h.surface.Height()
}

// poll reads the current input state from Ebitengine.
func poll() Snapshot {
	x, y := ebiten.CursorPosition()
	return Snapshot{
		Closing:   ebiten.IsWindowBeingClosed(),
		Add:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Terminate: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Primary:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Secondary: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Cursor:    core.Pt(x, y),
	}
}

// Run opens the window and blocks until the game stops or the window closes.
// A tick failure is logged and closes the window like a normal stop; only
// host setup failures are returned.
func Run(game *bounce.Game, tickRate int, logger *log.Logger) error {
	host, err := NewHost(game, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(host.surface.Width(), host.surface.Height())
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(tickRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("game loop starting", "tps", tickRate)
	defer logger.Info("game loop ended")

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
