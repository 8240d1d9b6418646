package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// chromeRows is the number of terminal rows below the frame: status and help.
const chromeRows = 2

// Model is the Bubble Tea model running one bounce game.
type Model struct {
	game     *bounce.Game
	surface  *core.Surface
	screen   *core.Screen
	config   core.RuntimeConfig
	events   *core.EventQueue // Filled by input messages, drained by the next tick
	keys     KeyMap
	help     help.Model
	logger   *log.Logger // Optional; receives tick failures
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *bounce.Game, cfg core.RuntimeConfig) (Model, error) {
	surface, err := game.NewSurface()
	if err != nil {
		return Model{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Simulation.TickRate
	}

	return Model{
		game:    game,
		surface: surface,
		screen:  core.NewScreen(cfg.ScreenW, frameRows(cfg.ScreenH)),
		config:  cfg,
		events:  &core.EventQueue{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

// WithLogger returns a copy of the model that logs tick failures to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Init renders the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	//nolint:errcheck // Surface matches the viewport by construction
	m.game.Render(m.surface)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if e, ok := MapMouse(msg, m.cellToPixel); ok {
			m.events.Push(e)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if e, ok := m.keys.MapKey(msg); ok {
		m.events.Push(e)
	}
	return m, nil
}

// handleResize processes window resize events.
// The viewport is fixed; only the sampling grid follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, frameRows(msg.Height))
	return m, nil
}

// handleTick runs one simulation tick with every event queued since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.game.Tick(m.events.Drain(), m.surface); err != nil {
		if !errors.Is(err, bounce.ErrStopped) {
			m.err = err
			if m.logger != nil {
				m.logger.Error("error in game loop", "error", err)
			}
		}
		m.quitting = true
		return m, tea.Quit
	}

	if !m.game.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// cellToPixel maps a terminal cell to a viewport position.
func (m Model) cellToPixel(x, y int) (core.Point, bool) {
	if x < 0 || y < 0 || x >= m.screen.Width() || y >= m.screen.Height() {
		return core.Point{}, false
	}
	return m.screen.CellToPixel(x, y, m.surface), true
}

// saveScreenshot saves the current frame as a PNG file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bounce", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bounce_%s.png", timestamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.surface.EncodePNG(f)
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Sample(m.surface)
	return RenderScreen(m.screen) + "\n" +
		RenderStatus(m.game.State()) + "\n" +
		m.help.View(m.keys)
}

// Err returns the tick failure that ended the model, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the game summary.
func (m Model) State() core.GameState {
	return m.game.State()
}

// exitError reports how the model ended for the process exit status.
// A tick failure has already been logged and stops the game like a quit.
func (m Model) exitError() error {
	var tickErr *bounce.TickError
	if errors.As(m.err, &tickErr) {
		return nil
	}
	return m.err
}

// Run starts the Bubble Tea program for game and blocks until it stops.
// Tick failures are logged to logger and end the program normally.
func Run(game *bounce.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg)
	if err != nil {
		return err
	}
	model = model.WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer moves are reported without a button held
	)

	logger.Info("game loop starting", "controls", controlSummary(game))
	defer logger.Info("game loop ended")

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}

	if fm, ok := final.(Model); ok {
		return fm.exitError()
	}
	return nil
}

func controlSummary(game *bounce.Game) []string {
	controls := game.Controls()
	out := make([]string, len(controls))
	for i, c := range controls {
		out[i] = c.String()
	}
	return out
}

func frameRows(screenH int) int {
	return max(screenH-chromeRows, 1)
}
