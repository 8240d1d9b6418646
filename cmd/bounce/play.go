package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play in this terminal. The 800x600 canvas is scaled to the terminal
using half-block characters, two pixel rows per cell.

Controls:
  Space      - Add a ball at a random position
  Click      - Add a ball at the cursor
  R          - Reset
  Esc        - Exit
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a PNG screenshot to ~/.bounce/screenshots

Examples:
  bounce play
  bounce play --seed 42
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("bounce")

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	game, rt, err := newGame(logger, width, height)
	if err != nil {
		return err
	}
	return tui.Run(game, rt, logger)
}
