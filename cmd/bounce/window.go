package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the mouse and keyboard.
Closing the window quits.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger("bounce")

	game, rt, err := newGame(logger, 0, 0)
	if err != nil {
		return err
	}
	return window.Run(game, rt.TickRate, logger)
}
