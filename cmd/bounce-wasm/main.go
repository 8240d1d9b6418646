// bounce-wasm is the browser build of the demo. It runs the window host on
// the page's canvas with the embedded default configuration:
//
//	GOOS=js GOARCH=wasm go build -o bounce.wasm ./cmd/bounce-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" .
//	bounce serve
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/platform/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
	})

	cfg, err := config.Load("")
	if err != nil {
		logger.Error("error initializing game", "error", err)
		os.Exit(1)
	}

	game, err := bounce.New(cfg, core.RuntimeConfig{TickRate: cfg.Simulation.TickRate})
	if err != nil {
		logger.Error("error initializing game", "error", err)
		os.Exit(1)
	}
	logger.Info("game initialized successfully")

	if err := window.Run(game, cfg.Simulation.TickRate, logger); err != nil {
		logger.Error("error initializing window", "error", err)
		os.Exit(1)
	}
}
