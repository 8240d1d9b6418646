// bounce is a bouncing-ball demo that runs in a terminal, over SSH, in a
// window, headless, or in a browser behind a small HTTP server.
//
// Usage:
//
//	bounce                   - Serve the landing page (same as serve)
//	bounce play              - Play in this terminal
//	bounce window            - Play in a desktop window
//	bounce ssh               - Start SSH server for remote play
//	bounce serve             - Serve the landing page and static files over HTTP
//	bounce run <script>      - Replay an event script without a display
//	bounce config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a YAML config file
//	--fps <rate>        - Override the tick rate (0 = use config)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bouncing balls - a tiny interactive animation demo",
	Long: `Bounce draws colored balls bouncing around an 800x600 canvas.
Add balls with space or a click, reset with R, leave with Esc.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  ssh      - Start SSH server for remote play
  serve    - Serve the landing page over HTTP (default)
  run      - Replay an event script without a display
  config   - Print the effective configuration

Examples:
  bounce play
  bounce play --seed 42 --fps 30
  bounce ssh --ssh :2222
  bounce serve --addr :8080
  bounce run script.yaml --png last.png`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addServeFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger at the level chosen by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig() (config.BounceConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	return cfg, nil
}

// runtimeConfig returns the host settings for a w x h terminal.
func runtimeConfig(cfg config.BounceConfig, w, h int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w > 0 && h > 0 {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = cfg.Simulation.TickRate
	rt.Seed = flagSeed
	return rt
}

// newGame loads the configuration and builds a game, logging the outcome.
func newGame(logger *log.Logger, w, h int) (*bounce.Game, core.RuntimeConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("error initializing game", "error", err)
		return nil, core.RuntimeConfig{}, fmt.Errorf("%w: %w", bounce.ErrInit, err)
	}

	rt := runtimeConfig(cfg, w, h)
	game, err := bounce.New(cfg, rt)
	if err != nil {
		logger.Error("error initializing game", "error", err)
		return nil, rt, err
	}

	logger.Info("game initialized successfully",
		"viewport", fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height),
		"tick_rate", rt.TickRate,
	)
	return game, rt, nil
}
