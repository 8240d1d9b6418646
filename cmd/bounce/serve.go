package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/web"
)

var (
	flagAddr string
	flagRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	Long: `Start the HTTP server that delivers the demo to a browser.

Routes:
  /, /index.html  - Landing page (built-in, or server.index from config)
  /game           - JSON status with the control scheme
  anything else   - Static files from server.root

Build the browser version next to the served files with:
  GOOS=js GOARCH=wasm go build -o bounce.wasm ./cmd/bounce-wasm

Examples:
  bounce serve
  bounce serve --addr :8080 --root ./public`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default from config)")
	cmd.Flags().StringVar(&flagRoot, "root", "", "Directory of static files (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger("bounce-web")

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("error initializing server", "error", err)
		return err
	}
	if flagAddr != "" {
		cfg.Server.Address = flagAddr
	}
	if flagRoot != "" {
		cfg.Server.Root = flagRoot
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(cfg.Server, bounce.Controls(cfg.Scoring), logger)
	logger.Info("press Ctrl+C to stop the server")
	return server.ListenAndServe(ctx)
}
