package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/platform/headless"
)

var (
	flagTicks    int
	flagRealtime bool
	flagPNG      string
)

var runCmd = &cobra.Command{
	Use:   "run [script.yaml]",
	Short: "Replay an event script without a display",
	Long: `Run the simulation headless. Events come from a YAML script:

  ticks: 120
  events:
    - tick: 5
      kind: key        # key, click, move or quit
      key: add         # add, reset or terminate
    - tick: 10
      kind: click
      x: 400
      y: 300

Without a script the simulation runs --ticks ticks with no input.

Examples:
  bounce run script.yaml
  bounce run --ticks 600 --realtime
  bounce run script.yaml --seed 1 --png last.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Tick count, overrides the script's (default 600 without a script)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate")
	runCmd.Flags().StringVar(&flagPNG, "png", "", "Write the last frame to this PNG file")
}

func runHeadless(_ *cobra.Command, args []string) error {
	logger := newLogger("bounce")

	script := headless.NewScript(600)
	if len(args) == 1 {
		s, err := headless.LoadScript(args[0])
		if err != nil {
			logger.Error("error initializing game", "error", err)
			return err
		}
		script = s
	}
	if flagTicks > 0 {
		script.Ticks = flagTicks
	}

	game, rt, err := newGame(logger, 0, 0)
	if err != nil {
		return err
	}

	opts := []headless.Option{headless.WithLogger(logger)}
	if flagRealtime {
		opts = append(opts, headless.WithRealtime(rt.TickRate))
	}
	runner, err := headless.NewRunner(game, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("game loop starting", "ticks", script.Ticks, "events", script.Len())
	st, err := runner.Run(ctx, script)
	logger.Info("game loop ended", "ticks", st.Ticks)
	if err != nil {
		return err
	}

	fmt.Printf("Score: %d\nBalls: %d\nTicks: %d\n", st.Score, st.Balls, st.Ticks)

	if flagPNG != "" {
		f, err := os.Create(flagPNG)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagPNG, err)
		}
		defer f.Close()
		if err := runner.Snapshot(f); err != nil {
			return err
		}
	}
	return nil
}
