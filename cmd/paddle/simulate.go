package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/match"
)

var (
	flagTicks    int
	flagRealtime bool
	flagRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless AI vs AI match",
	Long: `Run a match with both paddles driven by the AI and print a summary.

The match runs as fast as possible for --ticks ticks, or until the clock
runs out. With --realtime it runs on a wall-clock ticker instead. The same
--seed always produces the same final state hash.

Examples:
  paddle simulate --seed 7
  paddle simulate --ticks 600 --difficulty hard
  paddle simulate --realtime --metrics-addr :9090`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to simulate (0 = until the clock runs out)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on a wall-clock ticker")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the result to match history")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "AI difficulty for both paddles")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("paddle-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeDeps, err := buildDeps(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer closeDeps()

	settings := config.DefaultSettings()
	settings.Difficulty = config.DifficultyPreset(flagDifficulty)

	var result *match.Result
	opts := match.Options{
		Observer: deps.Metrics,
		Logger:   logger,
		OnResult: func(r match.Result) {
			result = &r
			if flagRecord && deps.Store != nil {
				if err := deps.Store.SaveResult(r); err != nil {
					logger.Warn("could not save match", "err", err)
				}
			}
			deps.Metrics.MatchFinished(r.Mode, r.Winner())
		},
	}

	s := seed()
	d, err := match.NewDriver(deps.Config, settings, rand.New(rand.NewSource(s)), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	d.Engine().SetLeftAI(true)

	if flagRealtime {
		if err := d.Run(ctx, flagFPS); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	} else {
		runFast(d, flagTicks, flagFPS)
	}
	d.End()

	st := d.State()
	fmt.Printf("Seed:          %d\n", s)
	fmt.Printf("Ticks:         %d\n", d.Snapshot().Tick)
	fmt.Printf("Score:         %d - %d\n", st.Scores.Left, st.Scores.Right)
	fmt.Printf("Longest rally: %d\n", st.LongestRally)
	if result != nil {
		fmt.Printf("Winner:        %s\n", result.Winner())
		fmt.Printf("Played:        %s\n", result.Duration.Round(time.Millisecond))
	}
	fmt.Printf("State hash:    %016x\n", d.Snapshot().Hash())
}

// runFast ticks the driver back to back with a fixed interval.
func runFast(d *match.Driver, ticks, tickRate int) {
	interval := core.RuntimeConfig{TickRate: tickRate}.TickInterval()

	d.Toggle()
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if d.State().Status != match.StatusPlaying {
			return
		}
		d.Tick(interval)
	}
}
