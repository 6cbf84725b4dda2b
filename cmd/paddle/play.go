package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/platform/tui"
	"github.com/vovakirdan/neon-paddle/internal/session"
)

var (
	flagMode        string
	flagDifficulty  string
	flagPersonality string
	flagColor       string
	flagDuration    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in this terminal.

Controls:
  Mouse      - Move your paddle (in 2P each arena half steers its paddle)
  W/S        - Nudge the left paddle
  Up/Down    - Nudge the right paddle (2P) or your paddle (1P)
  Space      - Start / pause / resume / play again
  R          - Reset the match
  M D C V    - Cycle mode, difficulty, color, commentary voice
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  paddle play
  paddle play --difficulty hard --personality enthusiastic
  paddle play --mode 2P --color green
  paddle play --config ./my-paddle.yaml --duration 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "1P", "Mode: 1P (vs AI) or 2P (local)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "AI difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagPersonality, "personality", "sarcastic", "Commentary voice: enthusiastic, sarcastic, neutral")
	playCmd.Flags().StringVar(&flagColor, "color", "cyan", "Theme color: cyan, pink, yellow, green")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Match length in seconds (0 = config default)")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := settingsFromFlags(flagMode, flagDifficulty, flagPersonality, flagColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("paddle", io.Discard)
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
	if flagDuration > 0 {
		deps.Config.Match.DurationSecs = flagDuration
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	sess, err := session.New(ctx, "local", os.Getenv("USER"), deps, settings, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	if err := tui.Run(sess, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		return
	}
}
