package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-paddle/internal/platform/tui"
	"github.com/vovakirdan/neon-paddle/internal/storage"
)

var (
	flagPlain        bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse finished matches",
	Long: `Browse finished matches and per-mode statistics.

In a terminal this opens an interactive browser; with --plain, or when
output is redirected, the most recent matches are printed as text.

Examples:
  paddle history
  paddle history --plain --limit 20`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive browser")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Matches to print in plain mode")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printHistory(store, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printHistory(store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches")
	fmt.Println("==============")
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("%-5s %-4s %-7s %-7s %-7s %-6s %s\n", "#", "Mode", "Level", "Score", "Winner", "Rally", "Date")
	for _, m := range matches {
		fmt.Printf("%-5d %-4s %-7s %-7s %-7s %-6d %s\n",
			m.ID,
			m.Mode,
			m.Difficulty,
			fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
			m.Winner,
			m.LongestRally,
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetAllModeStats()
	if err != nil {
		return err
	}
	fmt.Println()
	for _, mode := range []string{"1P", "2P"} {
		st, ok := stats[mode]
		if !ok {
			continue
		}
		fmt.Printf("%s: %d matches, %d-%d-%d (left-right-draw), best rally %d\n",
			mode, st.Matches, st.LeftWins, st.RightWins, st.Draws, st.BestRally)
	}
	return nil
}
