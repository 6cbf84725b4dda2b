// paddle is a two-paddle neon ball game for the terminal with spin physics,
// an AI opponent and live commentary.
//
// Usage:
//
//	paddle play              - Play a match in this terminal
//	paddle serve             - Start SSH server for remote play
//	paddle history           - Browse finished matches
//	paddle simulate          - Run a headless AI vs AI match
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible matches
//	--db <path>             - Set database path (default: ~/.paddle/history.db)
//	--config <path>         - Load simulation tunables from a YAML file
//	--metrics-addr <addr>   - Expose Prometheus metrics (e.g. :9090)
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagMetricsAddr string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddle",
	Short: "Neon Paddle - spin, rally and trash talk in your terminal",
	Long: `Neon Paddle is a terminal paddle game with ball spin, an AI opponent
with three difficulty levels, a local two-player mode and live commentary.

Available commands:
  play      - Play a match in this terminal
  serve     - Start SSH server for remote play
  history   - Browse finished matches
  simulate  - Run a headless AI vs AI match

Commentary uses a generateContent-style API when PADDLE_COMMENTARY_API_KEY
is set (environment or .env file); otherwise built-in lines are used.

Examples:
  paddle play
  paddle play --mode 2P --color pink
  paddle serve --ssh :2222
  paddle simulate --ticks 5400 --seed 7`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Optional: a missing .env just means no commentary API key
		if err := godotenv.Load(".env"); err != nil {
			_ = godotenv.Load("../.env")
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paddle/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}
