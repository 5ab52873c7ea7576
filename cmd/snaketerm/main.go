// snaketerm is a single-player snake game for the terminal.
//
// Usage:
//
//	snaketerm                - Play (difficulty menu first)
//	snaketerm play           - Same as above
//	snaketerm best           - Show the stored best score
//
// Global flags:
//
//	--config <path>          - Custom config YAML
//	--seed <value>           - RNG seed for reproducible food placement
//	--highscore-file <path>  - Override the best-score file
//	--db <path>              - Keep the best score in a SQLite file instead
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagScoreFile string
	flagDB        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Snake in your terminal",
	Long: `snaketerm is a classic snake game played in the terminal.

Steer with the arrow keys or WASD, eat food to grow, and don't hit the
walls or yourself. Three difficulty levels set the speed; your best score
is remembered between sessions.

Examples:
  snaketerm
  snaketerm play --difficulty 3
  snaketerm play --seed 42
  snaketerm best`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "highscore-file", "", "Override the best-score file path")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Keep the best score in a SQLite file at this path")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
}

// newLogger returns the CLI logger. Diagnostics go to stderr so they don't
// interfere with the game screen.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "snaketerm",
	})
}
