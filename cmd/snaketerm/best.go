package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snaketerm/snaketerm/internal/config"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the stored best score",
	Long: `Display the best score recorded so far.

Examples:
  snaketerm best
  snaketerm best --reset`,
	Run: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the stored best score to 0")
}

func runBest(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	store := openStore(cfg, logger)
	if store == nil {
		logger.Fatal("no high-score store available")
	}
	defer store.Close()

	if flagReset {
		if err := store.Save(0); err != nil {
			logger.Fatal("could not reset the best score", "err", err)
		}
		fmt.Println("Best score reset.")
		return
	}

	best, err := store.Load()
	if err != nil {
		logger.Fatal("could not read the best score", "err", err)
	}

	if best == 0 {
		fmt.Println("No best score recorded yet. Play a round!")
		return
	}
	fmt.Printf("Best: %d\n", best)
}
