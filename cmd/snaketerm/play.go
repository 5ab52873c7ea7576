package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snaketerm/snaketerm/internal/config"
	"github.com/snaketerm/snaketerm/internal/game"
	"github.com/snaketerm/snaketerm/internal/highscore"
	"github.com/snaketerm/snaketerm/internal/tui"
)

var flagDifficulty int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Arrows/WASD - Steer
  1/2/3       - Difficulty (easy/medium/hard)
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Without --difficulty a selection menu is shown first.

Examples:
  snaketerm play
  snaketerm play --difficulty 3
  snaketerm play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	// The root command plays directly, so it carries the same flag
	playCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "Difficulty level 1-3 (0 = choose in menu)")
	rootCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "Difficulty level 1-3 (0 = choose in menu)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	// Best-effort persistence: the game runs fine without a store
	store := openStore(cfg, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	level := cfg.Difficulty.DefaultLevel
	skipMenu := false
	if flagDifficulty != 0 {
		level = config.ClampLevel(flagDifficulty)
		skipMenu = true
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(game.Rules{
		Width:         cfg.Grid.Width,
		Height:        cfg.Grid.Height,
		InitialLength: cfg.Snake.InitialLength,
		ScorePerFood:  cfg.Snake.ScorePerFood,
	}, level, seed)

	runErr := tui.Run(g, store, cfg, width, height, skipMenu)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("game exited with an error", "err", runErr)
	}
}

// openStore opens the configured high-score backend: SQLite when a db path
// is set, the plain-text file otherwise. Failures are reported and the game
// continues without persistence.
func openStore(cfg config.Config, logger *log.Logger) highscore.Store {
	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.Storage.DB
	}
	if dbPath != "" {
		store, err := highscore.OpenSQLite(dbPath)
		if err != nil {
			logger.Warn("could not open high-score database, scores will not be saved", "err", err)
			return nil
		}
		return store
	}

	path := flagScoreFile
	if path == "" {
		path = cfg.Storage.HighScoreFile
	}
	store, err := highscore.OpenFile(path)
	if err != nil {
		logger.Warn("could not open high-score file, scores will not be saved", "err", err)
		return nil
	}
	return store
}
