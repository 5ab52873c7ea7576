package config

import (
	_ "embed"
)

//go:embed defaults/snaketerm.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
			ScorePerFood:  10,
		},
		Difficulty: DifficultyConfig{
			DefaultLevel: 2,
			Speeds: map[int]int{
				1: 8,
				2: 12,
				3: 16,
			},
		},
		Storage: StorageConfig{
			HighScoreFile: "~/.snaketerm/highscore",
		},
	}
}
