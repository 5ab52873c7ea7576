// Package config provides YAML-based configuration for the game: grid
// dimensions, snake rules, the difficulty speed table, and storage paths.
package config

import "fmt"

// Config is the full game configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      SnakeConfig      `yaml:"snake"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake's starting length and scoring.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
	ScorePerFood  int `yaml:"score_per_food"`
}

// DifficultyConfig maps difficulty levels to simulation speeds.
type DifficultyConfig struct {
	DefaultLevel int         `yaml:"default_level"`
	Speeds       map[int]int `yaml:"speeds"` // Level -> ticks per second
}

// StorageConfig defines where the best score is persisted.
type StorageConfig struct {
	// HighScoreFile is the plain-text scalar store (the default backend).
	HighScoreFile string `yaml:"highscore_file"`
	// DB, when set, switches persistence to a SQLite file at this path.
	DB string `yaml:"db"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < 8 || c.Grid.Height < 8 {
		return fmt.Errorf("config: grid must be at least 8x8, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial snake length must be positive, got %d", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength >= c.Grid.Width/2 {
		return fmt.Errorf("config: initial snake length %d does not fit the grid", c.Snake.InitialLength)
	}
	if c.Snake.ScorePerFood <= 0 {
		return fmt.Errorf("config: score per food must be positive, got %d", c.Snake.ScorePerFood)
	}
	if c.Difficulty.DefaultLevel < MinLevel || c.Difficulty.DefaultLevel > MaxLevel {
		return fmt.Errorf("config: default difficulty %d outside [%d, %d]", c.Difficulty.DefaultLevel, MinLevel, MaxLevel)
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if c.Difficulty.Speeds[level] <= 0 {
			return fmt.Errorf("config: difficulty %d has no positive speed", level)
		}
	}
	return nil
}
