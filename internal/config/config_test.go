package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("Embedded default YAML failed to parse: %v", err)
	}

	want := Default()
	if cfg.Grid != want.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, want.Grid)
	}
	if cfg.Snake != want.Snake {
		t.Errorf("Snake = %+v, expected %+v", cfg.Snake, want.Snake)
	}
	if cfg.Difficulty.DefaultLevel != want.Difficulty.DefaultLevel {
		t.Errorf("DefaultLevel = %d, expected %d", cfg.Difficulty.DefaultLevel, want.Difficulty.DefaultLevel)
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if cfg.Difficulty.Speeds[level] != want.Difficulty.Speeds[level] {
			t.Errorf("Speeds[%d] = %d, expected %d", level, cfg.Difficulty.Speeds[level], want.Difficulty.Speeds[level])
		}
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
grid:
  width: 40
  height: 24
difficulty:
  default_level: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 40 || cfg.Grid.Height != 24 {
		t.Errorf("Grid = %+v, expected 40x24", cfg.Grid)
	}
	if cfg.Difficulty.DefaultLevel != 3 {
		t.Errorf("DefaultLevel = %d, expected 3", cfg.Difficulty.DefaultLevel)
	}
	// Unset fields keep defaults
	if cfg.Snake.InitialLength != 3 {
		t.Errorf("InitialLength = %d, expected default 3", cfg.Snake.InitialLength)
	}
	if cfg.Difficulty.Speeds[1] != 8 {
		t.Errorf("Speeds[1] = %d, expected default 8", cfg.Difficulty.Speeds[1])
	}
}

func TestLoadMissingCustomFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadBadYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 4 }, "grid"},
		{"zero length", func(c *Config) { c.Snake.InitialLength = 0 }, "length"},
		{"snake too long", func(c *Config) { c.Snake.InitialLength = 30 }, "fit"},
		{"zero score", func(c *Config) { c.Snake.ScorePerFood = 0 }, "score"},
		{"bad level", func(c *Config) { c.Difficulty.DefaultLevel = 5 }, "difficulty"},
		{"missing speed", func(c *Config) { delete(c.Difficulty.Speeds, 2) }, "speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should have failed")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestTicksPerSecond(t *testing.T) {
	d := Default().Difficulty

	if got := d.TicksPerSecond(1); got != 8 {
		t.Errorf("TicksPerSecond(1) = %d, expected 8", got)
	}
	if got := d.TicksPerSecond(3); got != 16 {
		t.Errorf("TicksPerSecond(3) = %d, expected 16", got)
	}
	// Unknown level falls back to the default level's speed
	if got := d.TicksPerSecond(9); got != 12 {
		t.Errorf("TicksPerSecond(9) = %d, expected default 12", got)
	}
}

func TestClampLevel(t *testing.T) {
	if ClampLevel(0) != MinLevel {
		t.Error("ClampLevel(0) should clamp to MinLevel")
	}
	if ClampLevel(7) != MaxLevel {
		t.Error("ClampLevel(7) should clamp to MaxLevel")
	}
	if ClampLevel(2) != 2 {
		t.Error("ClampLevel(2) should be unchanged")
	}
}

func TestLevelName(t *testing.T) {
	names := map[int]string{1: "Easy", 2: "Medium", 3: "Hard"}
	for level, want := range names {
		if got := LevelName(level); got != want {
			t.Errorf("LevelName(%d) = %q, expected %q", level, got, want)
		}
	}
}
