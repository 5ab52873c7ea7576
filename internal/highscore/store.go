// Package highscore persists the single best-score value. The default
// backend is a plain-text file holding one integer; a SQLite backend stores
// the same scalar for setups that prefer a database file.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the persisted best score. A missing or malformed
// value loads as 0; it is never a fatal condition.
type Store interface {
	// Load returns the stored best score, or 0 when nothing is stored.
	Load() (int, error)
	// Save overwrites the stored best score.
	Save(score int) error
	// Close releases any resources held by the store.
	Close() error
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
