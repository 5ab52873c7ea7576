package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the best score as a decimal integer in a plain-text file.
type FileStore struct {
	path string
}

// OpenFile creates a file-backed store at the given path. The file itself
// is created lazily on the first Save; parent directories are created here.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	return &FileStore{path: path}, nil
}

// Load returns the stored score. A missing file or unparsable content
// reads as 0; only genuine I/O failures are reported.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

// Save overwrites the stored score.
func (s *FileStore) Save(score int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
