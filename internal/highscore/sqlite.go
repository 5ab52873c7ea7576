package highscore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps the best score in a single-row SQLite table. It holds
// the same one scalar the file backend does; the database form just makes
// the value shareable with other tooling.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at the given path, creating
// parent directories and the schema as needed.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("highscore: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("highscore: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the single-row schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the stored score, or 0 when the row doesn't exist yet.
func (s *SQLiteStore) Load() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_score WHERE id = 1").Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot query score: %w", err)
	}
	if score < 0 {
		return 0, nil
	}
	return score, nil
}

// Save overwrites the stored score.
func (s *SQLiteStore) Save(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score,
	)
	if err != nil {
		return fmt.Errorf("highscore: cannot save score: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
