package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteStoreEmptyReadsZero(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() of an empty store = %d, expected 0", score)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Load() = %d, expected 42", score)
	}

	// Save replaces the single row rather than adding another
	if err := store.Save(100); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	score, _ = store.Load()
	if score != 100 {
		t.Errorf("Load() after overwrite = %d, expected 100", score)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.Save(77); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	score, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 77 {
		t.Errorf("Load() after reopen = %d, expected 77", score)
	}
}

func TestSQLiteStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
