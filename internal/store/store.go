// Package store provides a SQLite-backed key-value slot store.
//
// Each collection is persisted as one named slot holding a JSON-encoded
// array. The store knows nothing about record shapes; callers read and
// write opaque strings and every write fully replaces the slot.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
    key     TEXT PRIMARY KEY,
    value   TEXT NOT NULL
);
`

// Store is a handle to the slot database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the slot database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening slot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the slot database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key and whether the slot exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put writes value under key, fully replacing any prior content.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", key, value)
	return err
}

// Delete removes a slot. Deleting an absent slot is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM slots WHERE key = ?", key)
	return err
}

// DefaultPath returns the XDG-compliant default database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fcab", "fcab.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fcab", "fcab.db")
}
