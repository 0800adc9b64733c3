package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nickandperla.net/truthtable/internal/eval"
)

// Current schema version
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite creates a new SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	// Create tables if not exists
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tables (
			version INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			input TEXT NOT NULL,
			value TEXT NOT NULL,
			ts TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	// Check/set schema version (use unlocked versions since we're in init)
	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}

	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Put records a table as the most recent one.
func (s *SQLite) Put(input string, t *eval.Table) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, err := s.lastUnlocked()
	if err != nil {
		return nil, err
	}
	if last != nil && last.Input == input {
		return last, nil
	}

	value, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode table: %w", err)
	}

	e := Entry{
		ID:    uuid.NewString(),
		Input: input,
		Table: t,
		Ts:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	res, err := s.db.Exec(`
		INSERT INTO tables (id, input, value, ts) VALUES (?, ?, ?, ?)
	`, e.ID, e.Input, string(value), e.Ts)
	if err != nil {
		return nil, err
	}
	version, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	e.Version = int(version)
	return &e, nil
}

// Last returns the most recent entry.
func (s *SQLite) Last() (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUnlocked()
}

// lastUnlocked reads the newest entry without locking (caller must hold lock).
func (s *SQLite) lastUnlocked() (*Entry, error) {
	entries, err := s.queryEntries(1)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

// GetHistory returns entries newest first.
func (s *SQLite) GetHistory(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryEntries(limit)
}

func (s *SQLite) queryEntries(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(`
		SELECT version, id, input, value, ts FROM tables ORDER BY version DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var value string
		if err := rows.Scan(&e.Version, &e.ID, &e.Input, &value, &e.Ts); err != nil {
			return nil, err
		}
		var t eval.Table
		if err := json.Unmarshal([]byte(value), &t); err != nil {
			return nil, fmt.Errorf("decode table %s: %w", e.ID, err)
		}
		e.Table = &t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *SQLite) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM tables")
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetMetadata retrieves a metadata value by key.
func (s *SQLite) GetMetadata(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getMetadataUnlocked(key)
}

// getMetadataUnlocked retrieves metadata without locking (caller must hold lock).
func (s *SQLite) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetMetadata stores a metadata value by key.
func (s *SQLite) SetMetadata(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setMetadataUnlocked(key, value)
}

// setMetadataUnlocked stores metadata without locking (caller must hold lock).
func (s *SQLite) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
