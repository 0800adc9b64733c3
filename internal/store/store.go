// Package store keeps the most recently computed truth tables.
//
// The core never touches a store; callers inject one and write to it once per
// successful computation.
package store

import (
	"nickandperla.net/truthtable/internal/eval"
)

// Entry is one stored truth table.
type Entry struct {
	ID      string      // UUID assigned on Put
	Version int         // 1 for the first table, incremented per Put
	Input   string      // Raw input the table was computed from
	Table   *eval.Table // The computed table
	Ts      string      // RFC 3339 time of the Put
}

// Store is the interface for truth table persistence.
type Store interface {
	// Put records a table as the most recent one. Putting the same input as the
	// current most recent entry is a no-op that returns that entry.
	Put(input string, t *eval.Table) (*Entry, error)
	// Last returns the most recent entry, or nil if nothing is stored.
	Last() (*Entry, error)
	// Clear removes every entry.
	Clear() error
	// Close releases resources.
	Close() error
}

// HistoryStore extends Store with history queries.
type HistoryStore interface {
	Store
	// GetHistory returns entries newest first. A limit of 0 returns all of them.
	GetHistory(limit int) ([]Entry, error)
}
