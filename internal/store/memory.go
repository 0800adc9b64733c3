package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nickandperla.net/truthtable/internal/eval"
)

// Memory is an in-memory store.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry // oldest first
	version int     // last assigned version, survives Clear
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Put records a table as the most recent one.
func (m *Memory) Put(input string, t *eval.Table) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.entries); n > 0 && m.entries[n-1].Input == input {
		e := m.entries[n-1]
		return &e, nil
	}
	m.version++
	e := Entry{
		ID:      uuid.NewString(),
		Version: m.version,
		Input:   input,
		Table:   t,
		Ts:      time.Now().UTC().Format(time.RFC3339Nano),
	}
	m.entries = append(m.entries, e)
	return &e, nil
}

// Last returns the most recent entry.
func (m *Memory) Last() (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.entries) == 0 {
		return nil, nil
	}
	e := m.entries[len(m.entries)-1]
	return &e, nil
}

// GetHistory returns entries newest first.
func (m *Memory) GetHistory(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.entries) == 0 {
		return nil, nil
	}
	var out []Entry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Clear removes every entry.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
