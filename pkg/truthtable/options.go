package truthtable

import (
	"fmt"

	"go.uber.org/zap"

	"nickandperla.net/truthtable/internal/store"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithStore sets a custom table store. The Calculator closes it on Close.
func WithStore(s Store) Option {
	return func(c *Calculator) {
		c.store = s
	}
}

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(c *Calculator) {
		s, err := store.NewSQLite(path)
		if err != nil {
			c.setErr(fmt.Errorf("open table store %s: %w", path, err))
			return
		}
		c.store = s
	}
}

// WithMemoryStore configures an in-memory store.
func WithMemoryStore() Option {
	return func(c *Calculator) {
		c.store = store.NewMemory()
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxVariables bounds the number of distinct variables in one computation.
func WithMaxVariables(n int) Option {
	return func(c *Calculator) {
		if n < 0 {
			c.setErr(fmt.Errorf("max variables must be >= 0, got %d", n))
			return
		}
		c.maxVariables = n
	}
}

// WithMaxStatements bounds the number of statements in one computation.
// Zero means unlimited.
func WithMaxStatements(n int) Option {
	return func(c *Calculator) {
		if n < 0 {
			c.setErr(fmt.Errorf("max statements must be >= 0, got %d", n))
			return
		}
		c.maxStatements = n
	}
}

func (c *Calculator) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
