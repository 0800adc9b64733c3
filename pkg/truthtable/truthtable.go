// Package truthtable provides the public API for computing truth tables.
package truthtable

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nickandperla.net/truthtable/internal/eval"
	"nickandperla.net/truthtable/internal/pretty"
	"nickandperla.net/truthtable/internal/store"
)

// DefaultMaxVariables bounds the number of variables (and so 2^n rows) unless
// WithMaxVariables says otherwise.
const DefaultMaxVariables = 12

var (
	// ErrEmptyInput is returned when the input holds no statements.
	ErrEmptyInput = eval.ErrEmptyInput
	// ErrTooManyVariables is returned when the input exceeds the variable limit.
	ErrTooManyVariables = errors.New("too many variables")
	// ErrTooManyStatements is returned when the input exceeds the statement limit.
	ErrTooManyStatements = errors.New("too many statements")
	// ErrNoStore is returned by Last and History when no store is configured.
	ErrNoStore = errors.New("no table store configured")
)

// Table is a computed truth table.
type Table = eval.Table

// Row is one row of a Table.
type Row = eval.Row

// ParseOrEvalError is returned when a statement cannot be evaluated. It carries
// the offending expression text.
type ParseOrEvalError = eval.EvaluationError

// Entry is a stored table.
type Entry = store.Entry

// Store interface for custom stores.
type Store = store.Store

// Calculator computes truth tables and records the most recent one in its store.
// A Calculator runs one computation at a time.
type Calculator struct {
	evaluator     *eval.Evaluator
	store         Store
	logger        *zap.Logger
	maxVariables  int
	maxStatements int
	err           error // first option error
}

// New creates a Calculator with the given options.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		logger:       zap.NewNop(),
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		if c.store != nil {
			c.store.Close()
		}
		return nil, c.err
	}
	c.evaluator = eval.New()
	return c, nil
}

// ComputeTruthTable compiles the comma-separated statements in input and evaluates
// them under every assignment of their variables. On success the table becomes
// the store's most recent entry.
func (c *Calculator) ComputeTruthTable(input string) (*Table, error) {
	start := time.Now()

	p, err := c.evaluator.Compile(input)
	if err != nil {
		return nil, err
	}
	if c.maxStatements > 0 && len(p.Statements) > c.maxStatements {
		return nil, fmt.Errorf("%w: %d statements (limit %d)", ErrTooManyStatements, len(p.Statements), c.maxStatements)
	}
	if len(p.Variables) > c.maxVariables {
		return nil, fmt.Errorf("%w: %d variables (limit %d)", ErrTooManyVariables, len(p.Variables), c.maxVariables)
	}
	c.logger.Debug("compiled statements",
		zap.Strings("statements", p.Statements),
		zap.Strings("compiled", p.Compiled),
		zap.Strings("variables", p.Variables),
	)

	t, err := p.Evaluate()
	if err != nil {
		c.logger.Debug("evaluation failed", zap.Error(err))
		return nil, err
	}

	if c.store != nil {
		if _, err := c.store.Put(input, t); err != nil {
			// The cache is optional; a failed write does not void the table.
			c.logger.Warn("failed to cache table", zap.Error(err))
		}
	}

	c.logger.Debug("computed truth table",
		zap.Int("variables", len(t.Variables)),
		zap.Int("rows", len(t.Rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return t, nil
}

// Last returns the most recently computed table, or nil if none is stored.
func (c *Calculator) Last() (*Entry, error) {
	if c.store == nil {
		return nil, ErrNoStore
	}
	return c.store.Last()
}

// History returns stored tables newest first. A limit of 0 returns all of them.
func (c *Calculator) History(limit int) ([]Entry, error) {
	if c.store == nil {
		return nil, ErrNoStore
	}
	hs, ok := c.store.(store.HistoryStore)
	if !ok {
		e, err := c.store.Last()
		if err != nil || e == nil {
			return nil, err
		}
		return []Entry{*e}, nil
	}
	return hs.GetHistory(limit)
}

// ClearHistory removes every stored table.
func (c *Calculator) ClearHistory() error {
	if c.store == nil {
		return ErrNoStore
	}
	return c.store.Clear()
}

// Close releases resources.
func (c *Calculator) Close() error {
	_ = c.logger.Sync()
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// FormatDisplay renders canonical tokens in s as display glyphs. It is pure and
// applying it twice is the same as applying it once.
func FormatDisplay(s string) string {
	return pretty.Format(s)
}
