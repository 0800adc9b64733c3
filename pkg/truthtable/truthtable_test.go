package truthtable

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"nickandperla.net/truthtable/internal/eval"
	"nickandperla.net/truthtable/internal/store"
)

func TestComputeTruthTable(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	table, err := c.ComputeTruthTable("p -> q, not p or q")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, table.Variables)
	assert.Equal(t, []string{"p", "q", "p → q", "¬p ∨ q"}, table.Headers())
	assert.Len(t, table.Rows, 4)
	assert.Equal(t, table.Column(0), table.Column(1))
	assert.Equal(t, []bool{true, false, true, true}, table.Column(0))
}

func TestComputeTruthTableError(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ComputeTruthTable("p then")
	var pe *ParseOrEvalError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "!(true) || ()", pe.Expression)
	assert.Contains(t, pe.Message(), "p then")

	_, err = c.ComputeTruthTable(" , ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestVariableLimit(t *testing.T) {
	c, err := New(WithMaxVariables(2))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ComputeTruthTable("p and q")
	require.NoError(t, err)

	_, err = c.ComputeTruthTable("p and q and r")
	assert.ErrorIs(t, err, ErrTooManyVariables)
	assert.Contains(t, err.Error(), "3 variables (limit 2)")

	// Constants never count
	_, err = c.ComputeTruthTable("p and q and T and false")
	assert.NoError(t, err)
}

func TestStatementLimit(t *testing.T) {
	c, err := New(WithMaxStatements(2))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ComputeTruthTable("p, q, r")
	assert.ErrorIs(t, err, ErrTooManyStatements)

	_, err = c.ComputeTruthTable("p, q")
	assert.NoError(t, err)
}

func TestInvalidOptions(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New(WithMaxVariables(-1))
	assert.Error(t, err)

	_, err = New(WithMaxStatements(-1))
	assert.Error(t, err)

	_, err = New(WithSQLiteStore(filepath.Join(t.TempDir(), "missing", "dir", "t.db")))
	assert.Error(t, err)
}

func TestNoStore(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Last()
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = c.History(0)
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, c.ClearHistory(), ErrNoStore)
}

func TestLastAndHistory(t *testing.T) {
	for name, opt := range map[string]Option{
		"memory": WithMemoryStore(),
		"sqlite": WithSQLiteStore(filepath.Join(t.TempDir(), "tables.db")),
	} {
		t.Run(name, func(t *testing.T) {
			c, err := New(opt)
			require.NoError(t, err)
			defer c.Close()

			last, err := c.Last()
			require.NoError(t, err)
			assert.Nil(t, last)

			first, err := c.ComputeTruthTable("p and q")
			require.NoError(t, err)
			_, err = c.ComputeTruthTable("p and and q")
			require.Error(t, err)

			// Failed computations leave the cache alone
			last, err = c.Last()
			require.NoError(t, err)
			require.NotNil(t, last)
			assert.Equal(t, "p and q", last.Input)
			assert.Equal(t, first.Rows, last.Table.Rows)

			_, err = c.ComputeTruthTable("not p")
			require.NoError(t, err)

			history, err := c.History(0)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, "not p", history[0].Input)
			assert.Equal(t, "p and q", history[1].Input)

			require.NoError(t, c.ClearHistory())
			history, err = c.History(0)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

// lastOnly is a Store without history support.
type lastOnly struct {
	store.Store
}

func TestHistoryWithoutHistoryStore(t *testing.T) {
	c, err := New(WithStore(lastOnly{store.NewMemory()}))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ComputeTruthTable("p")
	require.NoError(t, err)
	_, err = c.ComputeTruthTable("q")
	require.NoError(t, err)

	history, err := c.History(10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "q", history[0].Input)
}

// failingStore rejects every write.
type failingStore struct {
	store.Memory
}

func (*failingStore) Put(string, *eval.Table) (*store.Entry, error) {
	return nil, errors.New("disk full")
}

func TestStoreFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c, err := New(WithStore(&failingStore{}), WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer c.Close()

	table, err := c.ComputeTruthTable("p or q")
	require.NoError(t, err, "a cache failure must not fail the computation")
	assert.Len(t, table.Rows, 4)

	entries := logs.FilterMessage("failed to cache table").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "¬⟮p ∧ q⟯ → r ⊕ s", FormatDisplay("!(p && q) -> r ^ s"))
	assert.Equal(t, "p ↔ q ∨ T", FormatDisplay("p == q || T"))

	once := FormatDisplay("!p || q == r")
	assert.Equal(t, once, FormatDisplay(once))
}
