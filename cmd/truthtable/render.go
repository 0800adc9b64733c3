package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"nickandperla.net/truthtable/internal/config"
	"nickandperla.net/truthtable/pkg/truthtable"
)

// Palette
var (
	colorTrue   = lipgloss.Color("#8BC34A")
	colorFalse  = lipgloss.Color("#e53935")
	colorHeader = lipgloss.Color("#2196F3")
	colorBorder = lipgloss.Color("#2a3850")
	colorWarn   = lipgloss.Color("#FFC107")
)

// renderer prints tables and errors to out.
type renderer struct {
	out io.Writer
	cfg config.DisplayConfig
}

func newRenderer(out io.Writer, cfg config.DisplayConfig) *renderer {
	return &renderer{out: out, cfg: cfg}
}

func (r *renderer) style() lipgloss.Style {
	return lipgloss.NewStyle()
}

func (r *renderer) colored(c lipgloss.Color) lipgloss.Style {
	s := r.style()
	if r.cfg.Color {
		s = s.Foreground(c)
	}
	return s
}

func (r *renderer) label(v bool) string {
	if v {
		return r.cfg.TrueLabel
	}
	return r.cfg.FalseLabel
}

// Table renders t as a grid, followed by a summary line.
func (r *renderer) Table(t *truthtable.Table, elapsed time.Duration) {
	fmt.Fprintln(r.out, r.grid(t))
	if r.cfg.ShowTiming {
		fmt.Fprintln(r.out, r.summary(t, elapsed))
	}
}

func (r *renderer) grid(t *truthtable.Table) string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := row.Cells()
		rows[i] = make([]string, len(cells))
		for j, v := range cells {
			rows[i][j] = r.label(v)
		}
	}
	nvars := len(t.Variables)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.colored(colorBorder)).
		BorderColumn(true).
		Headers(t.Headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := r.style().Padding(0, 1).Align(lipgloss.Center)
			if row == table.HeaderRow {
				return base.Inherit(r.colored(colorHeader)).Bold(true)
			}
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return base
			}
			// Result columns stand out from assignment columns
			if col >= nvars {
				if rows[row][col] == r.cfg.TrueLabel {
					return base.Inherit(r.colored(colorTrue)).Bold(true)
				}
				return base.Inherit(r.colored(colorFalse)).Bold(true)
			}
			return base
		})
	return tbl.String()
}

func (r *renderer) summary(t *truthtable.Table, elapsed time.Duration) string {
	rows := humanize.Comma(int64(len(t.Rows)))
	noun := "rows"
	if len(t.Rows) == 1 {
		noun = "row"
	}
	return r.colored(colorBorder).Render(fmt.Sprintf("%s %s, %d variables, computed in %s",
		rows, noun, len(t.Variables), elapsed.Round(time.Microsecond)))
}

// Error renders the error banner. Evaluation errors show the offending expression
// and a hint about parentheses.
func (r *renderer) Error(err error) {
	banner := r.colored(colorFalse).Bold(true)
	detail := r.colored(colorWarn)

	var b strings.Builder
	var evalErr *truthtable.ParseOrEvalError
	switch {
	case errors.As(err, &evalErr):
		b.WriteString(banner.Render("Error: " + evalErr.Message()))
		b.WriteString("\n")
		b.WriteString(detail.Render("  expression: " + evalErr.Expression))
		b.WriteString("\n")
		b.WriteString("  Hint: use parentheses to make grouping explicit, e.g. (p and q) or r")
	case errors.Is(err, truthtable.ErrTooManyVariables):
		b.WriteString(banner.Render("Error: " + err.Error()))
		b.WriteString("\n")
		b.WriteString("  Hint: raise the limit with --max-vars or limits.max_variables")
	default:
		b.WriteString(banner.Render("Error: " + err.Error()))
	}
	fmt.Fprintln(r.out, b.String())
}

// timed runs fn and reports its wall-clock duration.
func timed(fn func() (*truthtable.Table, error)) (*truthtable.Table, time.Duration, error) {
	start := time.Now()
	t, err := fn()
	return t, time.Since(start), err
}
