// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval computes truth tables from compiled logic statements.
package eval

import (
	"errors"

	"nickandperla.net/truthtable/internal/compile"
	"nickandperla.net/truthtable/internal/expr"
	"nickandperla.net/truthtable/internal/parser"
)

// Table is a complete truth table.
type Table struct {
	Statements []string // Statements as entered
	Display    []string // Header form of each statement
	Compiled   []string // Canonical expression of each statement
	Variables  []string // Free variables in first-appearance order
	Rows       []Row
}

// Row is one assignment and the value of every statement under it.
type Row struct {
	Values  []bool // One per variable
	Results []bool // One per statement
}

// Cells returns the assignment values followed by the statement results.
func (r Row) Cells() []bool {
	cells := make([]bool, 0, len(r.Values)+len(r.Results))
	cells = append(cells, r.Values...)
	return append(cells, r.Results...)
}

// Headers returns the variable names followed by the display form of each statement.
func (t *Table) Headers() []string {
	headers := make([]string, 0, len(t.Variables)+len(t.Display))
	headers = append(headers, t.Variables...)
	return append(headers, t.Display...)
}

// Column returns the results of statement i across all rows.
func (t *Table) Column(i int) []bool {
	col := make([]bool, len(t.Rows))
	for x, row := range t.Rows {
		col[x] = row.Results[i]
	}
	return col
}

// Program is a compiled input, ready to be evaluated.
type Program struct {
	Statements []string
	Display    []string
	Compiled   []string
	Variables  []string
}

// Evaluator compiles input and evaluates it over every assignment.
type Evaluator struct {
	compiler *compile.Compiler
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithCompiler sets the statement compiler.
func WithCompiler(c *compile.Compiler) Option {
	return func(e *Evaluator) { e.compiler = c }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.compiler == nil {
		e.compiler = compile.New()
	}
	return e
}

// Compile splits input into statements, compiles them and extracts the variables.
// It fails only when the input holds no statements.
func (e *Evaluator) Compile(input string) (*Program, error) {
	stmts := compile.Split(input)
	if len(stmts) == 0 {
		return nil, ErrEmptyInput
	}
	p := &Program{
		Statements: stmts,
		Display:    make([]string, len(stmts)),
		Compiled:   e.compiler.CompileAll(stmts),
	}
	for i, s := range stmts {
		p.Display[i] = e.compiler.Display(s)
	}
	p.Variables = Variables(p.Compiled)
	return p, nil
}

// Compute compiles and evaluates input in one step.
func (e *Evaluator) Compute(input string) (*Table, error) {
	p, err := e.Compile(input)
	if err != nil {
		return nil, err
	}
	return p.Evaluate()
}

// Evaluate produces the truth table. The first statement that fails aborts the
// computation and no partial table is returned.
func (p *Program) Evaluate() (*Table, error) {
	// A syntax error fails on every row alike, so it is reported against row 0,
	// which is where row-by-row evaluation would first hit it.
	trees := make([]expr.Expr, len(p.Compiled))
	for i, c := range p.Compiled {
		tree, err := parser.Parse(c)
		if err != nil {
			return nil, p.failure(i, 0, firstAssignment(len(p.Variables)), err)
		}
		trees[i] = tree
	}

	assignments := Assignments(len(p.Variables))
	rows := make([]Row, len(assignments))
	for x, values := range assignments {
		env := make(expr.Env, len(p.Variables))
		for i, v := range p.Variables {
			env.Bind(v, values[i])
		}
		results := make([]bool, len(trees))
		for i, tree := range trees {
			v, err := tree.Eval(env)
			if err != nil {
				return nil, p.failure(i, x, values, err)
			}
			results[i] = v
		}
		rows[x] = Row{Values: values, Results: results}
	}

	return &Table{
		Statements: p.Statements,
		Display:    p.Display,
		Compiled:   p.Compiled,
		Variables:  p.Variables,
		Rows:       rows,
	}, nil
}

// failure builds the error for statement stmt. A syntax error is moved onto the
// substituted expression so its offset and token refer to the text shown.
func (p *Program) failure(stmt, row int, values []bool, err error) *EvaluationError {
	expression := Substitute(p.Compiled[stmt], p.Variables, values)
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		var at int
		expression, at = substitute(p.Compiled[stmt], p.Variables, values, se.Pos)
		err = &parser.SyntaxError{
			Pos:   at,
			Found: Substitute(se.Found, p.Variables, values),
			Msg:   se.Msg,
		}
	}
	return &EvaluationError{
		Statement:  p.Statements[stmt],
		Compiled:   p.Compiled[stmt],
		Expression: expression,
		Row:        row,
		Err:        err,
	}
}
