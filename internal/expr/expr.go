// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package expr defines the boolean expression tree.
package expr

import (
	"fmt"
	"strings"

	"nickandperla.net/truthtable/internal/token"
)

// Env binds variable names to truth values. Keys are lower-case; use Bind and
// Lookup rather than indexing directly.
type Env map[string]bool

// Bind sets the value of a variable.
func (e Env) Bind(name string, v bool) {
	e[strings.ToLower(name)] = v
}

// Lookup returns the value bound to name, ignoring case.
func (e Env) Lookup(name string) (bool, bool) {
	v, ok := e[strings.ToLower(name)]
	return v, ok
}

// UnboundError is returned when a variable has no value in the Env.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// Expr is the interface all expression types implement.
type Expr interface {
	// String returns the canonical text of the expression.
	String() string
	// Eval evaluates the expression under env.
	Eval(env Env) (bool, error)
}

// Literal is a constant.
type Literal struct {
	Value bool
}

func (l Literal) String() string {
	if l.Value {
		return token.True
	}
	return token.False
}
func (l Literal) Eval(Env) (bool, error) { return l.Value, nil }

// Variable is a free identifier.
type Variable struct {
	Name string
}

func (v Variable) String() string { return v.Name }
func (v Variable) Eval(env Env) (bool, error) {
	val, ok := env.Lookup(v.Name)
	if !ok {
		return false, &UnboundError{Name: v.Name}
	}
	return val, nil
}

// Not is logical negation.
type Not struct {
	X Expr
}

func (n Not) String() string { return token.Not + n.X.String() }
func (n Not) Eval(env Env) (bool, error) {
	v, err := n.X.Eval(env)
	return !v, err
}

// And is conjunction.
type And struct {
	L, R Expr
}

func (a And) String() string { return binaryString(a.L, token.And, a.R) }
func (a And) Eval(env Env) (bool, error) {
	l, r, err := evalPair(a.L, a.R, env)
	return l && r, err
}

// Or is disjunction.
type Or struct {
	L, R Expr
}

func (o Or) String() string { return binaryString(o.L, token.Or, o.R) }
func (o Or) Eval(env Env) (bool, error) {
	l, r, err := evalPair(o.L, o.R, env)
	return l || r, err
}

// Implies is material implication.
type Implies struct {
	L, R Expr
}

func (i Implies) String() string { return binaryString(i.L, token.Implies, i.R) }
func (i Implies) Eval(env Env) (bool, error) {
	l, r, err := evalPair(i.L, i.R, env)
	return !l || r, err
}

// Iff is the biconditional.
type Iff struct {
	L, R Expr
}

func (i Iff) String() string { return binaryString(i.L, token.Iff, i.R) }
func (i Iff) Eval(env Env) (bool, error) {
	l, r, err := evalPair(i.L, i.R, env)
	return l == r, err
}

// Xor is exclusive-or.
type Xor struct {
	L, R Expr
}

func (x Xor) String() string { return binaryString(x.L, token.Xor, x.R) }
func (x Xor) Eval(env Env) (bool, error) {
	l, r, err := evalPair(x.L, x.R, env)
	return l != r, err
}

// Both operands are always evaluated so an unbound variable is reported even
// when the result is already decided.
func evalPair(l, r Expr, env Env) (bool, bool, error) {
	lv, err := l.Eval(env)
	if err != nil {
		return false, false, err
	}
	rv, err := r.Eval(env)
	if err != nil {
		return false, false, err
	}
	return lv, rv, nil
}

func binaryString(l Expr, op string, r Expr) string {
	return "(" + l.String() + " " + op + " " + r.String() + ")"
}

// NewBinary builds the node for a binary operator token.
func NewBinary(op token.Token, l, r Expr) (Expr, error) {
	switch op {
	case token.AND:
		return And{L: l, R: r}, nil
	case token.OR:
		return Or{L: l, R: r}, nil
	case token.XOR:
		return Xor{L: l, R: r}, nil
	case token.IFF:
		return Iff{L: l, R: r}, nil
	case token.IMPLIES:
		return Implies{L: l, R: r}, nil
	}
	return nil, fmt.Errorf("not a binary operator: %s", op)
}

// Variables returns the variable names in e in first-appearance order, without duplicates.
func Variables(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(e, func(n Expr) {
		if v, ok := n.(Variable); ok {
			key := strings.ToLower(v.Name)
			if !seen[key] {
				seen[key] = true
				names = append(names, v.Name)
			}
		}
	})
	return names
}

// Walk calls fn for e and every sub-expression, left to right, parents first.
func Walk(e Expr, fn func(Expr)) {
	if e == nil {
		return
	}
	fn(e)
	switch n := e.(type) {
	case Not:
		Walk(n.X, fn)
	case And:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Or:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Implies:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Iff:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Xor:
		Walk(n.L, fn)
		Walk(n.R, fn)
	}
}
