// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package compile turns logic statements written in mixed word/symbol notation
// into canonical boolean expressions.
//
// Compilation never fails. Text the translator does not recognise passes through
// unchanged and is reported later, when the expression is parsed for evaluation.
package compile

import (
	"strings"

	"nickandperla.net/truthtable/internal/pretty"
	"nickandperla.net/truthtable/internal/translate"
)

// Compiler compiles statements with a Translator.
type Compiler struct {
	tr *translate.Translator
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithTranslator overrides the default translator.
func WithTranslator(tr *translate.Translator) Option {
	return func(c *Compiler) { c.tr = tr }
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{tr: translate.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns the canonical expression for one statement.
func (c *Compiler) Compile(stmt string) string {
	s := c.compile(strings.TrimSpace(stmt))
	return strings.Join(strings.Fields(translate.Finalize(s)), " ")
}

// compile is its own group rewriter: interiors are compiled depth-first before
// implication is eliminated and the remaining spellings are translated.
// Translation must come last because elimination copies raw operands into new groups.
func (c *Compiler) compile(s string) string {
	s = RewriteGroups(s, c.compile)
	s = c.eliminateImplication(s)
	return c.tr.Translate(s)
}

// eliminateImplication rewrites "L -> R" as "!(L) || (R)". L runs up to the
// leftmost marker; R is eliminated again, so chains associate to the right.
func (c *Compiler) eliminateImplication(s string) string {
	start, end, ok := c.tr.FindImplication(s)
	if !ok {
		return s
	}
	left := strings.TrimSpace(s[:start])
	right := strings.TrimSpace(s[end:])
	return "!(" + left + ") || (" + c.eliminateImplication(right) + ")"
}

// CompileAll compiles each statement in order.
func (c *Compiler) CompileAll(stmts []string) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = c.Compile(s)
	}
	return out
}

// Display returns the header form of a statement: spellings translated, implication
// kept as an arrow, and canonical tokens rendered as glyphs.
func (c *Compiler) Display(stmt string) string {
	return pretty.Format(c.tr.TranslateDisplay(strings.TrimSpace(stmt)))
}

// Split breaks raw input into statements on commas. Blank clauses are dropped.
func Split(input string) []string {
	var stmts []string
	for _, part := range strings.Split(input, ",") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
