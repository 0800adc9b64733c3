// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package translate rewrites operator spellings into canonical boolean-expression tokens.
//
// Word spellings (and, or, not, xor, iff, true, false, then) match case-insensitively
// on word boundaries. Symbol spellings match exactly. The single-letter literals T and F
// are case-sensitive so that lower-case t and f remain usable as variable names.
package translate

import (
	"strings"

	"github.com/dlclark/regexp2"

	"nickandperla.net/truthtable/internal/token"
)

// Class groups rules by the connective they produce.
type Class int

const (
	Negation Class = iota
	Conjunction
	Disjunction
	Biconditional
	ExclusiveOr
	Literal
)

func (c Class) String() string {
	switch c {
	case Negation:
		return "negation"
	case Conjunction:
		return "conjunction"
	case Disjunction:
		return "disjunction"
	case Biconditional:
		return "biconditional"
	case ExclusiveOr:
		return "exclusive-or"
	case Literal:
		return "literal"
	}
	return "unknown"
}

// xorMarker stands in for exclusive-or until Finalize runs. The canonical xor token
// doubles as a conjunction spelling, so emitting it early would let a later pass
// over already-compiled text turn it into &&.
const xorMarker = token.GlyphXor

// Rule is a single spelling rewrite.
type Rule struct {
	Class       Class
	Pattern     string
	Replacement string
	re          *regexp2.Regexp
}

func rule(c Class, pattern string, opts regexp2.RegexOptions, repl string) Rule {
	return Rule{
		Class:       c,
		Pattern:     pattern,
		Replacement: repl,
		re:          regexp2.MustCompile(pattern, opts),
	}
}

// Apply rewrites every match of the rule in s.
func (r Rule) Apply(s string) string {
	out, err := r.re.Replace(s, r.Replacement, -1, -1)
	if err != nil {
		// Only a match timeout can fail and none is configured.
		return s
	}
	return out
}

// Translator applies the spelling rules in their fixed order.
type Translator struct {
	rules       []Rule
	implication *regexp2.Regexp
}

// implicationPattern matches "then" and arrows. An arrow preceded by < or - (or =)
// belongs to a biconditional and is left alone.
const implicationPattern = `\bthen\b|(?<![<\-=])-+>|(?<![<=])=+>|→`

// New creates a Translator with the default rule set.
func New() *Translator {
	word := regexp2.RegexOptions(regexp2.IgnoreCase)
	exact := regexp2.None
	return &Translator{
		rules: []Rule{
			// negation
			rule(Negation, `\bnot\b\s*`, word, token.Not),
			rule(Negation, `¬`, exact, token.Not),

			// conjunction
			rule(Conjunction, `\band\b`, word, token.And),
			rule(Conjunction, `&&?`, exact, token.And),
			rule(Conjunction, `/\\`, exact, token.And),
			rule(Conjunction, `\^`, exact, token.And),
			rule(Conjunction, `∧`, exact, token.And),

			// disjunction
			rule(Disjunction, `\bor\b`, word, token.Or),
			rule(Disjunction, `\|\|?`, exact, token.Or),
			rule(Disjunction, `\\/`, exact, token.Or),
			rule(Disjunction, `∨`, exact, token.Or),

			// biconditional
			rule(Biconditional, `<-+>`, exact, token.Iff),
			rule(Biconditional, `<=+>`, exact, token.Iff),
			rule(Biconditional, `↔`, exact, token.Iff),
			rule(Biconditional, `\biff\b`, word, token.Iff),
			rule(Biconditional, `(?<!=)==?(?![=>])`, exact, token.Iff),

			// exclusive-or
			rule(ExclusiveOr, `\(\+\)`, exact, xorMarker),
			rule(ExclusiveOr, `\bxor\b`, word, xorMarker),

			// literals
			rule(Literal, `\bT\b`, exact, token.True),
			rule(Literal, `\bF\b`, exact, token.False),
			rule(Literal, `\btrue\b`, word, token.True),
			rule(Literal, `\bfalse\b`, word, token.False),
		},
		implication: regexp2.MustCompile(implicationPattern, regexp2.IgnoreCase),
	}
}

// Rules returns the rules in application order.
func (t *Translator) Rules() []Rule {
	return t.rules
}

// Translate rewrites negation, conjunction, disjunction, biconditional, exclusive-or
// and literal spellings, in that order. Implication markers are not touched.
// Exclusive-or is left as its marker; call Finalize once the whole statement is done.
func (t *Translator) Translate(s string) string {
	return t.apply(s, func(Class) bool { return true })
}

func (t *Translator) apply(s string, want func(Class) bool) string {
	for _, r := range t.rules {
		if want(r.Class) {
			s = r.Apply(s)
		}
	}
	return s
}

// FindImplication returns the byte offsets of the leftmost implication marker in s.
func (t *Translator) FindImplication(s string) (start, end int, ok bool) {
	m, err := t.implication.FindStringMatch(s)
	if err != nil || m == nil {
		return 0, 0, false
	}
	// regexp2 reports rune offsets.
	runes := []rune(s)
	start = len(string(runes[:m.Index]))
	end = start + len(string(runes[m.Index:m.Index+m.Length]))
	return start, end, true
}

// NormalizeImplication rewrites every implication marker to the canonical arrow.
func (t *Translator) NormalizeImplication(s string) string {
	out, err := t.implication.Replace(s, " "+token.Implies+" ", -1, -1)
	if err != nil {
		return s
	}
	return out
}

// TranslateDisplay translates s for presentation: implication markers survive as
// the canonical arrow instead of being eliminated, and literals keep their spelling.
func (t *Translator) TranslateDisplay(s string) string {
	s = t.NormalizeImplication(s)
	s = t.apply(s, func(c Class) bool { return c != Literal })
	return collapseSpaces(Finalize(s))
}

// Finalize replaces the exclusive-or marker with the canonical xor token.
func Finalize(s string) string {
	return strings.ReplaceAll(s, xorMarker, token.Xor)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var defaultTranslator = New()

// Translate rewrites s with the default translator.
func Translate(s string) string {
	return defaultTranslator.Translate(s)
}

// Default returns the shared default translator.
func Default() *Translator {
	return defaultTranslator
}
