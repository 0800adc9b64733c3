// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines the canonical boolean-expression tokens and their display glyphs.
package token

// Token represents a canonical expression token type.
type Token int

const (
	EOF Token = iota
	ILLEGAL
	IDENT

	// Literals
	TRUE  // 1
	FALSE // 0

	// Operators (canonical)
	NOT     // !
	AND     // &&
	OR      // ||
	XOR     // ^
	IFF     // ==
	IMPLIES // -> (display only, eliminated before evaluation)

	LPAREN
	RPAREN
)

// Canonical spellings for each operator.
const (
	True    = "1"
	False   = "0"
	Not     = "!"
	And     = "&&"
	Or      = "||"
	Xor     = "^"
	Iff     = "=="
	Implies = "->"
)

// Display glyphs.
const (
	GlyphNot     = "¬" // U+00AC
	GlyphAnd     = "∧" // U+2227
	GlyphOr      = "∨" // U+2228
	GlyphImplies = "→" // U+2192
	GlyphIff     = "↔" // U+2194
	GlyphXor     = "⊕" // U+2295
	GlyphLParen  = "⟮" // U+27EE
	GlyphRParen  = "⟯" // U+27EF
)

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case IFF:
		return "IFF"
	case IMPLIES:
		return "IMPLIES"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	}
	return "UNKNOWN"
}

// Symbol returns the canonical spelling of an operator or literal token.
func (t Token) Symbol() string {
	switch t {
	case TRUE:
		return True
	case FALSE:
		return False
	case NOT:
		return Not
	case AND:
		return And
	case OR:
		return Or
	case XOR:
		return Xor
	case IFF:
		return Iff
	case IMPLIES:
		return Implies
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	}
	return ""
}

// IsBinary returns true if the token is an infix operator of the evaluable grammar.
func (t Token) IsBinary() bool {
	switch t {
	case AND, OR, XOR, IFF:
		return true
	}
	return false
}

// IsLiteral returns true for the constant tokens.
func (t Token) IsLiteral() bool {
	return t == TRUE || t == FALSE
}

// Precedence returns the binding strength of a binary operator.
// Higher binds tighter; non-binary tokens return 0.
func (t Token) Precedence() int {
	switch t {
	case AND:
		return 3
	case OR:
		return 2
	case XOR, IFF:
		return 1
	}
	return 0
}
