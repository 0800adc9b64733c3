// Package pretty renders canonical expression tokens as display glyphs.
package pretty

import (
	"strings"

	"nickandperla.net/truthtable/internal/token"
)

// Longer spellings are listed first so "==" and "->" win over any prefix.
var glyphs = strings.NewReplacer(
	token.And, token.GlyphAnd,
	token.Or, token.GlyphOr,
	token.Iff, token.GlyphIff,
	token.Implies, token.GlyphImplies,
	token.Not, token.GlyphNot,
	token.Xor, token.GlyphXor,
	"(", token.GlyphLParen,
	")", token.GlyphRParen,
)

// Format maps canonical tokens and parentheses in s to their glyphs. Identifiers
// are kept as written. Format is total and idempotent: glyph text contains no
// canonical tokens.
func Format(s string) string {
	return glyphs.Replace(s)
}
