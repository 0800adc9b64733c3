// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package compile

// RewriteFunc rewrites the interior of a parenthesis group.
type RewriteFunc func(inner string) string

// RewriteGroups replaces the interior of every outermost parenthesis group in s
// with fn(interior). Nested groups are left to fn; a recursive fn reaches them.
//
// A ')' seen at depth 0 is skipped and a '(' that is never closed leaves the rest
// of the string untouched, so unbalanced input reaches the parser as written.
func RewriteGroups(s string, fn RewriteFunc) string {
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				repl := fn(s[start+1 : i])
				s = s[:start+1] + repl + s[i:]
				// Resume on the closing paren of the spliced group.
				i = start + 1 + len(repl)
			}
		}
	}
	return s
}
