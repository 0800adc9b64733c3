// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"nickandperla.net/truthtable/internal/scanner"
)

// Variables returns the free identifiers of the compiled expressions in order of
// first appearance. Names compare case-insensitively; the first spelling wins.
// Pure 0/1 runs are literals, and every operator word has already been translated
// away, so any other word is a variable.
func Variables(compiled []string) []string {
	var vars []string
	seen := make(map[string]bool)
	for _, w := range scanner.Words(strings.Join(compiled, " ")) {
		if scanner.IsBinaryRun(w) {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		vars = append(vars, w)
	}
	return vars
}

// Substitute replaces every whole-word occurrence of each variable in text
// (ignoring case) with its value from values, written as true or false.
func Substitute(text string, vars []string, values []bool) string {
	out, _ := substitute(text, vars, values, -1)
	return out
}

// substitute is Substitute that also maps the rune offset pos in text to the
// offset of the same token in the result. An offset at or past the end of text
// maps to the end of the result.
func substitute(text string, vars []string, values []bool, pos int) (string, int) {
	bind := make(map[string]bool, len(vars))
	for i, v := range vars {
		key := strings.ToLower(v)
		if _, ok := bind[key]; !ok && i < len(values) {
			bind[key] = values[i]
		}
	}

	var sb, word strings.Builder
	in, out := 0, 0 // runes read, runes written
	wordStart, mapped := 0, -1
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		repl := w
		if v, ok := bind[strings.ToLower(w)]; ok {
			repl = strconv.FormatBool(v)
		}
		if pos >= wordStart && pos < wordStart+utf8.RuneCountInString(w) {
			mapped = out
		}
		sb.WriteString(repl)
		out += utf8.RuneCountInString(repl)
		word.Reset()
	}
	for _, r := range text {
		if scanner.IsIdentChar(r) {
			if word.Len() == 0 {
				wordStart = in
			}
			word.WriteRune(r)
			in++
			continue
		}
		flush()
		if in == pos {
			mapped = out
		}
		sb.WriteRune(r)
		in++
		out++
	}
	flush()
	if mapped < 0 {
		mapped = out
	}
	return sb.String(), mapped
}
