// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a Unicode-aware lexer for canonical boolean expressions.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nickandperla.net/truthtable/internal/token"
)

// Scanner tokenizes canonical expression text rune-by-rune.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *Item
	pos    int // Rune offset of the next unread rune
}

// Item represents a scanned token with its value.
type Item struct {
	Token token.Token
	Value string
	Pos   int // Rune offset where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Pos returns the current rune offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

func (s *Scanner) read() (rune, error) {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	s.pos++
	return r, nil
}

func (s *Scanner) unread() {
	s.reader.UnreadRune()
	s.pos--
}

// Next returns the next token from the input.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	// Skip whitespace
	var r rune
	for {
		var err error
		r, err = s.read()
		if err == io.EOF {
			return &Item{Token: token.EOF, Pos: s.pos}, nil
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsSpace(r) {
			break
		}
	}
	start := s.pos - 1

	switch r {
	case '(':
		return &Item{Token: token.LPAREN, Value: "(", Pos: start}, nil
	case ')':
		return &Item{Token: token.RPAREN, Value: ")", Pos: start}, nil
	case '!':
		return &Item{Token: token.NOT, Value: token.Not, Pos: start}, nil
	case '^':
		return &Item{Token: token.XOR, Value: token.Xor, Pos: start}, nil
	case '&':
		return s.pair(r, '&', token.AND, start)
	case '|':
		return s.pair(r, '|', token.OR, start)
	case '=':
		return s.pair(r, '=', token.IFF, start)
	case '-':
		return s.pair(r, '>', token.IMPLIES, start)
	}

	if IsIdentChar(r) {
		return s.word(r, start)
	}
	return &Item{Token: token.ILLEGAL, Value: string(r), Pos: start}, nil
}

// pair scans a two-rune operator whose first rune has been read.
func (s *Scanner) pair(first, second rune, tok token.Token, start int) (*Item, error) {
	r, err := s.read()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == nil && r == second {
		return &Item{Token: tok, Value: string([]rune{first, second}), Pos: start}, nil
	}
	if err == nil {
		s.unread()
	}
	return &Item{Token: token.ILLEGAL, Value: string(first), Pos: start}, nil
}

// word scans an identifier or a 0/1 literal.
func (s *Scanner) word(first rune, start int) (*Item, error) {
	s.buf.Reset()
	s.buf.WriteRune(first)
	for {
		r, err := s.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !IsIdentChar(r) {
			s.unread()
			break
		}
		s.buf.WriteRune(r)
	}

	value := s.buf.String()
	switch {
	case value == token.True:
		return &Item{Token: token.TRUE, Value: value, Pos: start}, nil
	case value == token.False:
		return &Item{Token: token.FALSE, Value: value, Pos: start}, nil
	case IsBinaryRun(value):
		// 10, 011, ... are neither literals nor variables.
		return &Item{Token: token.ILLEGAL, Value: value, Pos: start}, nil
	}
	return &Item{Token: token.IDENT, Value: value, Pos: start}, nil
}

// IsIdentChar returns true if the rune is valid in an identifier (letter, digit, underscore).
func IsIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// IsBinaryRun reports whether s consists only of the digits 0 and 1.
func IsBinaryRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}

// Words returns the maximal identifier-character runs of s in order.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !IsIdentChar(r) })
}
