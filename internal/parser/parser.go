// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser builds expression trees from canonical boolean-expression text.
//
// Grammar, loosest binding first:
//
//	expr    = binary [ "->" expr ]
//	binary  = unary { op unary }        op: "==" "^" (1) < "||" (2) < "&&" (3)
//	unary   = "!" unary | primary
//	primary = "1" | "0" | ident | "(" expr ")"
//
// Operators of equal precedence associate to the left.
package parser

import (
	"fmt"

	"nickandperla.net/truthtable/internal/expr"
	"nickandperla.net/truthtable/internal/scanner"
	"nickandperla.net/truthtable/internal/token"
)

// SyntaxError describes the first token the grammar could not accept.
type SyntaxError struct {
	Pos   int    // Rune offset in the source
	Found string // Offending token text, empty at end of input
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
	}
	return fmt.Sprintf("%s %q at offset %d", e.Msg, e.Found, e.Pos)
}

// Parser is a precedence-climbing parser over a Scanner.
type Parser struct {
	scan *scanner.Scanner
}

// New creates a Parser for src.
func New(src string) *Parser {
	return &Parser{scan: scanner.NewFromString(src)}
}

// Parse parses a complete expression.
func Parse(src string) (expr.Expr, error) {
	return New(src).Parse()
}

// Parse parses a complete expression and requires the input to be fully consumed.
func (p *Parser) Parse() (expr.Expr, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	item, err := p.scan.Next()
	if err != nil {
		return nil, err
	}
	if item.Token != token.EOF {
		return nil, unexpected(item)
	}
	return e, nil
}

func (p *Parser) parseExpr() (expr.Expr, error) {
	left, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	item, err := p.scan.Peek()
	if err != nil {
		return nil, err
	}
	if item.Token != token.IMPLIES {
		return left, nil
	}
	p.scan.Next()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return expr.Implies{L: left, R: right}, nil
}

func (p *Parser) parseBinary(minPrec int) (expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		item, err := p.scan.Peek()
		if err != nil {
			return nil, err
		}
		op := item.Token
		if !op.IsBinary() || op.Precedence() < minPrec {
			return left, nil
		}
		p.scan.Next()
		right, err := p.parseBinary(op.Precedence() + 1)
		if err != nil {
			return nil, err
		}
		left, err = expr.NewBinary(op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseUnary() (expr.Expr, error) {
	item, err := p.scan.Peek()
	if err != nil {
		return nil, err
	}
	if item.Token == token.NOT {
		p.scan.Next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	item, err := p.scan.Next()
	if err != nil {
		return nil, err
	}
	switch item.Token {
	case token.TRUE:
		return expr.Literal{Value: true}, nil
	case token.FALSE:
		return expr.Literal{Value: false}, nil
	case token.IDENT:
		return expr.Variable{Name: item.Value}, nil
	case token.LPAREN:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.scan.Next()
		if err != nil {
			return nil, err
		}
		if closing.Token != token.RPAREN {
			if closing.Token == token.EOF {
				return nil, &SyntaxError{Pos: item.Pos, Found: "", Msg: "unclosed parenthesis"}
			}
			return nil, &SyntaxError{Pos: closing.Pos, Found: closing.Value, Msg: "expected ')' but found"}
		}
		return inner, nil
	}
	return nil, unexpected(item)
}

func unexpected(item *scanner.Item) error {
	switch item.Token {
	case token.EOF:
		return &SyntaxError{Pos: item.Pos, Msg: "unexpected end of expression"}
	case token.ILLEGAL:
		return &SyntaxError{Pos: item.Pos, Found: item.Value, Msg: "illegal token"}
	}
	return &SyntaxError{Pos: item.Pos, Found: item.Value, Msg: "unexpected"}
}
