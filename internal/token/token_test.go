package token

import "testing"

func TestPrecedence(t *testing.T) {
	if !(AND.Precedence() > OR.Precedence() && OR.Precedence() > IFF.Precedence()) {
		t.Error("expected AND > OR > IFF")
	}
	if XOR.Precedence() != IFF.Precedence() {
		t.Error("XOR and IFF should bind alike")
	}
	for _, tok := range []Token{NOT, IMPLIES, IDENT, LPAREN, EOF} {
		if tok.Precedence() != 0 {
			t.Errorf("%s has precedence %d", tok, tok.Precedence())
		}
	}
}

func TestIsBinary(t *testing.T) {
	for _, tok := range []Token{AND, OR, XOR, IFF} {
		if !tok.IsBinary() {
			t.Errorf("%s should be binary", tok)
		}
	}
	// Implication is parsed separately, right-associative.
	for _, tok := range []Token{IMPLIES, NOT, TRUE, IDENT} {
		if tok.IsBinary() {
			t.Errorf("%s should not be binary", tok)
		}
	}
}

func TestSymbol(t *testing.T) {
	tests := map[Token]string{
		TRUE: "1", FALSE: "0", NOT: "!", AND: "&&", OR: "||",
		XOR: "^", IFF: "==", IMPLIES: "->", IDENT: "",
	}
	for tok, want := range tests {
		if got := tok.Symbol(); got != want {
			t.Errorf("%s.Symbol() = %q, want %q", tok, got, want)
		}
	}
}
