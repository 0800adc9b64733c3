package translate

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// negation
		{"not p", "!p"},
		{"NOT p", "!p"},
		{"not(p)", "!(p)"},
		{"¬p", "!p"},
		{"not not p", "!!p"},

		// conjunction
		{"p and q", "p && q"},
		{"p AND q", "p && q"},
		{"p & q", "p && q"},
		{"p && q", "p && q"},
		{`p /\ q`, "p && q"},
		{"p ^ q", "p && q"},
		{"p ∧ q", "p && q"},

		// disjunction
		{"p or q", "p || q"},
		{"p Or q", "p || q"},
		{"p | q", "p || q"},
		{"p || q", "p || q"},
		{`p \/ q`, "p || q"},
		{"p ∨ q", "p || q"},

		// biconditional
		{"p <-> q", "p == q"},
		{"p <--> q", "p == q"},
		{"p <=> q", "p == q"},
		{"p ↔ q", "p == q"},
		{"p iff q", "p == q"},
		{"p = q", "p == q"},
		{"p == q", "p == q"},

		// exclusive-or stays as its marker until Finalize
		{"p xor q", "p ⊕ q"},
		{"p XOR q", "p ⊕ q"},
		{"p (+) q", "p ⊕ q"},

		// literals
		{"T and F", "1 && 0"},
		{"true or FALSE", "1 || 0"},
		{"t and f", "t && f"},

		// word boundaries
		{"android or notable", "android || notable"},
		{"p and nothing", "p && nothing"},
		{"order and p", "order && p"},
		{"Tom and Fay", "Tom && Fay"},
	}

	for _, tt := range tests {
		got := Translate(tt.in)
		if got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateLeavesImplication(t *testing.T) {
	for _, in := range []string{"p -> q", "p then q", "p --> q"} {
		if got := Translate(in); got != in {
			t.Errorf("Translate(%q) = %q, want it unchanged", in, got)
		}
	}
}

func TestFinalize(t *testing.T) {
	got := Finalize(Translate("p xor q and not r"))
	if got != "p ^ q && !r" {
		t.Errorf("got %q", got)
	}
	// A finalized xor must not be read back as a conjunction.
	if Finalize("p ^ q") != "p ^ q" {
		t.Error("Finalize changed canonical text")
	}
}

func TestFindImplication(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		ok         bool
	}{
		{"p -> q", 2, 4, true},
		{"p --> q", 2, 5, true},
		{"p then q", 2, 6, true},
		{"p THEN q", 2, 6, true},
		{"p => q", 2, 4, true},
		{"p → q", 2, 5, true},
		{"¬p → q", 4, 7, true},
		{"p <-> q", 0, 0, false},
		{"p <--> q", 0, 0, false},
		{"p <=> q", 0, 0, false},
		{"p and q", 0, 0, false},
		{"athena or q", 0, 0, false},
	}

	tr := New()
	for _, tt := range tests {
		start, end, ok := tr.FindImplication(tt.in)
		if ok != tt.ok {
			t.Errorf("FindImplication(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && (start != tt.start || end != tt.end) {
			t.Errorf("FindImplication(%q) = [%d,%d), want [%d,%d)", tt.in, start, end, tt.start, tt.end)
		}
	}
}

func TestTranslateDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p then q", "p -> q"},
		{"p  =>  q", "p -> q"},
		{"p <-> q", "p == q"},
		{"not p or q", "!p || q"},
		{"p xor q", "p ^ q"},
		{"p and T", "p && T"},
		{"true or p", "true || p"},
	}

	tr := New()
	for _, tt := range tests {
		if got := tr.TranslateDisplay(tt.in); got != tt.want {
			t.Errorf("TranslateDisplay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRuleOrder(t *testing.T) {
	var last Class = -1
	for _, r := range New().Rules() {
		if r.Class < last {
			t.Fatalf("%s rule %q follows a %s rule", r.Class, r.Pattern, last)
		}
		last = r.Class
	}
}
