package pretty

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p && q", "p ∧ q"},
		{"p || q", "p ∨ q"},
		{"!p", "¬p"},
		{"p -> q", "p → q"},
		{"p == q", "p ↔ q"},
		{"p ^ q", "p ⊕ q"},
		{"!(p && q) || (r == s)", "¬⟮p ∧ q⟯ ∨ ⟮r ↔ s⟯"},
		{"((p))", "⟮⟮p⟯⟯"},
		{"rain_day", "rain_day"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, s := range []string{"!(p && q) -> r ^ s", "p == !q || 1", "¬p ∧ q"} {
		once := Format(s)
		if twice := Format(once); twice != once {
			t.Errorf("Format(Format(%q)) = %q, want %q", s, twice, once)
		}
	}
}
