package box

import "testing"

func TestMode_Translate(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		in   rune
		want rune
	}{
		{"off passes through", Off, '[', '['},
		{"ascii corner", ASCII, '[', '+'},
		{"ascii vertical", ASCII, '!', '|'},
		{"ascii horizontal", ASCII, '-', '-'},
		{"single top left", Single, '[', '┌'},
		{"single cross", Single, '+', '┼'},
		{"single bottom tee", Single, '^', '┴'},
		{"double top right", Double, ']', '╗'},
		{"double vertical", Double, '!', '║'},
		{"double top tee", Double, 'v', '╦'},
		{"unmapped rune", Double, 'x', 'x'},
		{"unknown mode", Mode(42), '[', '['},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMode_TranslateString(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		in   string
		want string
	}{
		{"single box", Single, "[-]\n! !\n{-}", "┌─┐\n│ │\n└─┘"},
		{"double tees", Double, ">-<", "╠═╣"},
		{"ascii box", ASCII, "[--]", "+--+"},
		{"off", Off, "[--]", "[--]"},
		{"mixed text", Single, "a-b", "a─b"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.TranslateString(tt.in); got != tt.want {
				t.Errorf("TranslateString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGlyphsCovered(t *testing.T) {
	for _, m := range []Mode{ASCII, Single, Double} {
		for _, r := range Glyphs {
			if _, ok := m.table()[r]; !ok {
				t.Errorf("mode %s has no entry for %q", m, r)
			}
		}
	}
}
