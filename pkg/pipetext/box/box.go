// Package box implements the glyph substitution used by pipetext's box drawing modes.
//
// A fixed set of ASCII structural characters is remapped to either plain ASCII corners, single line or double line
// box drawing characters. The glyph set is:
//    [ top left      ] top right
//    { bottom left   } bottom right
//    > left tee      < right tee
//    v top tee       ^ bottom tee
//    - horizontal    ! vertical
//    + cross
package box

// Mode selects which glyph table is active
type Mode int

// All the available modes. Off passes every rune through untouched
const (
	Off Mode = iota
	ASCII
	Single
	Double
)

// Glyphs holds every rune that has a replacement in the non-Off modes
const Glyphs = "[]-!><+{}v^"

var asciiMap = map[rune]rune{
	'[': '+', ']': '+', '-': '-', '!': '|', '>': '+', '<': '+',
	'+': '+', '{': '+', '}': '+', 'v': '+', '^': '+',
}

var singleMap = map[rune]rune{
	'[': '┌', ']': '┐', '-': '─', '!': '│', '>': '├', '<': '┤',
	'+': '┼', '{': '└', '}': '┘', 'v': '┬', '^': '┴',
}

var doubleMap = map[rune]rune{
	'[': '╔', ']': '╗', '-': '═', '!': '║', '>': '╠', '<': '╣',
	'+': '╬', '{': '╚', '}': '╝', 'v': '╦', '^': '╩',
}

func (m Mode) table() map[rune]rune {
	switch m {
	case ASCII:
		return asciiMap
	case Single:
		return singleMap
	case Double:
		return doubleMap
	}

	return nil
}

// Translate returns the replacement for r in the current mode, or r itself if there is none
func (m Mode) Translate(r rune) rune {
	if res, ok := m.table()[r]; ok {
		return res
	}

	return r
}

// TranslateString runs Translate over every rune in s
func (m Mode) TranslateString(s string) string {
	tbl := m.table()
	if tbl == nil {
		return s
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		if res, ok := tbl[r]; ok {
			r = res
		}

		out = append(out, r)
	}

	return string(out)
}

func (m Mode) String() string {
	switch m {
	case Off:
		return "off"
	case ASCII:
		return "ascii"
	case Single:
		return "single"
	case Double:
		return "double"
	}

	return "unknown"
}
