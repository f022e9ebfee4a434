package pipetext

import (
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/box"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
)

var styleDirectives = map[rune]colour.Style{
	'+': colour.Bold,
	'.': colour.Faint,
	'~': colour.Italic,
	'_': colour.Underline,
	'@': colour.Blink,
	'i': colour.Inverse,
	'I': colour.Inverse,
	'x': colour.CrossedOut,
	'X': colour.CrossedOut,
}

var cursorDirectives = map[rune]string{
	'!': colour.ClearScreen,
	'^': colour.CursorUp,
	'v': colour.CursorDown,
	'V': colour.CursorDown,
	'>': colour.CursorRight,
	'<': colour.CursorLeft,
	'h': colour.HideCursor,
	'H': colour.ShowCursor,
}

// foreground runs the directive for the rune after a '|' and reports whether there was one
func (m *machine) foreground(r rune) bool { //nolint:gocyclo // its a big switch
	st := m.st

	if s, ok := styleDirectives[r]; ok {
		m.toggle(s)
		return true
	}

	if code, ok := cursorDirectives[r]; ok {
		m.out.WriteString(code)
		return true
	}

	if code, ok := colour.LookupForeground(r); ok {
		st.fg = code.Restore
		m.out.WriteString(code.Emit)
		st.styles[colour.Bold] = false
		m.reapplyStyles()
		m.out.WriteString(st.bg)
		st.styles[colour.Bold] = code.Bright

		return true
	}

	switch r {
	case '#':
		st.begin(captureRGB)
	case 'P', 'p':
		st.begin(capturePalette)
	case 'U', 'u':
		st.begin(captureUnicode)
	case 'O':
		st.box = box.Off
	case 'o':
		st.box = box.ASCII
	case '-':
		if !st.boxMode {
			return false
		}

		st.box = box.Single
	case '=':
		if !st.boxMode {
			return false
		}

		st.box = box.Double
	case '{':
		st.begin(captureCenter)
	case ']':
		st.begin(captureEndColumn)
		st.clearCount()
	case ';':
		m.out.WriteString(spaces(st.column.FillPadding()))
	case '[':
		st.begin(captureEmoji)
	case '(':
		st.begin(captureVariable)
	case '\\':
		st.escape = true
	case '&':
		st.ampersandMode = !st.ampersandMode
	default:
		return false
	}

	return true
}

// backgroundDirective runs the directive for the rune after a '&' and reports whether there was one. Hex captures
// leave the ampersand pending so the colour they produce goes to the background
func (m *machine) backgroundDirective(r rune) bool {
	st := m.st

	switch r {
	case '#':
		st.begin(captureRGB)
		return true
	case 'P', 'p':
		st.begin(capturePalette)
		return true
	}

	code, ok := colour.LookupBackground(r)
	if !ok {
		return false
	}

	m.out.WriteString(code.Emit)
	st.bg = code.Restore
	m.reapplyStyles()
	m.out.WriteString(st.fg)
	st.ampersand = false

	return true
}

func (m *machine) toggle(s colour.Style) {
	st := m.st

	st.styles[s] = !st.styles[s]
	if st.styles[s] {
		m.out.WriteString(s.On())
	} else {
		m.out.WriteString(s.Off())
	}
}

// reapplyStyles writes the codes for every active style, colour changes reset them on most terminals
func (m *machine) reapplyStyles() {
	for s := colour.Style(0); s < colour.NumStyles; s++ {
		if m.st.styles[s] {
			m.out.WriteString(s.On())
		}
	}
}
