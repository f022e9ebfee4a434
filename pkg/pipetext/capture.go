package pipetext

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/variables"
)

var (
	cursorRegex  = regexp.MustCompile(`^(\d*)[,;](\d*)$`)
	secondsRegex = regexp.MustCompile(`(?i)^(\d*)s$`)
	millisRegex  = regexp.MustCompile(`(?i)^(\d*)ms$`)
)

func spaces(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

func (m *machine) captureHex(r rune) {
	st := m.st

	st.capture.WriteRune(r)
	st.digits++

	if st.digits >= st.mode.hexWidth() {
		m.flushHex()
	}
}

// flushHex writes the open hex capture with whatever digits it has. Colours go to the background, and use up the
// pending ampersand, when one is waiting
func (m *machine) flushHex() {
	st := m.st
	mode := st.mode
	digits := st.end()

	layer := colour.Foreground
	if mode != captureUnicode && st.ampersand {
		layer = colour.Background
		st.ampersand = false
	}

	switch mode {
	case captureRGB:
		m.out.WriteString(colour.TrueColour(digits, layer))
	case capturePalette:
		m.out.WriteString(colour.Palette(digits, layer))
	case captureUnicode:
		m.out.WriteString(colour.CodePoint(digits))
	}
}

// captureEscaped collects r into the open capture, keeping "\x" pairs intact. It reports whether r was taken as part
// of an escape
func (m *machine) captureEscaped(r rune) bool {
	st := m.st

	if st.escape {
		st.capture.WriteByte('\\')
		st.capture.WriteRune(r)
		st.escape = false

		return true
	}

	if r == '\\' {
		st.escape = true
		return true
	}

	return false
}

func (m *machine) captureVariable(r rune) {
	if m.captureEscaped(r) {
		return
	}

	if r == ')' {
		m.variable(m.st.end())
		return
	}

	m.st.capture.WriteRune(r)
}

func (m *machine) captureCenter(r rune) {
	if m.captureEscaped(r) {
		return
	}

	if r == '}' {
		text := m.st.end()
		m.out.WriteString(spaces(m.st.column.CenterPadding(text)) + text)

		return
	}

	m.st.capture.WriteRune(r)
}

func (m *machine) capturePattern(r rune) {
	if m.captureEscaped(r) {
		return
	}

	m.st.capture.WriteRune(r)
}

func (m *machine) captureEmoji(r rune) {
	if r == ']' {
		m.emoji(m.st.end())
		return
	}

	m.st.capture.WriteRune(r)
}

// pattern opens a repeat pattern, or closes the open one and renders it once per repeat. Each repeat is a separate
// render so variables changed by one are seen by the next
func (m *machine) pattern() {
	st := m.st

	if st.mode != capturePattern {
		st.begin(capturePattern)
		return
	}

	count := st.num
	written := st.countText()
	pattern := st.end()

	st.clearCount()
	st.pipe = false
	st.escape = false

	if count > m.maxRepeat {
		m.tooMany(written)
		m.out.WriteString("|" + written + "~" + pattern + "~")

		return
	}

	for i := 0; i < count; i++ {
		res, ok := m.nest(pattern)
		m.out.WriteString(res)

		if !ok {
			break
		}
	}
}

// variable runs a closed |(...) directive
func (m *machine) variable(expr string) {
	st := m.st

	if strings.Contains(expr, "=") && !strings.HasPrefix(expr, "#") {
		a, _ := variables.ParseAssignment(expr)
		res := m.store.Apply(a)
		m.log.Tracef("variable %q %s %q -> %q", a.Name, a.Op, a.Operand, res)

		return
	}

	if read, ok := variables.ParseNumericRead(expr); ok {
		raw, _ := m.store.Get(read.Name)
		st.setCount(read.Combine(variables.LeadingInt(m.nested(unescapeAll(raw)))))
		st.pipe = true

		return
	}

	raw, ok := m.store.Get(expr)
	if !ok {
		m.log.Debugf("unknown variable %q", expr)
		m.out.WriteString("|(" + expr + ")")

		return
	}

	m.out.WriteString(m.nested(unescapeAll(raw)))
}

// emoji runs a closed |[...] directive
func (m *machine) emoji(name string) {
	switch {
	case strings.Contains(name, "bell"):
		m.out.WriteString(colour.Bell)
	case cursorRegex.MatchString(name):
		match := cursorRegex.FindStringSubmatch(name)
		m.out.WriteString(colour.CursorPosition(match[1], match[2]))
	case secondsRegex.MatchString(name):
		m.delay(secondsRegex.FindStringSubmatch(name)[1], time.Second)
	case millisRegex.MatchString(name):
		m.delay(millisRegex.FindStringSubmatch(name)[1], time.Millisecond)
	default:
		res, ok := m.resolver.Resolve(name)
		if !ok {
			m.log.Debugf("no emoji matches %q", name)
			m.out.WriteString("|[" + name + "]")

			return
		}

		m.out.WriteString(emoji.Decode(res))
	}
}

func (m *machine) delay(count string, unit time.Duration) {
	n, _ := strconv.Atoi(count)
	if m.sleep == nil || n <= 0 {
		return
	}

	d := time.Duration(n) * unit
	m.log.Debugf("sleeping for %s", d)
	m.sleep(d)
}
