package pipetext

import (
	"strings"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
)

// machine runs a state over text one rune at a time. Output produced by a single rune is held in out until the
// caller collects it, so that column tracking and streaming both see exactly one increment per rune
type machine struct {
	*env
	st  *state
	out strings.Builder
}

// run feeds every rune of text through st, passing each non-empty increment to emit. Anything still pending at the
// end of text is flushed as literal text
func (e *env) run(st *state, text string, emit func(string) error) error {
	m := &machine{env: e, st: st}

	if st.depth == 0 {
		e.nestedLeft = e.maxNested
		e.budgetWarned = false
	}

	for _, r := range text {
		m.feed(r)

		if err := m.collect(emit); err != nil {
			return err
		}
	}

	m.finish()

	return m.collect(emit)
}

// render is run with a buffer as the destination
func (e *env) render(st *state, text string) string {
	var sb strings.Builder

	_ = e.run(st, text, func(inc string) error {
		sb.WriteString(inc)
		return nil
	})

	return sb.String()
}

func (m *machine) collect(emit func(string) error) error {
	if m.out.Len() == 0 {
		return nil
	}

	inc := m.out.String()
	m.out.Reset()
	m.st.column.Advance(inc)

	return emit(inc)
}

// nested renders text with a fresh state one level deeper than the current one
func (m *machine) nested(text string) string {
	res, _ := m.nest(text)
	return res
}

// nest is nested, also reporting whether text was rendered. Text is returned as is when the depth limit is reached
// or the top level call has used up its nested render budget
func (m *machine) nest(text string) (string, bool) {
	if m.st.depth >= m.maxDepth {
		m.log.Warnf("nesting deeper than %d, leaving %q unrendered", m.maxDepth, text)
		return text, false
	}

	if m.nestedLeft <= 0 {
		if !m.budgetWarned {
			m.log.Warnf("more than %d nested renders, leaving the rest unrendered", m.maxNested)
			m.budgetWarned = true
		}

		return text, false
	}

	m.nestedLeft--

	return m.render(m.st.child(), text), true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// feed processes a single rune. The order of the checks matters: open captures get first look at every rune, then
// the sentinels, then whatever directive is pending, and only then is the rune treated as text
func (m *machine) feed(r rune) {
	st := m.st

	// hex captures end on the first rune that cannot extend them. The rune itself is then processed as normal
	switch st.mode {
	case captureRGB, capturePalette:
		if !colour.IsHexDigit(r) {
			m.flushHex()
		}
	case captureUnicode:
		if r == '+' {
			if st.digits > 0 {
				m.flushHex()
			}
		} else if !colour.IsHexDigit(r) {
			m.flushHex()
		}
	}

	switch st.mode {
	case captureEndColumn:
		if isDigit(r) {
			st.addDigit(r, m.maxRepeat)
			return
		}

		m.commitEndColumn()
		st.mode = captureNone
	case captureVariable:
		m.captureVariable(r)
		return
	case captureCenter:
		m.captureCenter(r)
		return
	case captureEmoji:
		m.captureEmoji(r)
		return
	}

	if r == '|' && st.mode != capturePattern && !st.escape {
		m.pipe()
		return
	}

	if r == '~' && st.pipe && st.num > 0 && !st.escape {
		m.pattern()
		return
	}

	switch st.mode {
	case capturePattern:
		m.capturePattern(r)
		return
	case captureRGB, capturePalette, captureUnicode:
		if st.mode == captureUnicode && r == '+' {
			return
		}

		m.captureHex(r)

		return
	}

	switch {
	case st.pipe && st.escape:
		m.escaped(r)
	case r == '&' && st.ampersandMode && !st.pipe:
		m.ampersandSentinel()
	case st.pipe:
		m.piped(r)
	case st.ampersand:
		m.background(r)
	default:
		m.out.WriteRune(st.box.Translate(r))
	}
}

func (m *machine) pipe() {
	if m.st.pipe && m.st.num == 0 {
		m.st.pipe = false
		m.out.WriteByte('|')

		return
	}

	m.st.pipe = true
}

func (m *machine) ampersandSentinel() {
	if m.st.ampersand {
		m.st.ampersand = false
		m.out.WriteByte('&')

		return
	}

	m.st.ampersand = true
}

// piped handles the rune after a '|'. With a repeat count pending only '\' is a directive
func (m *machine) piped(r rune) {
	st := m.st

	found := true

	switch {
	case st.num == 0:
		found = m.foreground(r)
	case r == '\\':
		st.escape = true
	default:
		found = false
	}

	if !found {
		if m.notFound(r) {
			st.pipe = false
		}

		return
	}

	if !st.escape {
		st.pipe = false
	}
}

// background handles the rune after a '&'. Repeat counts only follow '|', so anything that is not a background
// directive is written out with its '&'
func (m *machine) background(r rune) {
	if m.backgroundDirective(r) {
		return
	}

	m.out.WriteByte('&')
	m.out.WriteRune(r)
	m.st.ampersand = false
}

// notFound deals with a rune after '|' that is not a directive. Digits build up the repeat count and keep the pipe
// pending, anything else is written out literally or repeated. The return value says whether the pipe is done
func (m *machine) notFound(r rune) bool {
	st := m.st

	if isDigit(r) {
		st.addDigit(r, m.maxRepeat)
		return false
	}

	switch {
	case st.num <= 0:
		m.out.WriteByte('|')
		m.out.WriteRune(r)
	case st.num > m.maxRepeat:
		m.tooMany(st.countText())
		m.out.WriteString("|" + st.countText())
		m.out.WriteRune(r)
	default:
		m.out.WriteString(strings.Repeat(string(st.box.Translate(r)), st.num))
	}

	st.clearCount()

	return true
}

func (m *machine) tooMany(count string) {
	m.log.Warnf("repeat count %s is over the limit of %d, writing it as text", count, m.maxRepeat)
}

// commitEndColumn ends an end column capture. Columns past the repeat limit are clamped to it
func (m *machine) commitEndColumn() {
	st := m.st

	st.column.End = st.num
	if st.column.End > m.maxRepeat {
		st.column.End = m.maxRepeat
	}

	st.clearCount()
}

// escaped writes the rune after "|\", repeated by any pending count
func (m *machine) escaped(r rune) {
	st := m.st

	n := st.num
	if n < 1 {
		n = 1
	}

	if n > m.maxRepeat {
		m.tooMany(st.countText())
		m.out.WriteString("|" + st.countText() + "\\")
		m.out.WriteRune(r)
	} else {
		m.out.WriteString(strings.Repeat(unescape(r), n))
	}

	st.clearCount()
	st.pipe = false
	st.escape = false
}

// finish flushes whatever is still pending once the input runs out. Unfinished directives come out as the text that
// started them
func (m *machine) finish() {
	st := m.st

	switch st.mode {
	case captureRGB, capturePalette, captureUnicode:
		m.flushHex()
	case captureEmoji:
		m.out.WriteString("|[" + st.end())
	case captureCenter:
		m.out.WriteString("|{" + st.end())
	case captureVariable:
		m.out.WriteString("|(" + st.end())
	case capturePattern:
		m.out.WriteString("|" + st.countText() + "~" + st.end())
		st.clearCount()
		st.pipe = false
	case captureEndColumn:
		m.commitEndColumn()
		st.end()
	}

	switch {
	case st.pipe:
		m.out.WriteByte('|')
		m.pendingCount()

		if st.escape {
			m.out.WriteByte('\\')
		}
	case st.ampersand:
		m.out.WriteByte('&')
	}

	st.clearCount()
	st.pipe = false
	st.ampersand = false
	st.escape = false
}

func (m *machine) pendingCount() {
	if m.st.num > 0 {
		m.out.WriteString(m.st.countText())
	}
}
