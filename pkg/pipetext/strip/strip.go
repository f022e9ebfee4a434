// Package strip removes terminal control sequences from rendered pipetext, leaving only the printable text
package strip

import (
	"io"
	"strings"
)

const (
	esc  = 0x1b
	bell = 0x07
)

type state int

const (
	stateText state = iota
	stateEscape
	stateCSI
)

// Stripper removes escape sequences and bells from a byte stream. Sequences may be split across calls to Strip
type Stripper struct {
	state state
}

// Strip appends the text in p, without any control sequences, to out
func (s *Stripper) Strip(out []byte, p []byte) []byte {
	for _, b := range p {
		switch s.state {
		case stateText:
			switch b {
			case esc:
				s.state = stateEscape
			case bell:
			default:
				out = append(out, b)
			}
		case stateEscape:
			if b == '[' {
				s.state = stateCSI
			} else {
				s.state = stateText
			}
		case stateCSI:
			switch {
			case b >= 0x40 && b <= 0x7e:
				s.state = stateText
			case b >= 0x80:
				s.state = stateText
				out = append(out, b)
			}
		}
	}

	return out
}

// String strips every control sequence from s
func String(s string) string {
	if !strings.ContainsAny(s, "\x1b\a") {
		return s
	}

	var st Stripper

	return string(st.Strip(make([]byte, 0, len(s)), []byte(s)))
}

// Writer strips everything written to it before passing it on to w
type Writer struct {
	w   io.Writer
	st  Stripper
	buf []byte
}

// NewWriter creates a Writer wrapping w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer. It reports all of p as written when the stripped text was written in full
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = w.st.Strip(w.buf[:0], p)
	if len(w.buf) == 0 {
		return len(p), nil
	}

	if _, err := w.w.Write(w.buf); err != nil {
		return 0, err
	}

	return len(p), nil
}
