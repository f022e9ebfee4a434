package pipetext

import (
	"io"
	"strconv"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/variables"
)

// Session renders a sequence of texts with one state, so styles, colours, the box mode, the end column and variables
// set by one call are still in effect for the next. A Session must not be used from more than one goroutine at once
type Session struct {
	env  *env
	st   *state
	opts Options
}

// NewSession creates a Session. If opts has a SizeProvider the width and height variables are set from it
func NewSession(opts Options) *Session {
	s := &Session{env: newEnv(opts), opts: opts}
	s.st = newState(opts.BoxMode, opts.AmpersandMode)

	if opts.Size != nil {
		width, height, err := opts.Size.Size()
		if err != nil {
			s.env.log.Debugf("could not get terminal size: %s", err)
		} else {
			s.env.store.Set("width", strconv.Itoa(width))
			s.env.store.Set("height", strconv.Itoa(height))
		}
	}

	return s
}

// Render returns text rendered on top of the session's current state
func (s *Session) Render(text string) string {
	return s.env.render(s.st, text)
}

// Stream writes text to w as it is rendered, one piece per input rune where that rune produced output. It stops at
// the first write error
func (s *Session) Stream(w io.Writer, text string) error {
	return s.env.run(s.st, text, func(inc string) error {
		_, err := io.WriteString(w, inc)
		return err
	})
}

// Write streams text followed by a newline. The newline is written after the render, so a directive left open at
// the end of text cannot take it
func (s *Session) Write(w io.Writer, text string) error {
	if err := s.Stream(w, text); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	s.st.column.Advance("\n")

	return nil
}

// Paint is Write with ampersand mode switched on for the duration of the call
func (s *Session) Paint(w io.Writer, text string) error {
	prev := s.st.ampersandMode
	s.st.ampersandMode = true

	defer func() { s.st.ampersandMode = prev }()

	return s.Write(w, text)
}

// Variables returns the session's variable store. Changes to it are seen by later renders
func (s *Session) Variables() *variables.Store { return s.env.store }

// Position is the column the cursor is believed to be in after the last render
func (s *Session) Position() int { return s.st.column.Position }

// EndColumn is the column set by the last |] directive
func (s *Session) EndColumn() int { return s.st.column.End }

// Reset drops all styles, colours, box and ampersand mode changes and the column state. Variables are kept
func (s *Session) Reset() {
	s.st = newState(s.opts.BoxMode, s.opts.AmpersandMode)
}

// Render renders text with a new Session built from opts
func Render(text string, opts Options) string {
	return NewSession(opts).Render(text)
}

// Pipetext renders text with the default options, boxMode allows the single and double box modes and ampersandMode
// makes '&' a background sentinel from the start
func Pipetext(text string, boxMode, ampersandMode bool) string {
	opts := DefaultOptions()
	opts.BoxMode = boxMode
	opts.AmpersandMode = ampersandMode

	return Render(text, opts)
}
