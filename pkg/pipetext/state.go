package pipetext

import (
	"strconv"
	"strings"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/box"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/column"
)

// captureMode is the multi character payload currently being collected. Only one can be active at a time
type captureMode int

const (
	captureNone captureMode = iota
	captureRGB
	capturePalette
	captureUnicode
	capturePattern
	captureVariable
	captureCenter
	captureEmoji
	captureEndColumn
)

// maximum digit counts for the hex captures, reaching them flushes the capture
const (
	rgbDigits     = 6
	paletteDigits = 2
	unicodeDigits = 6
)

func (c captureMode) String() string {
	switch c {
	case captureNone:
		return "none"
	case captureRGB:
		return "rgb"
	case capturePalette:
		return "palette"
	case captureUnicode:
		return "unicode"
	case capturePattern:
		return "pattern"
	case captureVariable:
		return "variable"
	case captureCenter:
		return "center"
	case captureEmoji:
		return "emoji"
	case captureEndColumn:
		return "end column"
	}

	return "unknown"
}

func (c captureMode) isHex() bool {
	return c == captureRGB || c == capturePalette || c == captureUnicode
}

func (c captureMode) hexWidth() int {
	switch c {
	case captureRGB:
		return rgbDigits
	case capturePalette:
		return paletteDigits
	case captureUnicode:
		return unicodeDigits
	}

	return 0
}

// state is everything the transducer remembers between runes
type state struct {
	mode    captureMode
	capture strings.Builder
	digits  int // hex digits captured so far
	num     int    // pending repeat count or end column
	numText []byte // the digits of num as typed, kept for writing an oversized count back out

	styles [colour.NumStyles]bool
	fg     string // last foreground code, written again after a background change
	bg     string // last background code, written again after a foreground change

	pipe      bool // a '|' is waiting for its directive
	ampersand bool // a '&' is waiting for its directive
	escape    bool // a '\' is waiting for the character it escapes

	box           box.Mode
	boxMode       bool // allow |- and |=
	ampersandMode bool // treat '&' as a background sentinel

	column column.Tracker
	depth  int
}

func newState(boxMode, ampersandMode bool) *state {
	return &state{boxMode: boxMode, ampersandMode: ampersandMode}
}

// child returns the state used for a nested render. Only the two capability flags carry over
func (s *state) child() *state {
	out := newState(s.boxMode, s.ampersandMode)
	out.depth = s.depth + 1

	return out
}

func (s *state) begin(mode captureMode) {
	s.mode = mode
	s.capture.Reset()
	s.digits = 0
}

func (s *state) end() string {
	res := s.capture.String()
	s.mode = captureNone
	s.capture.Reset()
	s.digits = 0

	return res
}

// addDigit folds a typed digit into the pending count. Once the count passes limit it stops growing, so it can never
// overflow, but every digit is still remembered for countText
func (s *state) addDigit(r rune, limit int) {
	if len(s.numText) == 0 && s.num != 0 {
		s.numText = strconv.AppendInt(s.numText, int64(s.num), 10)
	}

	s.numText = append(s.numText, byte(r))

	if s.num <= limit {
		s.num = s.num*10 + int(r-'0')
	}
}

// setCount replaces the pending count with n, as a numeric variable read does
func (s *state) setCount(n int) {
	s.num = n
	s.numText = s.numText[:0]
}

// countText is the pending count as it appeared in the input
func (s *state) countText() string {
	if len(s.numText) > 0 {
		return string(s.numText)
	}

	return strconv.Itoa(s.num)
}

func (s *state) clearCount() { s.setCount(0) }
