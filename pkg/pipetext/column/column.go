// Package column tracks how many terminal columns rendered output has used, ignoring escape sequences.
//
// Wide and combining characters are counted as one column each.
package column

import "strings"

const (
	escape   = 27
	sgrFinal = 'm'
	space    = 32
)

// PrintableLength counts the runes in s that would take up a column. Control characters are skipped, and an ESC
// suspends counting until the next 'm'
func PrintableLength(s string) int {
	length := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == escape:
			inEscape = true
		case r < space:
		case inEscape:
			if r == sgrFinal {
				inEscape = false
			}
		default:
			length++
		}
	}

	return length
}

// Tracker holds the current output column and the end column used for centering and padding
type Tracker struct {
	Position int
	End      int
}

// Advance updates the position after increment has been written
func (t *Tracker) Advance(increment string) {
	if idx := strings.LastIndexByte(increment, '\n'); idx != -1 {
		t.Position = PrintableLength(increment[idx+1:])
		return
	}

	t.Position += PrintableLength(increment)
}

// CenterPadding returns the number of spaces to write before text so that it is centered between the current
// position and the end column. It is never negative
func (t *Tracker) CenterPadding(text string) int {
	length := PrintableLength(text)
	spaces := t.End - t.Position - length

	if length%2 != 0 {
		spaces++
	}

	if spaces <= 0 {
		return 0
	}

	return spaces / 2
}

// FillPadding returns the number of spaces needed to reach the end column from the current position
func (t *Tracker) FillPadding() int {
	if t.End <= t.Position {
		return 0
	}

	return t.End - t.Position
}
