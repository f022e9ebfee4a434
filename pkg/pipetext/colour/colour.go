// Package colour contains the encoders that turn captured pipetext payloads into terminal control sequences, along
// with the fixed SGR and cursor codes the transducer emits
package colour //nolint:misspell // colour is correct

import (
	"strconv"
	"strings"
)

// Layer says which side of a cell a colour applies to
type Layer int

// Foreground and Background are the two Layers
const (
	Foreground Layer = iota
	Background
)

func (l Layer) String() string {
	if l == Background {
		return "background"
	}

	return "foreground"
}

func (l Layer) trueColourPrefix() string {
	if l == Background {
		return CSI + "48;2;"
	}

	return CSI + "38;2;"
}

func (l Layer) palettePrefix() string {
	if l == Background {
		return CSI + "48;5;"
	}

	return CSI + "38;5;"
}

// IsHexDigit reports whether r is 0-9, a-f or A-F
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

const maxHexDigits = 8

// ParseHex parses the leading hex digits of in. If there are none, it returns 0. At most 8 digits are considered
func ParseHex(in string) int {
	end := 0
	for end < len(in) && end < maxHexDigits && IsHexDigit(rune(in[end])) {
		end++
	}

	if end == 0 {
		return 0
	}

	res, err := strconv.ParseUint(in[:end], 16, 32)
	if err != nil {
		return 0
	}

	return int(res)
}

func channel(digits string, idx int) string {
	start := idx * 2
	if start >= len(digits) {
		return "0"
	}

	end := start + 2
	if end > len(digits) {
		end = len(digits)
	}

	return strconv.Itoa(ParseHex(digits[start:end]))
}

// TrueColour converts up to six captured hex digits into a 24 bit colour sequence. Digits are split 2/2/2 into red,
// green and blue. A channel with only one digit is parsed as is, and missing channels are zero
func TrueColour(digits string, layer Layer) string {
	out := strings.Builder{}
	out.WriteString(layer.trueColourPrefix())
	out.WriteString(channel(digits, 0))
	out.WriteRune(';')
	out.WriteString(channel(digits, 1))
	out.WriteRune(';')
	out.WriteString(channel(digits, 2))
	out.WriteRune('m')

	return out.String()
}

// Palette converts up to two captured hex digits into an 8 bit palette colour sequence
func Palette(digits string, layer Layer) string {
	return layer.palettePrefix() + strconv.Itoa(ParseHex(digits)) + "m"
}

// CodePoint decodes up to six hex digits as a single unicode scalar value. Values that are not valid scalar values
// (surrogate halves or anything past U+10FFFF) come out as U+FFFD
func CodePoint(digits string) string {
	return string(rune(ParseHex(digits)))
}
