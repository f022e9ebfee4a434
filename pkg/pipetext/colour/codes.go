package colour //nolint:misspell // colour is correct

// Raw control codes
const (
	Escape = "\x1b"
	CSI    = Escape + "["
	Bell   = "\a"
)

// Fixed sequences emitted by single character directives
const (
	Reset       = CSI + "0m"
	ClearScreen = CSI + "H" + CSI + "J"
	CursorUp    = CSI + "A"
	CursorDown  = CSI + "B"
	CursorRight = CSI + "C"
	CursorLeft  = CSI + "D"
	HideCursor  = CSI + "?25l"
	ShowCursor  = CSI + "?25h"
)

// CursorPosition moves the cursor to row, col. Both are passed through as given, empty values are left for the
// terminal to default
func CursorPosition(row, col string) string {
	return CSI + row + ";" + col + "H"
}

// Style is a toggleable text attribute
type Style int

// All the supported Styles, in the order they are re-applied after a colour change
const (
	Bold Style = iota
	Faint
	Italic
	Underline
	Blink
	Inverse
	CrossedOut
	NumStyles
)

var styleCodes = [NumStyles]struct{ on, off string }{
	Bold:       {CSI + "1m", CSI + "22m"},
	Faint:      {CSI + "2m", CSI + "22m"},
	Italic:     {CSI + "3m", CSI + "23m"},
	Underline:  {CSI + "4m", CSI + "24m"},
	Blink:      {CSI + "5m", CSI + "25m"},
	Inverse:    {CSI + "7m", CSI + "27m"},
	CrossedOut: {CSI + "9m", CSI + "29m"},
}

// On returns the sequence that enables s
func (s Style) On() string { return styleCodes[s].on }

// Off returns the sequence that disables s
func (s Style) Off() string { return styleCodes[s].off }

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case Inverse:
		return "inverse"
	case CrossedOut:
		return "crossed out"
	}

	return "unknown"
}

// ForegroundCode describes what a foreground colour directive writes
type ForegroundCode struct {
	Emit    string // written when the colour is selected
	Restore string // remembered, and written again after a background change
	Bright  bool   // the emitted code already turns bold on
}

// BackgroundCode describes what a background colour directive writes
type BackgroundCode struct {
	Emit    string
	Restore string
}

func dark(n string) ForegroundCode   { return ForegroundCode{CSI + "0;" + n + "m", CSI + n + "m", false} }
func bright(n string) ForegroundCode { return ForegroundCode{CSI + "1;" + n + "m", CSI + "1;" + n + "m", true} }
func bg(n string) BackgroundCode     { return BackgroundCode{CSI + "0;" + n + "m", CSI + n + "m"} }

var foregrounds = map[rune]ForegroundCode{
	'k': dark("30"), 'K': dark("30"),
	's': bright("30"), 'S': bright("30"),
	'r': dark("31"), 'R': bright("31"),
	'g': dark("32"), 'G': bright("32"),
	'y': dark("33"), 'Y': bright("33"),
	'b': dark("34"), 'B': bright("34"),
	'm': dark("35"), 'M': bright("35"),
	'c': dark("36"), 'C': bright("36"),
	'w': bright("37"), 'W': bright("37"),
	'n': {Emit: CSI + "0;37m"}, 'N': {Emit: CSI + "0;37m"},
}

var backgrounds = map[rune]BackgroundCode{
	'w': bg("47"), 'W': bg("47"),
	'c': bg("46"), 'C': bg("46"),
	'm': bg("45"), 'M': bg("45"),
	'b': bg("44"), 'B': bg("44"),
	'y': bg("43"), 'Y': bg("43"),
	'g': bg("42"), 'G': bg("42"),
	'r': bg("41"), 'R': bg("41"),
	's': bg("40"), 'S': bg("40"), 'k': bg("40"), 'K': bg("40"),
	'n': {Emit: Reset}, 'N': {Emit: Reset},
}

// LookupForeground returns the foreground colour selected by the directive letter r
func LookupForeground(r rune) (ForegroundCode, bool) {
	res, ok := foregrounds[r]
	return res, ok
}

// LookupBackground returns the background colour selected by the directive letter r
func LookupBackground(r rune) (BackgroundCode, bool) {
	res, ok := backgrounds[r]
	return res, ok
}
