package emoji

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
)

// DefaultIgnored is the set of runes in a candidate name that abbreviations may skip over
const DefaultIgnored = ",.':-"

// AbbreviatedMatch scores how well input abbreviates candidate. Each rune of input must match the next rune of
// candidate, after skipping any runes from ignored. A space in input may also jump forward to the next space in
// candidate, which allows "smi f w" to abbreviate "smiling face with". The score is the number of input runes
// matched plus the number of candidate runes skipped, or 0 if input does not abbreviate candidate at all
func AbbreviatedMatch(input, candidate string, caseSensitive bool, ignored string) int {
	in := []rune(input)
	cand := []rune(candidate)
	count, offset := 0, 0

	for idx, r := range in {
		for idx+offset < len(cand) && strings.ContainsRune(ignored, cand[idx+offset]) {
			offset++
		}

		pos := idx + offset
		if pos >= len(cand) {
			return 0
		}

		c := cand[pos]

		switch {
		case r == c:
			count++
		case !caseSensitive && unicode.ToLower(r) == unicode.ToLower(c):
			count++
		case r == ' ' && containsSpace(cand[pos:]):
			count++

			for cand[idx+offset] != ' ' {
				offset++
			}
		default:
			return 0
		}
	}

	return count + offset
}

func containsSpace(in []rune) bool {
	for _, r := range in {
		if r == ' ' {
			return true
		}
	}

	return false
}

// Resolver looks up emoji descriptions in a Table
type Resolver struct {
	table         *Table
	ignored       string
	caseSensitive bool
}

// NewResolver creates a Resolver over table, which may be nil. Matching ignores case and DefaultIgnored
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table, ignored: DefaultIgnored}
}

// SetCaseSensitive switches abbreviated matching between case sensitive and insensitive
func (r *Resolver) SetCaseSensitive(caseSensitive bool) *Resolver {
	r.caseSensitive = caseSensitive
	return r
}

// Table returns the table being resolved against
func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve finds the replacement for name. An exact match is returned immediately. Otherwise every entry at least as
// long as name is scored with AbbreviatedMatch (hyphenated names get a second try with their first hyphen read as a
// space), and the tightest match wins. Equal scores go to the shorter replacement, and after that to whichever entry
// comes first in the table
func (r *Resolver) Resolve(name string) (string, bool) {
	if r == nil || r.table.Len() == 0 {
		return "", false
	}

	if res, ok := r.table.Lookup(name); ok {
		return res, true
	}

	nameLen := utf8.RuneCountInString(name)

	var (
		best      string
		bestScore int
		found     bool
	)

	for _, e := range r.table.entries {
		if nameLen > utf8.RuneCountInString(e.Name) {
			continue
		}

		score := AbbreviatedMatch(name, e.Name, r.caseSensitive, r.ignored)
		if score == 0 && strings.Contains(e.Name, "-") {
			score = AbbreviatedMatch(name, strings.Replace(e.Name, "-", " ", 1), r.caseSensitive, r.ignored)
		}

		if score == 0 {
			continue
		}

		if !found || score < bestScore || (score == bestScore && len(e.Replacement) < len(best)) {
			best, bestScore, found = e.Replacement, score, true
		}
	}

	return best, found
}

var unicodeMarker = strings.NewReplacer("|u", "|U")

// Decode converts a replacement made of "|U<hex>" segments into the runes it describes. A '+' directly after the
// marker is ignored, as are segments with no hex digits
func Decode(replacement string) string {
	out := strings.Builder{}

	for _, seg := range strings.Split(unicodeMarker.Replace(replacement), "|U") {
		seg = strings.TrimPrefix(seg, "+")
		if seg == "" || !colour.IsHexDigit(rune(seg[0])) {
			continue
		}

		out.WriteString(colour.CodePoint(seg))
	}

	return out.String()
}
