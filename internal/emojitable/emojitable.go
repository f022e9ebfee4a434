// Package emojitable builds the emoji table the pipetext command uses by default
package emojitable

import (
	"fmt"
	"sort"
	"strings"

	gemoji "github.com/enescakir/emoji"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
)

// curated entries come first so that abbreviations prefer them over the bulk aliases
var curated = []emoji.Entry{
	{Name: "check mark", Replacement: "|U2714"},
	{Name: "check mark button", Replacement: "|U2705"},
	{Name: "cross mark", Replacement: "|U274C"},
	{Name: "red heart", Replacement: "|U2764|UFE0F"},
	{Name: "star", Replacement: "|U2B50"},
	{Name: "sparkles", Replacement: "|U2728"},
	{Name: "fire", Replacement: "|U1F525"},
	{Name: "warning", Replacement: "|U26A0|UFE0F"},
	{Name: "hourglass done", Replacement: "|U231B"},
	{Name: "rocket", Replacement: "|U1F680"},
	{Name: "party popper", Replacement: "|U1F389"},
	{Name: "light bulb", Replacement: "|U1F4A1"},
	{Name: "grinning face", Replacement: "|U1F600"},
	{Name: "beaming face with smiling eyes", Replacement: "|U1F601"},
	{Name: "face with tears of joy", Replacement: "|U1F602"},
	{Name: "smiling face with smiling eyes", Replacement: "|U1F60A"},
	{Name: "smiling face with heart-eyes", Replacement: "|U1F60D"},
	{Name: "winking face", Replacement: "|U1F609"},
	{Name: "thinking face", Replacement: "|U1F914"},
	{Name: "neutral face", Replacement: "|U1F610"},
	{Name: "crying face", Replacement: "|U1F622"},
	{Name: "angry face", Replacement: "|U1F620"},
	{Name: "skull", Replacement: "|U1F480"},
	{Name: "ghost", Replacement: "|U1F47B"},
	{Name: "robot", Replacement: "|U1F916"},
	{Name: "thumbs up", Replacement: "|U1F44D"},
	{Name: "thumbs up: light skin tone", Replacement: "|U1F44D|U1F3FB"},
	{Name: "thumbs up: medium skin tone", Replacement: "|U1F44D|U1F3FD"},
	{Name: "thumbs up: dark skin tone", Replacement: "|U1F44D|U1F3FF"},
	{Name: "thumbs down", Replacement: "|U1F44E"},
	{Name: "waving hand", Replacement: "|U1F44B"},
	{Name: "clapping hands", Replacement: "|U1F44F"},
	{Name: "folded hands", Replacement: "|U1F64F"},
	{Name: "eyes", Replacement: "|U1F440"},
	{Name: "sun", Replacement: "|U2600|UFE0F"},
	{Name: "cloud", Replacement: "|U2601|UFE0F"},
	{Name: "snowflake", Replacement: "|U2744|UFE0F"},
	{Name: "high voltage", Replacement: "|U26A1"},
	{Name: "hot beverage", Replacement: "|U2615"},
	{Name: "beer mug", Replacement: "|U1F37A"},
	{Name: "pizza", Replacement: "|U1F355"},
	{Name: "dog face", Replacement: "|U1F436"},
	{Name: "cat face", Replacement: "|U1F431"},
	{Name: "penguin", Replacement: "|U1F427"},
	{Name: "globe showing europe-africa", Replacement: "|U1F30D"},
	{Name: "locked", Replacement: "|U1F512"},
	{Name: "unlocked", Replacement: "|U1F513"},
	{Name: "key", Replacement: "|U1F511"},
	{Name: "hammer and wrench", Replacement: "|U1F6E0|UFE0F"},
	{Name: "bug", Replacement: "|U1F41B"},
	{Name: "chequered flag", Replacement: "|U1F3C1"},
}

// Curated returns the hand picked entries
func Curated() []emoji.Entry {
	return append([]emoji.Entry(nil), curated...)
}

// Markup converts an emoji into |U directives, one per code point
func Markup(glyph string) string {
	out := strings.Builder{}
	for _, r := range glyph {
		fmt.Fprintf(&out, "|U%X", r)
	}

	return out.String()
}

// AliasName turns a gemoji style alias like ":thumbs_up:" into a description like "thumbs up"
func AliasName(alias string) string {
	return strings.ReplaceAll(strings.Trim(alias, ":"), "_", " ")
}

// FromAliases converts an alias to emoji map into entries, sorted by name so the table order is stable
func FromAliases(aliases map[string]string) []emoji.Entry {
	out := make([]emoji.Entry, 0, len(aliases))
	for alias, glyph := range aliases {
		name := AliasName(alias)
		if name == "" || glyph == "" {
			continue
		}

		out = append(out, emoji.Entry{Name: name, Replacement: Markup(glyph)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Default returns the curated entries followed by every alias enescakir/emoji knows. Curated names win when both
// define the same name
func Default() *emoji.Table {
	table := emoji.NewTable(curated...)

	var extra []emoji.Entry

	for _, e := range FromAliases(gemoji.Map()) {
		if _, exists := table.Lookup(e.Name); !exists {
			extra = append(extra, e)
		}
	}

	return table.Extend(extra...)
}
