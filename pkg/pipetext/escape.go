package pipetext

import "strings"

var escapes = map[rune]string{
	'a': "\a",
	'b': "\b",
	'e': "\x1b",
	'f': "\f",
	'n': "\n",
	'r': "\r",
	't': "\t",
	'v': "\v",
	'~': "~",
	'(': "(",
	')': ")",
}

// unescape returns what "\r" stands for. Unknown escapes keep their backslash
func unescape(r rune) string {
	if res, ok := escapes[r]; ok {
		return res
	}

	return "\\" + string(r)
}

var escapeReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(escapes)*2)
	for r, res := range escapes {
		pairs = append(pairs, "\\"+string(r), res)
	}

	return strings.NewReplacer(pairs...)
}()

// unescapeAll resolves every known escape in s, used on variable values before they are rendered
func unescapeAll(s string) string {
	return escapeReplacer.Replace(s)
}

var pipeEscaper = strings.NewReplacer("|", "||")

// Escape doubles every '|' in s so that it renders as plain text. '&' is left alone, it is only special in
// ampersand mode
func Escape(s string) string {
	return pipeEscaper.Replace(s)
}
