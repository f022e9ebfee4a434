package strip

import (
	"bytes"
	"testing"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "nothing here", want: "nothing here"},
		{name: "sgr", in: "\x1b[0;31mred\x1b[0m", want: "red"},
		{name: "true colour", in: "\x1b[38;2;255;0;0mx", want: "x"},
		{name: "cursor", in: "a\x1b[?25lb\x1b[3;4Hc", want: "abc"},
		{name: "bell", in: "ding\a", want: "ding"},
		{name: "two byte escape", in: "a\x1bcb", want: "ab"},
		{name: "unicode kept", in: "\x1b[1m┌─┐ ✔\x1b[22m", want: "┌─┐ ✔"},
		{name: "whitespace kept", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "unterminated", in: "a\x1b[12", want: "a"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriterSplitSequences(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)

	for _, part := range []string{"a\x1b", "[0;3", "1mb", "\x1b[0m", "c"} {
		n, err := w.Write([]byte(part))
		if err != nil {
			t.Fatal(err)
		}

		if n != len(part) {
			t.Errorf("Write(%q) = %d, want %d", part, n, len(part))
		}
	}

	if buf.String() != "abc" {
		t.Errorf("Writer wrote %q, want %q", buf.String(), "abc")
	}
}

func TestStreamedRender(t *testing.T) {
	var buf bytes.Buffer

	s := pipetext.NewSession(pipetext.DefaultOptions())
	if err := s.Stream(NewWriter(&buf), "|-[|3-]|O |Rred|n |#ff0000rgb|[bell]"); err != nil {
		t.Fatal(err)
	}

	if want := "┌───┐ red rgb"; buf.String() != want {
		t.Errorf("stripped render = %q, want %q", buf.String(), want)
	}
}
