package emojitable

import (
	"reflect"
	"testing"

	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
)

func TestMarkup(t *testing.T) {
	tests := []struct {
		name  string
		glyph string
		want  string
	}{
		{"single", "\u2714", "|U2714"},
		{"with selector", "\u2764\ufe0f", "|U2764|UFE0F"},
		{"skin tone", "\U0001F44D\U0001F3FD", "|U1F44D|U1F3FD"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Markup(tt.glyph); got != tt.want {
				t.Errorf("Markup() = %q, want %q", got, tt.want)
			}

			if got := emoji.Decode(Markup(tt.glyph)); got != tt.glyph {
				t.Errorf("Decode(Markup()) = %q, want %q", got, tt.glyph)
			}
		})
	}
}

func TestFromAliases(t *testing.T) {
	got := FromAliases(map[string]string{
		":thumbs_up:":  "\U0001F44D",
		":red_heart:":  "\u2764\ufe0f",
		"::":           "x",
		":no_glyph:":   "",
		":check_mark:": "\u2714",
	})

	want := []emoji.Entry{
		{Name: "check mark", Replacement: "|U2714"},
		{Name: "red heart", Replacement: "|U2764|UFE0F"},
		{Name: "thumbs up", Replacement: "|U1F44D"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromAliases() = %v, want %v", got, want)
	}
}

func TestDefault(t *testing.T) {
	table := Default()

	if table.Len() <= len(curated) {
		t.Fatalf("Default() has %d entries, expected more than the %d curated ones", table.Len(), len(curated))
	}

	names := table.Names()
	for i, e := range curated {
		if names[i] != e.Name {
			t.Fatalf("Default() entry %d = %q, want curated %q first", i, names[i], e.Name)
		}
	}

	if res, ok := emoji.NewResolver(table).Resolve("smi f w he e"); !ok || res != "|U1F60D" {
		t.Errorf("Resolve(smi f w he e) = %q, %v", res, ok)
	}
}
