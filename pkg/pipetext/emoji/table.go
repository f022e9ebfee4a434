// Package emoji resolves emoji descriptions, exact or abbreviated, against an ordered table supplied by the caller.
//
// Replacements in the table are written as one or more unicode directives, for example "|U1F60D" or
// "|U+1F44D|U+1F3FD". The package never owns a table itself: embedders build one with NewTable and share it between
// as many Resolvers as they like. Tables are never modified after construction.
package emoji

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is a single name -> replacement mapping
type Entry struct {
	Name        string `toml:"name"`
	Replacement string `toml:"replacement"`
}

// Table is an immutable, ordered set of Entries. The order is significant, as it decides ties during abbreviated
// lookups
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable creates a Table from the given entries. When a name is repeated, the entry keeps the position of the
// first occurrence and the replacement of the last
func NewTable(entries ...Entry) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	t.add(entries)

	return t
}

func (t *Table) add(entries []Entry) {
	for _, e := range entries {
		if idx, exists := t.index[e.Name]; exists {
			t.entries[idx].Replacement = e.Replacement
			continue
		}

		t.index[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}
}

// Extend returns a new Table containing everything in t followed by entries
func (t *Table) Extend(entries ...Entry) *Table {
	out := NewTable(t.Entries()...)
	out.add(entries)

	return out
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Lookup returns the replacement for the exact name given
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	if idx, ok := t.index[name]; ok {
		return t.entries[idx].Replacement, true
	}

	return "", false
}

// Entries returns a copy of the table's entries in order
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Names returns the names in the table, in order
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}

	return out
}

// Search does a case insensitive fuzzy search over the table's names and returns at most limit entries, closest
// first. A limit of zero or less returns every match
func (t *Table) Search(query string, limit int) []Entry {
	if t.Len() == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(query, t.Names())
	sort.Stable(ranks)

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}

	out := make([]Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, t.entries[r.OriginalIndex])
	}

	return out
}
