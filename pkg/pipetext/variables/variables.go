// Package variables holds pipetext's named variables and the small grammar used to update them.
//
// Values are stored raw: whatever markup was assigned is kept as is, and rendered again every time it is read.
// A single Store is shared by every nested render in a session, so assignments made while rendering a variable or
// a repeat pattern are visible once that render returns.
package variables

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store is a set of named raw markup strings. It is safe for concurrent use
type Store struct {
	mu   sync.RWMutex
	vars map[string]string
}

// New creates an empty Store
func New() *Store {
	return &Store{vars: make(map[string]string)}
}

// Get returns the raw value stored under name
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.vars[name]

	return res, ok
}

// Set stores value under name, replacing anything already there
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	s.vars[name] = value
	s.mu.Unlock()
}

// Delete removes name from the store. It returns whether anything was removed
func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vars[name]; !exists {
		return false
	}

	delete(s.vars, name)

	return true
}

// Len returns the number of stored variables
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vars)
}

// Names returns the stored names, sorted
func (s *Store) Names() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.vars))

	for k := range s.vars {
		out = append(out, k)
	}
	s.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Snapshot returns a copy of every stored variable
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}

	return out
}

// Apply runs the given assignment against the store and returns the new value.
//
// = overwrites. += and -= do integer arithmetic when both the current value and the operand are numeric, and
// otherwise append the operand or remove its first occurrence. *= and /= always work on the leading integers of
// both sides. Dividing by zero is not checked and panics
func (s *Store) Apply(a Assignment) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.vars[a.Name]

	var res string

	switch a.Op {
	case Assign:
		res = a.Operand
	case Add:
		if IsNumeric(cur) && IsNumeric(a.Operand) {
			res = strconv.Itoa(LeadingInt(cur) + LeadingInt(a.Operand))
		} else {
			res = cur + a.Operand
		}
	case Sub:
		if IsNumeric(cur) && IsNumeric(a.Operand) {
			res = strconv.Itoa(LeadingInt(cur) - LeadingInt(a.Operand))
		} else {
			res = strings.Replace(cur, a.Operand, "", 1)
		}
	case Mul:
		res = strconv.Itoa(LeadingInt(cur) * LeadingInt(a.Operand))
	case Div:
		res = strconv.Itoa(floorDiv(LeadingInt(cur), LeadingInt(a.Operand)))
	}

	s.vars[a.Name] = res

	return res
}

// floorDiv rounds towards negative infinity. b == 0 panics
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

const maxIntDigits = 18

// LeadingInt parses the integer at the start of s, after any leading whitespace. Anything after the digits is
// ignored, and a string with no digits is 0
func LeadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	neg := false

	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && end < maxIntDigits && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	res, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	if neg {
		return -res
	}

	return res
}

// IsNumeric reports whether s is made of nothing but digits and spaces, with an optional leading '-'. The empty
// string is numeric
func IsNumeric(s string) bool {
	s = strings.TrimLeft(s, " ")
	s = strings.TrimPrefix(s, "-")

	for _, r := range s {
		if (r < '0' || r > '9') && r != ' ' {
			return false
		}
	}

	return true
}
