// Package terminal answers questions about the terminal pipetext is writing to
package terminal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Sizes used when the output is not a terminal and the environment does not say otherwise
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is a terminal, including cygwin and msys ones
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SizeProvider reports the size of the terminal behind a file. It satisfies pipetext.SizeProvider
type SizeProvider struct {
	file   *os.File
	getenv func(string) string
}

// NewSizeProvider creates a SizeProvider for f
func NewSizeProvider(f *os.File) *SizeProvider {
	return &SizeProvider{file: f, getenv: os.Getenv}
}

// Size returns the terminal's width and height. When the file is not a terminal the COLUMNS and LINES environment
// variables are used, and failing those DefaultWidth and DefaultHeight
func (s *SizeProvider) Size() (int, int, error) {
	if !IsTerminal(s.file) {
		return s.fromEnv("COLUMNS", DefaultWidth), s.fromEnv("LINES", DefaultHeight), nil
	}

	width, height, err := term.GetSize(int(s.file.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("could not get size of %s: %w", s.file.Name(), err)
	}

	return width, height, nil
}

func (s *SizeProvider) fromEnv(name string, fallback int) int {
	res, err := strconv.Atoi(s.getenv(name))
	if err != nil || res <= 0 {
		return fallback
	}

	return res
}
