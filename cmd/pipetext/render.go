package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// write renders text to the output, streamed unless --buffered was given
func (a *app) write(text string) error {
	a.stats.Input(text)

	if *buffered {
		if _, err := io.WriteString(a.out, a.session.Render(text)); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}

		return nil
	}

	if err := a.session.Stream(a.out, text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

func (a *app) renderArgs(text string) error {
	if !*noNewline {
		text += "\n"
	}

	return a.write(text)
}

func (a *app) renderFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	return a.write(string(data))
}

// renderReader renders r a line at a time, so output keeps up with slow producers. Directives cannot span lines
// because anything left open is flushed at the end of each one
func (a *app) renderReader(r io.Reader) error {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if werr := a.write(line); werr != nil {
				return werr
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("could not read input: %w", err)
		}
	}
}
