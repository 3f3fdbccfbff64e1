package tui

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when output is not an interactive terminal.
	ErrNotTerminal = errors.New("output is not a terminal")

	// ErrTerminalTooSmall is returned when the arena does not fit the terminal.
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// CheckTerminal verifies that fd is a terminal with room for a
// width x height screen.
func CheckTerminal(fd int, width, height int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}
	if w < width || h < height {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, width, height, w, h)
	}
	return nil
}
