// Package term runs the game in a plain synchronous loop over a
// character-cell display: draw, sleep, advance, poll the keyboard.
package term

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Display is a character-cell terminal the loop draws into.
type Display interface {
	// SetCell puts r at column x, row y.
	SetCell(x, y int, r rune, c core.Color)
	// Show makes everything set since the last Show visible.
	Show()
	// PollAction returns the key pressed since the last poll without
	// blocking. Quit wins over directions; among directions the most
	// recent one wins.
	PollAction() core.Action
	// Close restores the terminal.
	Close()
}

// Blit copies every cell of s to d.
func Blit(d Display, s *core.Screen) {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			d.SetCell(x, y, cell.Rune, cell.Color)
		}
	}
}
