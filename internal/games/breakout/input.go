package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ApplyInput returns the paddle position after one key press.
// The paddle moves one cell and stays within [1, cfg.PaddleMaxX()];
// anything that is not a direction leaves it where it is.
func ApplyInput(paddleX int, a core.Action, cfg config.Breakout) int {
	switch a {
	case core.ActionLeft:
		if paddleX > 1 {
			paddleX--
		}
	case core.ActionRight:
		if paddleX < cfg.PaddleMaxX() {
			paddleX++
		}
	}
	return paddleX
}
