package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakout returns the default configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded copy cannot be parsed.
func DefaultBreakout() Breakout {
	return Breakout{
		Arena: Arena{
			Width:  67,
			Height: 24,
		},
		Blocks: Blocks{
			Width:   17,
			Height:  4,
			Spacing: 0,
			Rows:    2,
			Cols:    4,
		},
		Paddle: Paddle{
			Width: 3,
			Row:   23,
		},
		Ball: Ball{
			StartX: 33,
			StartY: 22,
			DX:     1,
			DY:     -1,
		},
		Timing: Timing{
			FrameInterval: 30 * time.Millisecond,
			BallDelay:     4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
