// Package config provides YAML-based configuration for the breakout game.
// Every arena and block dimension is a runtime parameter; the embedded
// defaults reproduce the classic 67x24 layout.
package config

import "time"

// Breakout contains all configuration for the game.
type Breakout struct {
	Arena  Arena  `yaml:"arena"`
	Blocks Blocks `yaml:"blocks"`
	Paddle Paddle `yaml:"paddle"`
	Ball   Ball   `yaml:"ball"`
	Timing Timing `yaml:"timing"`
}

// Arena defines the playfield bounds. The border occupies column 0,
// column Width and row 0; the ball is lost once it moves below row Height.
type Arena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Blocks defines the block grid layout, anchored at the top-left corner.
type Blocks struct {
	Width   int `yaml:"width"`   // Block width in cells
	Height  int `yaml:"height"`  // Block height in cells
	Spacing int `yaml:"spacing"` // Empty cells between neighbouring blocks
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
}

// Paddle defines the player's paddle.
type Paddle struct {
	Width int `yaml:"width"` // Number of paddle glyphs
	Row   int `yaml:"row"`   // Fixed row the paddle moves along
}

// Ball defines the ball's starting cell and direction.
type Ball struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	DX     int `yaml:"dx"` // -1 or +1
	DY     int `yaml:"dy"` // -1 or +1
}

// Timing defines frame pacing and ball speed.
type Timing struct {
	FrameInterval time.Duration `yaml:"frame_interval"` // Sleep between frames
	BallDelay     int           `yaml:"ball_delay"`     // Frames per ball move
}

// ScreenSize returns the number of character cells needed to draw the arena,
// border included.
func (c Breakout) ScreenSize() (width, height int) {
	return c.Arena.Width + 1, c.Arena.Height + 1
}

// PaddleMaxX returns the rightmost position the paddle may reach.
func (c Breakout) PaddleMaxX() int {
	return c.Arena.Width - c.Paddle.Width - 1
}
