package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SourceEmbedded names the built-in configuration in log output.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> embedded default -> hardcoded default.
// Fields missing from a custom file keep their default values.
// Returns the config and the source it was read from.
func Load(customPath string) (Breakout, string, error) {
	cfg := DefaultBreakout()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakout(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Breakout) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable arena.
func (c Breakout) Validate() error {
	switch {
	case c.Arena.Width < 3 || c.Arena.Height < 3:
		return fmt.Errorf("%w: arena must be at least 3x3, got %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Blocks.Width < 2 || c.Blocks.Height < 2:
		return fmt.Errorf("%w: blocks must be at least 2x2, got %dx%d", ErrInvalid, c.Blocks.Width, c.Blocks.Height)
	case c.Blocks.Rows < 1 || c.Blocks.Cols < 1:
		return fmt.Errorf("%w: block grid must have at least one row and column, got %dx%d", ErrInvalid, c.Blocks.Rows, c.Blocks.Cols)
	case c.Blocks.Spacing < 0:
		return fmt.Errorf("%w: block spacing must not be negative, got %d", ErrInvalid, c.Blocks.Spacing)
	case c.Paddle.Width < 1:
		return fmt.Errorf("%w: paddle width must be positive, got %d", ErrInvalid, c.Paddle.Width)
	case c.PaddleMaxX() < 1:
		return fmt.Errorf("%w: paddle of width %d does not fit arena width %d", ErrInvalid, c.Paddle.Width, c.Arena.Width)
	case c.Paddle.Row < 1 || c.Paddle.Row > c.Arena.Height:
		return fmt.Errorf("%w: paddle row %d outside [1, %d]", ErrInvalid, c.Paddle.Row, c.Arena.Height)
	case c.Ball.StartX < 1 || c.Ball.StartX > c.Arena.Width-1:
		return fmt.Errorf("%w: ball start x %d outside [1, %d]", ErrInvalid, c.Ball.StartX, c.Arena.Width-1)
	case c.Ball.StartY < 1 || c.Ball.StartY > c.Arena.Height:
		return fmt.Errorf("%w: ball start y %d outside [1, %d]", ErrInvalid, c.Ball.StartY, c.Arena.Height)
	case !unitStep(c.Ball.DX) || !unitStep(c.Ball.DY):
		return fmt.Errorf("%w: ball direction must be -1 or +1 on both axes, got (%d, %d)", ErrInvalid, c.Ball.DX, c.Ball.DY)
	case c.Timing.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval must be positive, got %s", ErrInvalid, c.Timing.FrameInterval)
	case c.Timing.BallDelay < 1:
		return fmt.Errorf("%w: ball delay must be at least 1 frame, got %d", ErrInvalid, c.Timing.BallDelay)
	}
	return nil
}

func unitStep(v int) bool {
	return v == 1 || v == -1
}
