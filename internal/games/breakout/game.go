package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = 'o'
	PaddleChar   = '-'
	BorderCorner = '.'
	BorderHoriz  = '-'
	BorderVert   = '|'
)

// Outcome is the state of a game: still running, or finished one way or the other.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon             // Every block broken
	OutcomeLost            // Ball fell past the paddle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Done reports whether the outcome is terminal.
func (o Outcome) Done() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Game owns the complete simulation state and drives it frame by frame.
//
// One frame is: Render, wait, Advance, then ApplyInput with whatever key
// was pressed. The ball only moves every Timing.BallDelay frames while the
// paddle may move every frame.
type Game struct {
	cfg config.Breakout

	grid    *Grid
	sprites *SpriteMap
	ball    Ball
	paddle  Paddle

	outcome     Outcome
	frames      int
	moveCounter int        // Frames since the ball last moved
	lastMove    MoveResult // Result of the most recent ball move this frame
}

// New creates a game ready to play. cfg must be valid.
func New(cfg config.Breakout) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset puts every block back, centres the paddle and returns the ball to
// its starting cell.
func (g *Game) Reset() {
	g.grid = NewGrid(g.cfg.Blocks.Rows, g.cfg.Blocks.Cols)
	g.sprites = NewSpriteMap(g.cfg.Blocks)
	g.sprites.Rebuild(g.grid)

	g.ball = Ball{
		X:  g.cfg.Ball.StartX,
		Y:  g.cfg.Ball.StartY,
		DX: g.cfg.Ball.DX,
		DY: g.cfg.Ball.DY,
	}
	g.paddle = Paddle{
		X:     core.Clamp((g.cfg.Arena.Width-g.cfg.Paddle.Width)/2, 1, g.cfg.PaddleMaxX()),
		Row:   g.cfg.Paddle.Row,
		Width: g.cfg.Paddle.Width,
	}

	g.outcome = OutcomePlaying
	g.frames = 0
	g.moveCounter = 0
	g.lastMove = MoveResult{}
}

// Advance runs the simulation part of one frame: it moves the ball when
// enough frames have passed and checks whether the game is over.
// Once the game is over Advance does nothing.
func (g *Game) Advance() Outcome {
	if g.outcome.Done() {
		return g.outcome
	}

	g.frames++
	g.moveCounter++
	g.lastMove = MoveResult{}

	if g.moveCounter >= g.cfg.Timing.BallDelay {
		g.lastMove = MoveBall(&g.ball, g.paddle, g.grid, g.sprites, g.cfg.Arena)
		g.moveCounter = 0

		if g.lastMove.Lost {
			g.outcome = OutcomeLost
			return g.outcome
		}
	}

	if g.grid.AllBroken() {
		g.outcome = OutcomeWon
	}
	return g.outcome
}

// ApplyInput moves the paddle for a key pressed during this frame.
func (g *Game) ApplyInput(a core.Action) {
	if g.outcome.Done() {
		return
	}
	g.paddle.X = ApplyInput(g.paddle.X, a, g.cfg)
}

// Frame advances the simulation and, if the game is still running,
// applies the polled input.
func (g *Game) Frame(a core.Action) Outcome {
	if g.Advance().Done() {
		return g.outcome
	}
	g.ApplyInput(a)
	return g.outcome
}

// Render draws the arena, blocks, ball and paddle. Block sprites are
// rebuilt from the grid first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sprites.Rebuild(g.grid)

	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height

	// Ceiling
	dst.SetColored(0, 0, BorderCorner, core.ColorBorder)
	dst.Fill(core.AreaAt(1, 0, w-1, 1), BorderHoriz, core.ColorBorder)
	dst.SetColored(w, 0, BorderCorner, core.ColorBorder)

	// Walls
	dst.Fill(core.AreaAt(0, 1, 1, h), BorderVert, core.ColorBorder)
	dst.Fill(core.AreaAt(w, 1, 1, h), BorderVert, core.ColorBorder)

	// Blocks overlap the ceiling and left wall
	g.sprites.Draw(dst)

	dst.SetColored(g.ball.X, g.ball.Y, BallChar, core.ColorBall)
	dst.Fill(core.AreaAt(g.paddle.X, g.paddle.Row, g.paddle.Width, 1), PaddleChar, core.ColorPaddle)
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Grid returns the block grid.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Sprites returns the block sprite map.
func (g *Game) Sprites() *SpriteMap {
	return g.sprites
}

// Frames returns the number of frames advanced since the last reset.
func (g *Game) Frames() int {
	return g.frames
}

// LastMove returns the ball move made during the latest frame.
// It is empty when the ball did not move.
func (g *Game) LastMove() MoveResult {
	return g.lastMove
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Breakout {
	return g.cfg
}
