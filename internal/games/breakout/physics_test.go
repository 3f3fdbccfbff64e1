package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// newTestGame returns a game on the default 67x24 layout: 2x4 blocks of
// 17x4 cells, paddle of width 3 at x=32 on row 23.
func newTestGame() *Game {
	return New(config.DefaultBreakout())
}

// move performs one ball move outside the frame cadence.
func (g *Game) move() MoveResult {
	return MoveBall(&g.ball, g.paddle, g.grid, g.sprites, g.cfg.Arena)
}

// breakAll breaks every block and rebuilds the sprites.
func (g *Game) breakAll() {
	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			g.grid.Break(row, col)
		}
	}
	g.sprites.Rebuild(g.grid)
}

func TestWallReflectsX(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		dx     int
	}{
		{"left wall", 1, -1},
		{"right wall", 66, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.ball = Ball{X: tc.startX, Y: 15, DX: tc.dx, DY: 1}

			res := g.move()

			if g.ball.DX != -tc.dx {
				t.Errorf("DX = %d, expected %d", g.ball.DX, -tc.dx)
			}
			if g.ball.X != tc.startX {
				t.Errorf("X = %d, expected ball to stay at %d", g.ball.X, tc.startX)
			}
			if g.ball.Y != 16 {
				t.Errorf("Y = %d, expected 16 (Y axis moves independently)", g.ball.Y)
			}
			if res.X != CollisionWall || res.Y != CollisionNone {
				t.Errorf("collisions = (%s, %s), expected (wall, none)", res.X, res.Y)
			}
		})
	}
}

func TestCeilingReflectsY(t *testing.T) {
	g := newTestGame()
	g.breakAll()
	g.ball = Ball{X: 40, Y: 1, DX: 1, DY: -1}

	res := g.move()

	if g.ball.DY != 1 {
		t.Errorf("DY = %d, expected 1", g.ball.DY)
	}
	if g.ball.X != 41 || g.ball.Y != 1 {
		t.Errorf("ball at (%d, %d), expected (41, 1)", g.ball.X, g.ball.Y)
	}
	if res.Y != CollisionWall {
		t.Errorf("Y collision = %s, expected wall", res.Y)
	}
}

func TestArenaCornerReflectsBothAxes(t *testing.T) {
	g := newTestGame()
	g.breakAll()
	g.ball = Ball{X: 1, Y: 1, DX: -1, DY: -1}

	g.move()

	if g.ball != (Ball{X: 1, Y: 1, DX: 1, DY: 1}) {
		t.Errorf("ball = %+v, expected to stay at (1, 1) heading (1, 1)", g.ball)
	}
}

func TestBlockBottomEdgeBreaks(t *testing.T) {
	g := newTestGame()
	// Directly below the bottom edge of block (1, 1), moving up
	g.ball = Ball{X: 25, Y: 8, DX: 1, DY: -1}

	res := g.move()

	if !g.grid.Broken(1, 1) {
		t.Error("block (1, 1) should be broken")
	}
	if g.ball.DY != 1 {
		t.Errorf("DY = %d, expected 1", g.ball.DY)
	}
	if g.ball.X != 26 || g.ball.Y != 8 {
		t.Errorf("ball at (%d, %d), expected (26, 8)", g.ball.X, g.ball.Y)
	}
	if g.grid.AllBroken() {
		t.Error("game should not be won with blocks remaining")
	}
	if g.grid.Remaining() != 7 {
		t.Errorf("Remaining() = %d, expected 7", g.grid.Remaining())
	}
	if res.Y != CollisionBlock || len(res.Broken) != 1 || res.Broken[0] != (BlockRef{Row: 1, Col: 1}) {
		t.Errorf("result = %+v, expected one block hit on Y at (1, 1)", res)
	}
}

func TestBlockSideEdgeBreaks(t *testing.T) {
	cfg := config.DefaultBreakout()
	cfg.Blocks = config.Blocks{Width: 17, Height: 4, Spacing: 1, Rows: 2, Cols: 3}
	g := New(cfg)

	// In the gap column between blocks (1, 0) and (1, 1), moving right
	g.ball = Ball{X: 17, Y: 6, DX: 1, DY: 1}

	res := g.move()

	if !g.grid.Broken(1, 1) {
		t.Error("block (1, 1) should be broken")
	}
	if g.ball.DX != -1 {
		t.Errorf("DX = %d, expected -1", g.ball.DX)
	}
	if g.ball.X != 17 {
		t.Errorf("X = %d, expected ball to stay at 17", g.ball.X)
	}
	// The same cell is not a horizontal edge, so Y moves on
	if g.ball.Y != 7 || g.ball.DY != 1 {
		t.Errorf("ball Y = %d heading %d, expected 7 heading 1", g.ball.Y, g.ball.DY)
	}
	if res.X != CollisionBlock || res.Y != CollisionNone {
		t.Errorf("collisions = (%s, %s), expected (block, none)", res.X, res.Y)
	}
}

func TestCornerGlyphPassesThrough(t *testing.T) {
	g := newTestGame()
	// Heading for the bottom-left corner of block (1, 1) at (17, 7)
	g.ball = Ball{X: 18, Y: 8, DX: -1, DY: -1}

	res := g.move()

	if g.ball != (Ball{X: 17, Y: 7, DX: -1, DY: -1}) {
		t.Errorf("ball = %+v, expected to enter the corner cell unchanged", g.ball)
	}
	if g.grid.Remaining() != 8 {
		t.Errorf("Remaining() = %d, corner hit should not break anything", g.grid.Remaining())
	}
	if res.X != CollisionNone || res.Y != CollisionNone {
		t.Errorf("collisions = (%s, %s), expected none", res.X, res.Y)
	}
}

func TestBrokenBlockPassesThrough(t *testing.T) {
	tests := []struct {
		name    string
		rebuild bool
	}{
		{"sprites rebuilt", true},
		{"sprites stale", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.grid.Break(1, 1)
			if tc.rebuild {
				g.sprites.Rebuild(g.grid)
			}
			g.ball = Ball{X: 25, Y: 8, DX: 1, DY: -1}

			res := g.move()

			if g.ball != (Ball{X: 26, Y: 7, DX: 1, DY: -1}) {
				t.Errorf("ball = %+v, expected to pass into the broken block", g.ball)
			}
			if len(res.Broken) != 0 {
				t.Errorf("broken = %v, expected nothing", res.Broken)
			}
			if g.grid.Remaining() != 7 {
				t.Errorf("Remaining() = %d, expected 7", g.grid.Remaining())
			}
		})
	}
}

func TestPaddleSpanBoundaries(t *testing.T) {
	// Paddle at x=32, width 3: deflecting span is [32, 35] on row 23
	tests := []struct {
		name    string
		ballX   int
		dx      int
		bounces bool
	}{
		{"left end moving right", 31, 1, true},
		{"right end moving right", 34, 1, true},
		{"just past right end", 35, 1, false},
		{"just before left end", 30, 1, false},
		{"right end moving left", 36, -1, true},
		{"just past left end moving left", 32, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.ball = Ball{X: tc.ballX, Y: 22, DX: tc.dx, DY: 1}

			res := g.move()

			if tc.bounces {
				if g.ball.DY != -1 || g.ball.Y != 22 {
					t.Errorf("ball = %+v, expected bounce at row 22", g.ball)
				}
				if res.Y != CollisionPaddle {
					t.Errorf("Y collision = %s, expected paddle", res.Y)
				}
				return
			}
			if g.ball.DY != 1 || g.ball.Y != 23 {
				t.Errorf("ball = %+v, expected to pass the paddle row", g.ball)
			}
		})
	}
}

func TestMissedBallIsLost(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: 10, Y: 22, DX: 1, DY: 1}

	// Row 23 beside the paddle, then the bottom row, then out
	for i, expectedY := range []int{23, 24} {
		res := g.move()
		if res.Lost {
			t.Fatalf("move %d: lost too early", i)
		}
		if g.ball.Y != expectedY {
			t.Fatalf("move %d: Y = %d, expected %d", i, g.ball.Y, expectedY)
		}
	}

	res := g.move()
	if !res.Lost {
		t.Error("ball below the arena should be lost")
	}
	if g.ball.Y != 24 {
		t.Errorf("Y = %d, lost ball should not move", g.ball.Y)
	}
}
