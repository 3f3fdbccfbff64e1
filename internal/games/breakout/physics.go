package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball on the character grid.
type Ball struct {
	X, Y   int // Cell position
	DX, DY int // Direction per move, -1 or +1
}

// Next returns the cell the ball will try to enter on its next move.
func (b *Ball) Next() (x, y int) {
	return b.X + b.DX, b.Y + b.DY
}

// BounceX reverses horizontal direction.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical direction.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle represents the player's paddle.
type Paddle struct {
	X     int // Left edge
	Row   int // Fixed row near the bottom
	Width int // Number of glyphs drawn
}

// Span returns the cells that deflect the ball. It reaches one cell past
// the last paddle glyph.
func (p Paddle) Span() core.Area {
	return core.Area{MinX: p.X, MinY: p.Row, MaxX: p.X + p.Width, MaxY: p.Row}
}

// Deflects reports whether a ball entering (x, y) bounces off the paddle.
func (p Paddle) Deflects(x, y int) bool {
	return p.Span().Contains(x, y)
}

// Collision identifies what the ball hit on one axis during a move.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionPaddle
	CollisionBlock
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionPaddle:
		return "paddle"
	case CollisionBlock:
		return "block"
	default:
		return "unknown"
	}
}

// BlockRef names a block in the grid.
type BlockRef struct {
	Row, Col int
}

// MoveResult describes one ball move.
type MoveResult struct {
	X, Y   Collision  // What stopped the ball on each axis
	Broken []BlockRef // Blocks broken by this move, at most one per axis
	Lost   bool       // Ball fell below the arena
}

// MoveBall advances the ball by one step and resolves collisions.
// The axes are resolved independently against the same tentative cell:
// a collision on an axis reverses that direction and keeps the ball in
// place on that axis for this move.
func MoveBall(ball *Ball, paddle Paddle, grid *Grid, sprites *SpriteMap, arena config.Arena) MoveResult {
	var res MoveResult
	nextX, nextY := ball.Next()

	// X axis
	switch {
	case nextX < 1 || nextX > arena.Width-1:
		ball.BounceX()
		res.X = CollisionWall
	default:
		if cell, ok := blockEdgeAt(sprites, grid, nextY, nextX, IsVerticalEdge); ok {
			ball.BounceX()
			grid.Break(cell.Row, cell.Col)
			res.X = CollisionBlock
			res.Broken = append(res.Broken, BlockRef{Row: cell.Row, Col: cell.Col})
		} else {
			ball.X = nextX
		}
	}

	// Y axis
	if nextY <= 0 {
		ball.BounceY()
		res.Y = CollisionWall
		return res
	}
	if paddle.Deflects(nextX, nextY) {
		ball.BounceY()
		res.Y = CollisionPaddle
		return res
	}
	if cell, ok := blockEdgeAt(sprites, grid, nextY, nextX, IsHorizontalEdge); ok {
		ball.BounceY()
		grid.Break(cell.Row, cell.Col)
		res.Y = CollisionBlock
		res.Broken = append(res.Broken, BlockRef{Row: cell.Row, Col: cell.Col})
		return res
	}
	if nextY > arena.Height {
		res.Lost = true
		return res
	}
	ball.Y = nextY
	return res
}

// blockEdgeAt returns the sprite cell at (y, x) if it is an edge glyph of
// an intact block. The grid is consulted as well as the glyph because the
// sprite map is only rebuilt between frames.
func blockEdgeAt(sprites *SpriteMap, grid *Grid, y, x int, isEdge func(rune) bool) (SpriteCell, bool) {
	cell, ok := sprites.At(y, x)
	if !ok || !cell.HasOwner {
		return SpriteCell{}, false
	}
	if grid.Broken(cell.Row, cell.Col) || !isEdge(cell.Glyph) {
		return SpriteCell{}, false
	}
	return cell, true
}
