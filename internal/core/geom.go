// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Area is an inclusive block of character cells: every (x, y) with
// MinX <= x <= MaxX and MinY <= y <= MaxY.
type Area struct {
	MinX, MinY int
	MaxX, MaxY int
}

// AreaAt returns the w x h cells whose top-left cell is (x, y).
func AreaAt(x, y, w, h int) Area {
	return Area{MinX: x, MinY: y, MaxX: x + w - 1, MaxY: y + h - 1}
}

// Cols returns the number of columns covered.
func (a Area) Cols() int {
	return a.MaxX - a.MinX + 1
}

// Rows returns the number of rows covered.
func (a Area) Rows() int {
	return a.MaxY - a.MinY + 1
}

// Contains reports whether (x, y) is one of the cells.
func (a Area) Contains(x, y int) bool {
	return x >= a.MinX && x <= a.MaxX && y >= a.MinY && y <= a.MaxY
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
