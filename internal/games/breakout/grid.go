// Package breakout implements a single-screen brick breaker on a character grid.
package breakout

// Grid tracks the broken state of every block. It is created once with
// all blocks intact and never changes size.
type Grid struct {
	rows   int
	cols   int
	broken []bool // row-major: row*cols + col
}

// NewGrid creates a rows x cols grid of unbroken blocks.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:   rows,
		cols:   cols,
		broken: make([]bool, rows*cols),
	}
}

// Rows returns the number of block rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of block columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) names a block in the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Broken reports whether the block at (row, col) is broken.
// Cells outside the grid report false.
func (g *Grid) Broken(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.broken[row*g.cols+col]
}

// Break marks the block at (row, col) as broken. Breaking twice is a no-op.
func (g *Grid) Break(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	g.broken[row*g.cols+col] = true
}

// Remaining returns the number of unbroken blocks.
func (g *Grid) Remaining() int {
	n := 0
	for _, b := range g.broken {
		if !b {
			n++
		}
	}
	return n
}

// AllBroken reports whether every block has been broken.
func (g *Grid) AllBroken() bool {
	for _, b := range g.broken {
		if !b {
			return false
		}
	}
	return true
}
