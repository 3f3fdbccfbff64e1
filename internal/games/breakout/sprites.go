package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Block glyphs
const (
	GlyphCornerTop    = '.'
	GlyphCornerBottom = '\''
	GlyphHorizontal   = '-'
	GlyphVertical     = '|'
	GlyphInterior     = ' '
	GlyphCleared      = rune(0) // Nothing is drawn
)

// SpriteCell is one drawable character of a block.
type SpriteCell struct {
	Glyph rune

	// Owner is the grid block this cell belongs to. Cells in the gaps
	// between spaced blocks have no owner.
	Row, Col int
	HasOwner bool
}

// SpriteMap is the character-level projection of the Grid. It holds no
// state of its own: Rebuild derives every glyph from the grid.
type SpriteMap struct {
	layout config.Blocks
	width  int
	height int
	cells  [][]SpriteCell // [y][x]
}

// NewSpriteMap allocates a sprite map for the given block layout and
// records which block owns each cell. All glyphs start cleared.
func NewSpriteMap(layout config.Blocks) *SpriteMap {
	pitchX := layout.Width + layout.Spacing
	pitchY := layout.Height + layout.Spacing

	s := &SpriteMap{
		layout: layout,
		width:  layout.Cols*pitchX - layout.Spacing,
		height: layout.Rows*pitchY - layout.Spacing,
	}

	s.cells = make([][]SpriteCell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]SpriteCell, s.width)
		for x := range s.cells[y] {
			if y%pitchY >= layout.Height || x%pitchX >= layout.Width {
				continue // Spacing gap
			}
			s.cells[y][x] = SpriteCell{
				Row:      y / pitchY,
				Col:      x / pitchX,
				HasOwner: true,
			}
		}
	}
	return s
}

// Width returns the number of character columns covered by blocks.
func (s *SpriteMap) Width() int {
	return s.width
}

// Height returns the number of character rows covered by blocks.
func (s *SpriteMap) Height() int {
	return s.height
}

// BlockArea returns the character cells covered by the block at (row, col).
func (s *SpriteMap) BlockArea(row, col int) core.Area {
	return core.AreaAt(
		col*(s.layout.Width+s.layout.Spacing),
		row*(s.layout.Height+s.layout.Spacing),
		s.layout.Width,
		s.layout.Height,
	)
}

// Rebuild redraws every block from the grid: intact blocks get their full
// shape, broken blocks are cleared.
func (s *SpriteMap) Rebuild(grid *Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			a := s.BlockArea(row, col)
			broken := grid.Broken(row, col)

			for i := range a.Rows() {
				for j := range a.Cols() {
					glyph := GlyphCleared
					if !broken {
						glyph = s.shape(i, j)
					}
					s.cells[a.MinY+i][a.MinX+j].Glyph = glyph
				}
			}
		}
	}
}

// shape returns the glyph at offset (i, j) inside an intact block.
func (s *SpriteMap) shape(i, j int) rune {
	side := j == 0 || j == s.layout.Width-1

	switch {
	case i == 0 && side:
		return GlyphCornerTop
	case i == s.layout.Height-1 && side:
		return GlyphCornerBottom
	case i == 0 || i == s.layout.Height-1:
		return GlyphHorizontal
	case side:
		return GlyphVertical
	default:
		return GlyphInterior
	}
}

// At returns the sprite cell at character position (y, x) and whether the
// position lies inside the sprite map.
func (s *SpriteMap) At(y, x int) (SpriteCell, bool) {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return SpriteCell{}, false
	}
	return s.cells[y][x], true
}

// Draw writes every visible glyph to dst. Cleared cells are skipped so
// whatever is underneath stays visible.
func (s *SpriteMap) Draw(dst *core.Screen) {
	for y := range s.cells {
		for x, cell := range s.cells[y] {
			if cell.Glyph == GlyphCleared {
				continue
			}
			dst.SetColored(x, y, cell.Glyph, core.BlockColor(cell.Row))
		}
	}
}

// IsVerticalEdge reports whether glyph is a breakable side edge.
func IsVerticalEdge(glyph rune) bool {
	return glyph == GlyphVertical
}

// IsHorizontalEdge reports whether glyph is a breakable top or bottom edge.
func IsHorizontalEdge(glyph rune) bool {
	return glyph == GlyphHorizontal
}
