package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestSpriteMapSize(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)

	if s.Width() != 68 || s.Height() != 8 {
		t.Errorf("sprite map = %dx%d, expected 68x8", s.Width(), s.Height())
	}
}

func TestSpriteBlockShape(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)
	s.Rebuild(NewGrid(2, 4))

	tests := []struct {
		name     string
		y, x     int
		expected rune
	}{
		{"top-left corner", 0, 0, GlyphCornerTop},
		{"top-right corner", 0, 16, GlyphCornerTop},
		{"top edge", 0, 8, GlyphHorizontal},
		{"bottom-left corner", 3, 0, GlyphCornerBottom},
		{"bottom-right corner", 3, 16, GlyphCornerBottom},
		{"bottom edge", 3, 5, GlyphHorizontal},
		{"left side", 1, 0, GlyphVertical},
		{"right side", 2, 16, GlyphVertical},
		{"interior", 1, 5, GlyphInterior},
		{"next block left side", 6, 17, GlyphVertical},
		{"last block right corner", 7, 67, GlyphCornerBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, ok := s.At(tc.y, tc.x)
			if !ok {
				t.Fatalf("At(%d, %d) outside sprite map", tc.y, tc.x)
			}
			if cell.Glyph != tc.expected {
				t.Errorf("At(%d, %d).Glyph = %q, expected %q", tc.y, tc.x, cell.Glyph, tc.expected)
			}
		})
	}
}

func TestSpriteOwners(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)

	tests := []struct {
		y, x     int
		row, col int
	}{
		{0, 0, 0, 0},
		{3, 16, 0, 0},
		{0, 17, 0, 1},
		{5, 20, 1, 1},
		{7, 67, 1, 3},
	}

	for _, tc := range tests {
		cell, ok := s.At(tc.y, tc.x)
		if !ok || !cell.HasOwner {
			t.Errorf("At(%d, %d) should be owned", tc.y, tc.x)
			continue
		}
		if cell.Row != tc.row || cell.Col != tc.col {
			t.Errorf("At(%d, %d) owner = (%d, %d), expected (%d, %d)", tc.y, tc.x, cell.Row, cell.Col, tc.row, tc.col)
		}
	}

	for _, p := range [][2]int{{8, 0}, {0, 68}, {-1, 0}, {0, -1}} {
		if _, ok := s.At(p[0], p[1]); ok {
			t.Errorf("At(%d, %d) should be outside the sprite map", p[0], p[1])
		}
	}
}

func TestSpriteBrokenBlockCleared(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)
	grid := NewGrid(2, 4)
	grid.Break(1, 2)
	s.Rebuild(grid)

	a := s.BlockArea(1, 2)
	for y := a.MinY; y <= a.MaxY; y++ {
		for x := a.MinX; x <= a.MaxX; x++ {
			cell, _ := s.At(y, x)
			if cell.Glyph != GlyphCleared {
				t.Errorf("At(%d, %d).Glyph = %q, expected cleared", y, x, cell.Glyph)
			}
			if cell.Row != 1 || cell.Col != 2 {
				t.Errorf("cleared cell (%d, %d) lost its owner", y, x)
			}
		}
	}

	// Neighbours stay intact
	if cell, _ := s.At(4, a.MinX-1); cell.Glyph != GlyphCornerTop {
		t.Errorf("neighbouring block corner = %q, expected %q", cell.Glyph, GlyphCornerTop)
	}
}

func TestSpriteRebuildRestoresShape(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)
	grid := NewGrid(2, 4)
	s.Rebuild(grid)
	s.Rebuild(grid)

	cell, _ := s.At(0, 0)
	if cell.Glyph != GlyphCornerTop {
		t.Errorf("rebuilding twice changed glyph to %q", cell.Glyph)
	}
}

func TestSpriteSpacing(t *testing.T) {
	layout := config.Blocks{Width: 3, Height: 2, Spacing: 1, Rows: 2, Cols: 2}
	s := NewSpriteMap(layout)
	s.Rebuild(NewGrid(2, 2))

	if s.Width() != 7 || s.Height() != 5 {
		t.Fatalf("sprite map = %dx%d, expected 7x5", s.Width(), s.Height())
	}

	gap, _ := s.At(0, 3)
	if gap.HasOwner || gap.Glyph != GlyphCleared {
		t.Errorf("gap cell = %+v, expected unowned and cleared", gap)
	}
	rowGap, _ := s.At(2, 0)
	if rowGap.HasOwner {
		t.Error("row gap should be unowned")
	}

	cell, _ := s.At(3, 4)
	if !cell.HasOwner || cell.Row != 1 || cell.Col != 1 {
		t.Errorf("At(3, 4) = %+v, expected owner (1, 1)", cell)
	}
	if cell.Glyph != GlyphCornerTop {
		t.Errorf("At(3, 4).Glyph = %q, expected %q", cell.Glyph, GlyphCornerTop)
	}
	if bottom, _ := s.At(4, 5); bottom.Glyph != GlyphHorizontal {
		t.Errorf("At(4, 5).Glyph = %q, expected %q", bottom.Glyph, GlyphHorizontal)
	}
}

func TestSpriteDrawSkipsCleared(t *testing.T) {
	s := NewSpriteMap(config.DefaultBreakout().Blocks)
	grid := NewGrid(2, 4)
	grid.Break(0, 1)
	s.Rebuild(grid)

	dst := core.NewScreen(68, 25)
	dst.Fill(core.AreaAt(0, 0, 68, 1), 'X', core.ColorDefault)
	s.Draw(dst)

	if dst.Get(20, 0) != 'X' {
		t.Errorf("cleared block overwrote screen with %q", dst.Get(20, 0))
	}
	if dst.Get(0, 0) != GlyphCornerTop {
		t.Errorf("intact block not drawn, got %q", dst.Get(0, 0))
	}
}

func TestEdgeClassification(t *testing.T) {
	if !IsVerticalEdge(GlyphVertical) || IsVerticalEdge(GlyphHorizontal) {
		t.Error("IsVerticalEdge misclassifies edges")
	}
	if !IsHorizontalEdge(GlyphHorizontal) || IsHorizontalEdge(GlyphVertical) {
		t.Error("IsHorizontalEdge misclassifies edges")
	}
	for _, corner := range []rune{GlyphCornerTop, GlyphCornerBottom} {
		if IsVerticalEdge(corner) || IsHorizontalEdge(corner) {
			t.Errorf("corner %q should not be an edge", corner)
		}
	}
}
