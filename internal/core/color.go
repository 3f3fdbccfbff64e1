package core

// Color is the role a cell plays on screen. Each renderer picks the actual
// terminal colour for a role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBorder
	ColorBall
	ColorPaddle
	ColorBlockA
	ColorBlockB
	ColorBlockC
	ColorBlockD
)

var blockColors = [...]Color{ColorBlockA, ColorBlockB, ColorBlockC, ColorBlockD}

// BlockColor returns the colour of block row row; rows cycle through the
// block colours.
func BlockColor(row int) Color {
	return blockColors[row%len(blockColors)]
}
