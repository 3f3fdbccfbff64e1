package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPaddle:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBlockA:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlockB:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlockC:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlockD:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// styleFor returns the lipgloss style for c, falling back to no styling.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-coloured cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}

		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				out.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		out.WriteString(styleFor(current).Render(run.String()))
		run.Reset()
	}
	return out.String()
}
