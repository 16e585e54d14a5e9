package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// colorStyles maps colour roles to lipgloss styles, in the arcade
// palette: blue walls, a yellow actor and pale dots.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2121DE")),
	core.ColorDot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB8AE")),
	core.ColorPellet:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB8AE")).Bold(true),
	core.ColorActor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a colour are emitted as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
