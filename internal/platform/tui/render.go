package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazerunner/internal/core"
)

// Warm palette: cream walls on the terminal background, orange accents.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFECD6")),
	core.ColorFloor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#544E68")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA5E")).Bold(true),
	core.ColorGoal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD4A3")).Bold(true),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD4A3")),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA5E")).Bold(true),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D08159")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8D697A")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
