package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/torus-boards/internal/core"
)

// tintStyles maps core.Tint to lipgloss styles.
var tintStyles = map[core.Tint]lipgloss.Style{
	core.TintDefault:     lipgloss.NewStyle(),
	core.TintLabel:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.TintLightSquare: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.TintDarkSquare:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.TintWhitePiece:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.TintBlackPiece:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.TintHighlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
}

// RenderScreen converts a Screen buffer to a string for display. Without
// colour the plain text is returned with trailing spaces trimmed. With
// colour, adjacent cells of the same tint share one style run to keep the
// escape sequences short.
func RenderScreen(s *core.Screen, color bool) string {
	if !color {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Tint

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Tint != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := tintStyles[start]
			if !ok {
				style = tintStyles[core.TintDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
