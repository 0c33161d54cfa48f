package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func tileStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// colorStyles maps core.Color to lipgloss styles using the classic 2048 palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("#BBADA0")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#CDC1B4")),
	core.ColorAccent:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EDC22E")),
	core.ColorTile2:     tileStyle("#776E65", "#EEE4DA"),
	core.ColorTile4:     tileStyle("#776E65", "#EDE0C8"),
	core.ColorTile8:     tileStyle("#F9F6F2", "#F2B179"),
	core.ColorTile16:    tileStyle("#F9F6F2", "#F59563"),
	core.ColorTile32:    tileStyle("#F9F6F2", "#F67C5F"),
	core.ColorTile64:    tileStyle("#F9F6F2", "#F65E3B"),
	core.ColorTile128:   tileStyle("#F9F6F2", "#EDCF72"),
	core.ColorTile256:   tileStyle("#F9F6F2", "#EDCC61"),
	core.ColorTile512:   tileStyle("#F9F6F2", "#EDC850"),
	core.ColorTile1024:  tileStyle("#F9F6F2", "#EDC53F"),
	core.ColorTile2048:  tileStyle("#F9F6F2", "#EDC22E"),
	core.ColorTileSuper: tileStyle("#F9F6F2", "#3C3A32"),
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
