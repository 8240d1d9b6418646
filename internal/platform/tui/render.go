package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// statusStyle renders the line under the frame.
var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("15")).
	Bold(true)

type cellColors struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	// Styles are cached per call; SSH sessions render concurrently.
	styles := make(map[cellColors]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := cellColors{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != colors.fg || cell.BG != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[colors]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(colors.fg.Hex())).
					Background(lipgloss.Color(colors.bg.Hex()))
				styles[colors] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderStatus formats the score line shown under the frame.
func RenderStatus(st core.GameState) string {
	return statusStyle.Render(fmt.Sprintf("Score: %d  Balls: %d  Mouse: %d, %d",
		st.Score, st.Balls, st.Pointer.X, st.Pointer.Y))
}
