package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// palette maps core.Color to ANSI 256 colours. Block colours follow the
// classic Arkanoid bricks.
var palette = map[core.Color]lipgloss.Color{
	core.ColorOrange:       "208",
	core.ColorLightBlue:    "117",
	core.ColorGreen:        "2",
	core.ColorRed:          "1",
	core.ColorBlue:         "4",
	core.ColorPink:         "213",
	core.ColorSilver:       "250",
	core.ColorGold:         "220",
	core.ColorBrightWhite:  "15",
	core.ColorBrightYellow: "11",
}

// colorStyles holds one style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, fg := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour share a style; default cells are written raw.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
