package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

// ansiCodes holds the 256-color code of each palette entry. ColorDefault
// has no entry and renders unstyled.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "240",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		s := lipgloss.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		styles[i] = s
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the cell buffer into terminal text. Each run of cells
// sharing a color is styled once.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out, run strings.Builder
	out.Grow(w*h*2 + h)

	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		if c == core.ColorDefault {
			out.WriteString(run.String())
		} else {
			out.WriteString(styleFor(c).Render(run.String()))
		}
		run.Reset()
	}

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(current)
	}
	return out.String()
}
