package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rockswap/internal/core"
)

// ansiCodes is the terminal color for each core.Color.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
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
}

// cellStyles is indexed by core.Color. Bright white is bold so the
// cursor brackets stay visible on light backgrounds.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if core.Color(c) == core.ColorBrightWhite {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}()

// styleFor returns the style for c. Unknown colors render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// span is a run of cells on one row that share a color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y of s into same-color runs, left to right.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var run []rune
	cur := core.ColorDefault
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if len(run) > 0 && cell.Color != cur {
			spans = append(spans, span{color: cur, text: string(run)})
			run = run[:0]
		}
		cur = cell.Color
		run = append(run, cell.Rune)
	}
	if len(run) > 0 {
		spans = append(spans, span{color: cur, text: string(run)})
	}
	return spans
}

// RenderScreen converts a Screen buffer to terminal text with one escape
// sequence per color run. Uncolored runs are written as is.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for _, sp := range rowSpans(s, y) {
			if sp.color == core.ColorDefault {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
