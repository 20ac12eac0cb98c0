package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

var (
	stylesMu sync.Mutex
	styles   = map[colorPair]lipgloss.Style{}
)

// styleFor returns the cached lipgloss style for a fg/bg pair.
// ColorTransparent leaves that side unstyled.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if s, ok := styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != core.ColorTransparent {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorTransparent {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
