package core

import "strings"

// Cell is one terminal character cell.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells, row-major. The terminal
// frontend composes a frame into it before styling it for output.
type Screen struct {
	w, h  int
	cells []Cell
}

// NewScreen returns a w×h screen of blank cells. Negative sizes are
// treated as zero.
func NewScreen(w, h int) *Screen {
	w, h = max(w, 0), max(h, 0)
	s := &Screen{w: w, h: h, cells: make([]Cell, w*h)}
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// SetCell drops writes outside the grid.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = c
	}
}

// GetCell reads a blank cell outside the grid.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.w+x]
}

func (s *Screen) Get(x, y int) rune { return s.GetCell(x, y).Rune }

// DrawText writes runes left to right from (x, y), recolouring the
// foreground and keeping each cell's background. It clips at the edge.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for _, r := range text {
		c := s.GetCell(x, y)
		c.Rune, c.Fg = r, fg
		s.SetCell(x, y, c)
		x++
	}
}

// Row is the runes of row y; rows outside the grid read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String is the uncoloured grid, rows separated by newlines. It is what
// the terminal screenshot key writes to disk.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
