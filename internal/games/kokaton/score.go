package kokaton

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Text sizes.
const (
	scoreTextSize  = 30
	bannerTextSize = 80
	resultTextSize = 60
	pausedTextSize = 60
)

// Score counts destroyed bombs and draws the HUD line.
type Score struct {
	value int
	label string
	color core.Color
	x, y  int // Top-left of the text, fixed at creation
}

// NewScore creates a zero score whose text is centred on (cx, cy).
func NewScore(label string, cx, cy int) *Score {
	s := &Score{label: label, color: core.ColorBlue}
	w, h := textSize(s.text(), scoreTextSize)
	s.x, s.y = cx-w/2, cy-h/2
	return s
}

// Value returns the current count.
func (s *Score) Value() int { return s.value }

// Increment adds one.
func (s *Score) Increment() { s.value++ }

func (s *Score) text() string {
	return fmt.Sprintf("%s: %d", s.label, s.value)
}

// Update renders the current value.
func (s *Score) Update(dst core.Surface) {
	dst.DrawText(s.text(), s.x, s.y, scoreTextSize, s.color)
}

// textSize estimates the pixel extent of text at a point size.
func textSize(text string, size int) (w, h int) {
	return utf8.RuneCountInString(text) * size / 2, size
}
