package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// CheckBound reports whether r lies inside the play area, per axis.
// horizontal is false when r sticks out on the left or right; vertical is
// false when it sticks out on the top or bottom.
func CheckBound(r core.Rect, area core.Size) (horizontal, vertical bool) {
	horizontal = r.Left() >= 0 && r.Right() <= area.W
	vertical = r.Top() >= 0 && r.Bottom() <= area.H
	return horizontal, vertical
}

// inBounds reports whether r lies fully inside the play area.
func inBounds(r core.Rect, area core.Size) bool {
	h, v := CheckBound(r, area)
	return h && v
}
