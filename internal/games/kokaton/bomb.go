package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Bomb is a bouncing hazard.
type Bomb struct {
	rect   core.Rect
	vel    core.Vec
	color  core.Color
	radius int
	img    *core.Bitmap
}

// NewBomb creates a bomb of the given color and radius centred on (cx, cy),
// moving diagonally down-right at speed per axis.
func NewBomb(img *core.Bitmap, c core.Color, radius, cx, cy, speed int) *Bomb {
	return &Bomb{
		rect:   img.Rect().WithCenter(cx, cy),
		vel:    core.V(speed, speed),
		color:  c,
		radius: radius,
		img:    img,
	}
}

// Rect returns the bomb's bounding box.
func (b *Bomb) Rect() core.Rect { return b.rect }

// Velocity returns the current per-frame displacement.
func (b *Bomb) Velocity() core.Vec { return b.vel }

// Update reflects the velocity on every axis the bomb is outside of,
// then moves and draws it. Both axes can flip on the same frame.
func (b *Bomb) Update(area core.Size, dst core.Surface) {
	horizontal, vertical := CheckBound(b.rect, area)
	if !horizontal {
		b.vel.X = -b.vel.X
	}
	if !vertical {
		b.vel.Y = -b.vel.Y
	}
	b.rect = b.rect.Move(b.vel)
	b.Draw(dst)
}

// Draw blits the bomb.
func (b *Bomb) Draw(dst core.Surface) {
	dst.Blit(b.img, b.rect)
}
