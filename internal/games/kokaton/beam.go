package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/sprite"
)

// Beam is a projectile fired along the bird's facing direction.
type Beam struct {
	rect core.Rect
	vel  core.Vec
	img  *core.Bitmap
}

// NewBeam fires a beam from the front of the bird.
// Its center is offset from the bird's center by one bird width (or
// height) along each nonzero axis of the facing direction.
func NewBeam(atlas *sprite.Atlas, bird *Bird) *Beam {
	vel := bird.facing.Vec(bird.step)
	img := atlas.Beam(bird.facing)

	br := bird.Rect()
	cx, cy := br.Center()
	cx += br.W * vel.X / bird.step
	cy += br.H * vel.Y / bird.step

	return &Beam{
		rect: img.Rect().WithCenter(cx, cy),
		vel:  vel,
		img:  img,
	}
}

// Rect returns the beam's bounding box.
func (b *Beam) Rect() core.Rect { return b.rect }

// Velocity returns the fixed per-frame displacement.
func (b *Beam) Velocity() core.Vec { return b.vel }

// Update moves and draws the beam while it is inside the play area.
// The bounds check runs before the move, so the beam is drawn once past
// its last in-bounds position and pruned on the following frame.
func (b *Beam) Update(area core.Size, dst core.Surface) {
	if inBounds(b.rect, area) {
		b.rect = b.rect.Move(b.vel)
		b.Draw(dst)
	}
}

// Draw blits the beam.
func (b *Beam) Draw(dst core.Surface) {
	dst.Blit(b.img, b.rect)
}
