package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/sprite"
)

// Bird is the player.
// Its rectangle keeps the size of the spawn image for the whole game, even
// when a rotated or posed image of another size is drawn in it.
type Bird struct {
	rect   core.Rect
	facing core.Direction
	img    *core.Bitmap
	pose   int // 0 while a facing image is shown
	step   int
	atlas  *sprite.Atlas
}

// NewBird creates a bird facing East, centred on (cx, cy).
func NewBird(atlas *sprite.Atlas, cx, cy, step int) *Bird {
	img := atlas.Bird(core.East)
	return &Bird{
		rect:   img.Rect().WithCenter(cx, cy),
		facing: core.East,
		img:    img,
		step:   step,
		atlas:  atlas,
	}
}

// Rect returns the bird's bounding box.
func (b *Bird) Rect() core.Rect { return b.rect }

// Facing returns the last nonzero movement direction.
func (b *Bird) Facing() core.Direction { return b.facing }

// Pose returns the numbered pose on display, or 0 for a facing image.
func (b *Bird) Pose() int { return b.pose }

// delta sums the movement vectors of every held key.
func (b *Bird) delta(in core.InputFrame) core.Vec {
	var sum core.Vec
	for _, a := range core.MovementActions {
		if !in.IsHeld(a) {
			continue
		}
		switch a {
		case core.ActionUp:
			sum = sum.Add(core.V(0, -b.step))
		case core.ActionDown:
			sum = sum.Add(core.V(0, b.step))
		case core.ActionLeft:
			sum = sum.Add(core.V(-b.step, 0))
		case core.ActionRight:
			sum = sum.Add(core.V(b.step, 0))
		}
	}
	return sum
}

// ApplyInput moves the bird by the held keys and draws it.
// A move that would leave the play area on either axis is undone entirely.
// A nonzero net vector turns the bird even when the move was undone.
func (b *Bird) ApplyInput(in core.InputFrame, area core.Size, dst core.Surface) {
	sum := b.delta(in)
	moved := b.rect.Move(sum)
	if inBounds(moved, area) {
		b.rect = moved
	}
	if !sum.IsZero() {
		b.facing = core.DirectionOf(sum, b.step)
		b.img = b.atlas.Bird(b.facing)
		b.pose = 0
	}
	b.Draw(dst)
}

// SetPose switches to numbered pose n and draws it immediately.
// The pose stays until the next nonzero move.
func (b *Bird) SetPose(n int, dst core.Surface) {
	b.img = b.atlas.Pose(n)
	b.pose = n
	b.Draw(dst)
}

// Draw blits the current image.
func (b *Bird) Draw(dst core.Surface) {
	dst.Blit(b.img, b.rect)
}
