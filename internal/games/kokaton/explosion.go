package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/sprite"
)

// Explosion is the flickering effect left where a bomb was destroyed.
type Explosion struct {
	rect    core.Rect
	life    int
	flicker int
	frame   int // Animation frame on display
	atlas   *sprite.Atlas
}

// NewExplosion anchors an explosion on the bomb's center.
func NewExplosion(atlas *sprite.Atlas, bomb *Bomb, life, flicker int) *Explosion {
	cx, cy := bomb.Rect().Center()
	return &Explosion{
		rect:    atlas.Explosion(0).Rect().WithCenter(cx, cy),
		life:    life,
		flicker: flicker,
		atlas:   atlas,
	}
}

// Rect returns the explosion's bounding box.
func (e *Explosion) Rect() core.Rect { return e.rect }

// Life returns the remaining frames.
func (e *Explosion) Life() int { return e.life }

// Alive reports whether the explosion still has frames left.
func (e *Explosion) Alive() bool { return e.life > 0 }

// Update counts down one frame and, while alive, draws the frame chosen
// by (life / flicker) % 2.
func (e *Explosion) Update(dst core.Surface) {
	e.life--
	if e.life > 0 {
		e.frame = (e.life / e.flicker) % 2
		e.Draw(dst)
	}
}

// Draw blits the current frame.
func (e *Explosion) Draw(dst core.Surface) {
	dst.Blit(e.atlas.Explosion(e.frame), e.rect)
}
