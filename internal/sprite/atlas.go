package sprite

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Sprite scale factors.
const (
	birdZoom = 0.9
	beamZoom = 1.0
)

// Pose numbers with a fixed meaning.
const (
	PoseDefault = 3
	PoseHit     = 6
	PoseDefeat  = 8
)

// Atlas is the table of pre-rendered images. It is built once and shared
// by every entity that draws, across goroutines.
type Atlas struct {
	Background *core.Bitmap

	birdFacing [core.DirectionCount]*core.Bitmap
	beamFacing [core.DirectionCount]*core.Bitmap
	poses      [PoseCount + 1]*core.Bitmap
	explosion  [2]*core.Bitmap

	bombMu sync.Mutex
	bombs  map[bombKey]*core.Bitmap
}

type bombKey struct {
	c      core.Color
	radius int
}

// NewAtlas renders every derived image from the pack.
func NewAtlas(p *Pack, area core.Size) *Atlas {
	a := &Atlas{
		Background: Background(area),
		bombs:      make(map[bombKey]*core.Bitmap),
	}

	base, _ := p.Pose(PoseDefault)
	left := Rotozoom(base, 0, birdZoom)
	right := Flip(left, true, false)

	a.birdFacing = [core.DirectionCount]*core.Bitmap{
		core.East:      right,
		core.NorthEast: Rotozoom(right, 45, birdZoom),
		core.North:     Rotozoom(right, 90, birdZoom),
		core.NorthWest: Rotozoom(left, -45, birdZoom),
		core.West:      left,
		core.SouthWest: Rotozoom(left, 45, birdZoom),
		core.South:     Rotozoom(right, -90, birdZoom),
		core.SouthEast: Rotozoom(right, -45, birdZoom),
	}

	for n := 1; n <= PoseCount; n++ {
		pose, _ := p.Pose(n)
		a.poses[n] = Rotozoom(pose, 0, birdZoom)
	}

	beam, _ := p.Image(ImageBeam)
	for _, d := range core.Directions {
		a.beamFacing[d] = Rotozoom(beam, d.Angle(), beamZoom)
	}

	boom, _ := p.Image(ImageExplosion)
	a.explosion = [2]*core.Bitmap{boom, Flip(boom, true, true)}

	return a
}

// Bird returns the player image facing d.
func (a *Atlas) Bird(d core.Direction) *core.Bitmap {
	return a.birdFacing[d]
}

// Pose returns numbered pose n. It panics outside 1..PoseCount.
func (a *Atlas) Pose(n int) *core.Bitmap {
	if n < 1 || n > PoseCount {
		panic(fmt.Sprintf("sprite: no pose %d", n))
	}
	return a.poses[n]
}

// Beam returns the beam image rotated to travel along d.
func (a *Atlas) Beam(d core.Direction) *core.Bitmap {
	return a.beamFacing[d]
}

// Explosion returns animation frame i (0 or 1).
func (a *Atlas) Explosion(i int) *core.Bitmap {
	return a.explosion[i&1]
}

// Bomb returns the bomb image of the given color and radius, rendered on
// first use.
func (a *Atlas) Bomb(c core.Color, radius int) *core.Bitmap {
	k := bombKey{c, radius}
	a.bombMu.Lock()
	defer a.bombMu.Unlock()
	if img, ok := a.bombs[k]; ok {
		return img
	}
	img := Circle(c, radius)
	a.bombs[k] = img
	return img
}

var (
	packOnce sync.Once
	packVal  *Pack
	packErr  error

	atlasMu sync.Mutex
	atlases = make(map[core.Size]*Atlas)
)

// Default returns the atlas for the embedded pack and play area.
// Atlases are built on first use and reused afterwards.
func Default(area core.Size) (*Atlas, error) {
	packOnce.Do(func() {
		packVal, packErr = DefaultPack()
	})
	if packErr != nil {
		return nil, packErr
	}

	atlasMu.Lock()
	defer atlasMu.Unlock()
	if a, ok := atlases[area]; ok {
		return a, nil
	}
	a := NewAtlas(packVal, area)
	atlases[area] = a
	return a, nil
}
