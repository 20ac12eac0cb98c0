package engine

import (
	"math/rand/v2"

	"github.com/vovakirdan/kokaton/internal/core"
)

// InputSource supplies one input frame per simulated frame.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll implements InputSource.
func (f InputFunc) Poll() core.InputFrame { return f() }

// Autopilot produces seeded pseudo-random play: it holds a random set of
// movement keys for a random number of frames and fires now and then.
type Autopilot struct {
	rng      *rand.Rand
	held     []core.Action
	left     int // Frames until the next change of keys
	fireOdds int // One in fireOdds frames fires
}

// NewAutopilot creates an autopilot. The same seed yields the same inputs.
func NewAutopilot(seed int64) *Autopilot {
	s := uint64(seed) //#nosec G115 -- seed bits are reused as-is
	return &Autopilot{
		rng:      rand.New(rand.NewPCG(s, s^0x6175746f)),
		fireOdds: 6,
	}
}

// Poll implements InputSource.
func (a *Autopilot) Poll() core.InputFrame {
	if a.left <= 0 {
		a.held = a.held[:0]
		for _, act := range core.MovementActions {
			if a.rng.IntN(3) == 0 {
				a.held = append(a.held, act)
			}
		}
		a.left = 5 + a.rng.IntN(25)
	}
	a.left--

	in := core.NewInputFrame()
	for _, act := range a.held {
		in.Hold(act)
	}
	if a.rng.IntN(a.fireOdds) == 0 {
		in.Set(core.ActionFire)
	}
	return in
}
