package kokaton

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame   int
	Score   int
	Outcome int
	Paused  bool
	Mode    int // 0=Classic, 1=Endless
	Wave    int

	BirdX, BirdY int
	Facing       int
	Pose         int

	// Each beam is 4 ints: X, Y, VX, VY
	BeamData []int

	// Each bomb is 4 ints: X, Y, VX, VY
	BombData []int

	// Each explosion is 3 ints: X, Y, Life
	ExplosionData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	br := g.bird.Rect()
	snap := Snapshot{
		Frame:   g.frame,
		Score:   g.score.Value(),
		Outcome: int(g.outcome),
		Paused:  g.paused,
		Mode:    int(g.mode),
		Wave:    g.wave,
		BirdX:   br.X,
		BirdY:   br.Y,
		Facing:  int(g.bird.Facing()),
		Pose:    g.bird.Pose(),

		BeamData:      make([]int, 0, len(g.beams)*4),
		BombData:      make([]int, 0, len(g.bombs)*4),
		ExplosionData: make([]int, 0, len(g.explosions)*3),
	}

	for _, b := range g.beams {
		r, v := b.Rect(), b.Velocity()
		snap.BeamData = append(snap.BeamData, r.X, r.Y, v.X, v.Y)
	}
	for _, b := range g.bombs {
		r, v := b.Rect(), b.Velocity()
		snap.BombData = append(snap.BombData, r.X, r.Y, v.X, v.Y)
	}
	for _, e := range g.explosions {
		r := e.Rect()
		snap.ExplosionData = append(snap.ExplosionData, r.X, r.Y, e.Life())
	}

	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}

	write(snap.Frame)
	write(snap.Score)
	write(snap.Outcome)
	if snap.Paused {
		write(1)
	} else {
		write(0)
	}
	write(snap.Mode)
	write(snap.Wave)
	write(snap.BirdX)
	write(snap.BirdY)
	write(snap.Facing)
	write(snap.Pose)

	// Each section is prefixed with its length
	for _, data := range [][]int{snap.BeamData, snap.BombData, snap.ExplosionData} {
		write(len(data))
		for _, v := range data {
			write(v)
		}
	}

	return h.Sum64()
}
