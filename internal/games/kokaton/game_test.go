package kokaton

import (
	"testing"
	"time"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/sprite"
)

func newTestGame(t *testing.T, mode GameMode) *Game {
	t.Helper()
	g := &Game{mode: mode}
	g.reset(core.RuntimeConfig{Seed: 1}, config.DefaultKokatonConfig())
	return g
}

// setBombs replaces the spawned bombs with bombs centred on the given points.
func setBombs(g *Game, centers ...[2]int) {
	g.bombs = g.bombs[:0]
	for _, c := range centers {
		img := g.atlas.Bomb(g.bombColor, g.cfg.Bombs.Radius)
		g.bombs = append(g.bombs, NewBomb(img, g.bombColor, g.cfg.Bombs.Radius, c[0], c[1], g.cfg.Bombs.Speed))
	}
}

// beamAt adds an east-bound beam centred on (cx, cy).
func beamAt(g *Game, cx, cy int) *Beam {
	img := g.atlas.Beam(core.East)
	b := &Beam{rect: img.Rect().WithCenter(cx, cy), vel: core.V(5, 0), img: img}
	g.beams = append(g.beams, b)
	return b
}

func fire() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

// Bomb paths that stay clear of the bird at its spawn point for 500 frames.
var safeCenters = [][2]int{{20, 200}, {60, 440}, {100, 480}, {120, 500}, {140, 320}}

func TestResetSpawnsBombsInBounds(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	if len(g.bombs) != 5 {
		t.Fatalf("bombs = %d, expected 5", len(g.bombs))
	}
	for i, b := range g.bombs {
		if !inBounds(b.Rect(), g.area) {
			t.Errorf("bomb %d spawned out of bounds: %+v", i, b.Rect())
		}
		if b.Velocity() != core.V(5, 5) {
			t.Errorf("bomb %d velocity = %v, expected (5,5)", i, b.Velocity())
		}
	}
	if len(g.beams) != 0 || len(g.explosions) != 0 {
		t.Error("a new game should have no beams or explosions")
	}
	if s := g.State(); s.Score != 0 || s.Outcome != core.OutcomeRunning {
		t.Errorf("initial state = %+v", s)
	}
}

func TestRunsWithoutTransition(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, safeCenters...)
	dst := &core.NopSurface{}

	for i := range 500 {
		res := g.Step(core.NewInputFrame(), dst)
		if res.State.Outcome != core.OutcomeRunning {
			t.Fatalf("frame %d: outcome %v, expected running", i+1, res.State.Outcome)
		}
		if res.Hold != 0 {
			t.Fatalf("frame %d: unexpected hold %v", i+1, res.Hold)
		}
	}
	if len(g.bombs) != 5 {
		t.Errorf("bombs = %d, expected 5", len(g.bombs))
	}
	if g.State().Frame != 500 {
		t.Errorf("frame = %d, expected 500", g.State().Frame)
	}
	if dst.Presents != 500 {
		t.Errorf("presents = %d, expected one per frame", dst.Presents)
	}
}

func TestBeamDestroysBombOnItsRay(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	// The target drifts down-left into the beam's path; the second bomb keeps the game running
	setBombs(g, [2]int{600, 100}, [2]int{20, 600})
	target := g.bombs[0]
	target.vel = core.V(-5, 5)

	rec := &recorder{}
	g.Step(fire(), rec)
	if len(g.beams) != 1 {
		t.Fatalf("beams = %d after firing, expected 1", len(g.beams))
	}

	hitFrame := 0
	for frame := 2; frame <= 40; frame++ {
		g.Step(core.NewInputFrame(), rec)
		if g.score.Value() > 0 {
			hitFrame = frame
			break
		}
	}

	if hitFrame != 21 {
		t.Fatalf("hit on frame %d, expected 21", hitFrame)
	}
	if g.score.Value() != 1 {
		t.Errorf("score = %d, expected 1", g.score.Value())
	}
	if len(g.beams) != 0 {
		t.Errorf("beams = %d, expected the beam to be removed", len(g.beams))
	}
	if len(g.bombs) != 1 || g.bombs[0] == target {
		t.Error("the hit bomb should be removed and the other kept")
	}
	if len(g.explosions) != 1 {
		t.Fatalf("explosions = %d, expected 1", len(g.explosions))
	}
	// Created with the full life and advanced once in the same frame
	if got := g.explosions[0].Life(); got != 29 {
		t.Errorf("explosion life = %d, expected 29", got)
	}
	if cx, cy := g.explosions[0].Rect().Center(); cx != 500 || cy != 200 {
		t.Errorf("explosion center = (%d, %d), expected (500, 200)", cx, cy)
	}
	if g.bird.Pose() != sprite.PoseHit {
		t.Errorf("bird pose = %d, expected the hit pose", g.bird.Pose())
	}
}

func TestHitPresentsBeforeFrameComposite(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, [2]int{800, 400}, [2]int{20, 600})
	beamAt(g, 800, 400)

	rec := &recorder{}
	g.Step(core.NewInputFrame(), rec)

	if got := rec.count("present"); got != 2 {
		t.Fatalf("presents = %d, expected 2", got)
	}
	hitPose := rec.index(func(o op) bool { return o.img == g.atlas.Pose(sprite.PoseHit) })
	firstPresent := rec.index(func(o op) bool { return o.kind == "present" })
	explosion := rec.index(func(o op) bool { return o.img == g.atlas.Explosion(0) || o.img == g.atlas.Explosion(1) })

	if hitPose < 0 || explosion < 0 {
		t.Fatal("frame should draw the hit pose and the explosion")
	}
	if !(hitPose < firstPresent && firstPresent < explosion) {
		t.Errorf("order: hit pose %d, present %d, explosion %d", hitPose, firstPresent, explosion)
	}
	if rec.ops[len(rec.ops)-1].kind != "present" {
		t.Error("frame should end with a present")
	}
}

func TestBombScoresOnce(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, [2]int{800, 400}, [2]int{20, 600})
	// Two beams on the same bomb: only the first is consumed
	beamAt(g, 800, 400)
	second := beamAt(g, 805, 400)

	rec := &recorder{}
	g.Step(core.NewInputFrame(), rec)

	if g.score.Value() != 1 {
		t.Errorf("score = %d, expected 1", g.score.Value())
	}
	if len(g.explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(g.explosions))
	}
	if len(g.beams) != 1 || g.beams[0] != second {
		t.Error("the second beam should survive the pass")
	}
}

func TestOneBeamPerBombInSamePass(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	// Two overlapping bombs under one beam: the beam only takes the first
	setBombs(g, [2]int{800, 400}, [2]int{810, 400}, [2]int{20, 600})
	beamAt(g, 805, 400)

	g.Step(core.NewInputFrame(), &recorder{})
	if g.score.Value() != 1 {
		t.Errorf("score = %d, expected 1", g.score.Value())
	}
	if len(g.bombs) != 2 {
		t.Errorf("bombs = %d, expected 2", len(g.bombs))
	}
}

func TestPruneOutOfBoundsBeams(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, safeCenters...)
	img := g.atlas.Beam(core.East)
	g.beams = append(g.beams, &Beam{rect: img.Rect().WithCenter(g.area.W+100, 300), vel: core.V(5, 0), img: img})
	keep := beamAt(g, 900, 50)

	g.Step(core.NewInputFrame(), &recorder{})
	if len(g.beams) != 1 || g.beams[0] != keep {
		t.Errorf("beams = %d, expected only the in-bounds beam", len(g.beams))
	}
}

func TestSequentialClearWinsSameFrame(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, [2]int{140, 320}, [2]int{60, 440}, [2]int{120, 140}, [2]int{80, 260}, [2]int{100, 480})

	for i := range 5 {
		cx, cy := g.bombs[0].Rect().Center()
		beamAt(g, cx, cy)

		rec := &recorder{}
		res := g.Step(core.NewInputFrame(), rec)

		if i < 4 {
			if res.State.Outcome != core.OutcomeRunning {
				t.Fatalf("frame %d: outcome %v, expected running", i+1, res.State.Outcome)
			}
			if len(g.bombs) != 4-i {
				t.Fatalf("frame %d: bombs = %d, expected %d", i+1, len(g.bombs), 4-i)
			}
			continue
		}

		if res.State.Outcome != core.OutcomeWin {
			t.Fatalf("last bomb destroyed but outcome = %v", res.State.Outcome)
		}
		if res.Hold != 3*time.Second {
			t.Errorf("win hold = %v, expected 3s", res.Hold)
		}
		if res.State.Score != 5 {
			t.Errorf("score = %d, expected 5", res.State.Score)
		}
		texts := rec.texts()
		if len(texts) != 2 || texts[0] != "You Win!" || texts[1] != "SCORE: 5" {
			t.Errorf("win texts = %v", texts)
		}
		if rec.ops[len(rec.ops)-1].kind != "present" {
			t.Error("win banner should be presented")
		}
	}

	if g.State().Frame != 4 {
		t.Errorf("frame = %d, expected the win frame not to be counted", g.State().Frame)
	}
}

func TestLossAtFrameStart(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	bx, by := g.bird.Rect().Center()
	setBombs(g, [2]int{bx, by}, [2]int{20, 600})
	// A beam on the same bomb must not score first
	beamAt(g, bx, by)

	rec := &recorder{}
	res := g.Step(fire(), rec)

	if res.State.Outcome != core.OutcomeLoss {
		t.Fatalf("outcome = %v, expected loss", res.State.Outcome)
	}
	if res.Hold != time.Second {
		t.Errorf("loss hold = %v, expected 1s", res.Hold)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected 0", res.State.Score)
	}
	if g.bird.Pose() != sprite.PoseDefeat {
		t.Errorf("bird pose = %d, expected defeat", g.bird.Pose())
	}
	if texts := rec.texts(); len(texts) != 1 || texts[0] != "Game Over" {
		t.Errorf("loss texts = %v", texts)
	}
	if rec.count("present") != 1 {
		t.Errorf("presents = %d, expected 1", rec.count("present"))
	}

	// Terminal: further steps do nothing
	rec.reset()
	res = g.Step(core.NewInputFrame(), rec)
	if len(rec.ops) != 0 || res.Hold != 0 || res.State.Outcome != core.OutcomeLoss {
		t.Error("steps after a terminal outcome should be no-ops")
	}
}

func TestPauseFreezesEntities(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	setBombs(g, safeCenters...)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	before := g.Snapshot()
	rec := &recorder{}
	res := g.Step(pause, rec)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	for range 10 {
		g.Step(held(core.ActionRight), rec)
	}
	after := g.Snapshot()
	after.Paused = false
	if before.Hash() != after.Hash() {
		t.Error("nothing should move while paused")
	}
	found := false
	for _, s := range rec.texts() {
		if s == "PAUSED" {
			found = true
		}
	}
	if !found {
		t.Error("paused frames should show the overlay")
	}

	res = g.Step(pause, rec)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.State().Frame != 1 {
		t.Errorf("frame = %d, expected 1 after resuming", g.State().Frame)
	}
}

func TestEndlessSpawnsNextWave(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	setBombs(g, [2]int{800, 400})
	beamAt(g, 800, 400)

	res := g.Step(core.NewInputFrame(), &recorder{})
	if res.State.Outcome != core.OutcomeRunning {
		t.Fatalf("endless mode should not win, outcome = %v", res.State.Outcome)
	}
	if g.wave != 1 {
		t.Errorf("wave = %d, expected 1", g.wave)
	}
	if len(g.bombs) != 6 {
		t.Errorf("bombs = %d, expected 5 + 1*1", len(g.bombs))
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345}

	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 10:
			inputs[i].Hold(core.ActionUp)
		case i%40 < 20:
			inputs[i].Hold(core.ActionRight)
		case i%40 < 30:
			inputs[i].Hold(core.ActionDown)
		default:
			inputs[i].Hold(core.ActionLeft)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func(seed int64) Snapshot {
		g := New()
		g.reset(core.RuntimeConfig{Seed: seed}, config.DefaultKokatonConfig())
		for _, in := range inputs {
			if res := g.Step(in, &core.NopSurface{}); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run(cfg.Seed)
	snap2 := run(cfg.Seed)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: score/frame differ")
	}

	g1, g2 := New(), New()
	g1.reset(core.RuntimeConfig{Seed: 1}, config.DefaultKokatonConfig())
	g2.reset(core.RuntimeConfig{Seed: 2}, config.DefaultKokatonConfig())
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds should place bombs differently")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"kokaton", "kokaton_endless"} {
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		g.Reset(core.DefaultConfig())
		if g.PlayArea() != (core.Size{W: 1100, H: 650}) || g.FrameRate() != 50 {
			t.Errorf("%s: play area %v at %d fps", id, g.PlayArea(), g.FrameRate())
		}
	}
}
