// Package kokaton implements the bomb-dodging arcade game: the player bird
// fires beams at bouncing bombs, winning when every bomb is destroyed and
// losing on the first bomb that touches it.
package kokaton

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/sprite"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Clear all bombs to win
	ModeEndless                 // New waves forever, only a loss ends the game
)

// spawnAttempts bounds the retries when placing an endless-wave bomb away
// from the bird.
const spawnAttempts = 16

// settings is the configuration used by every new game, set via CLI.
var settings = config.DefaultKokatonConfig()

// SetConfig replaces the configuration used by games reset afterwards.
func SetConfig(cfg config.KokatonConfig) {
	settings = cfg
}

// Game implements the bomb-dodging game logic.
type Game struct {
	mode GameMode

	// Entities
	bird       *Bird
	beams      []*Beam
	bombs      []*Bomb
	explosions []*Explosion
	score      *Score

	// Loop state
	outcome core.Outcome
	paused  bool
	frame   int
	wave    int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.KokatonConfig
	area       core.Size
	bombColor  core.Color
	atlas      *sprite.Atlas
	rng        *rand.Rand
	ramp       config.SpeedRamp
}

// New creates a new game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "kokaton_endless"
	}
	return "kokaton"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Fight Kokaton (Endless)"
	}
	return "Fight Kokaton"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.reset(runtime, settings)
}

func (g *Game) reset(runtime core.RuntimeConfig, cfg config.KokatonConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.area = cfg.PlayArea.Size()

	atlas, err := sprite.Default(g.area)
	if err != nil {
		panic(fmt.Sprintf("kokaton: embedded sprites: %v", err))
	}
	g.atlas = atlas

	g.bombColor = core.ColorRed
	if c, ok := core.ParseColor(cfg.Bombs.Color); ok {
		g.bombColor = c
	}

	seed := uint64(runtime.Seed) //#nosec G115 -- seed bits are reused as-is
	g.rng = rand.New(rand.NewPCG(seed, seed^0x6b6f6b61746f6e))
	g.ramp = config.NewSpeedRamp(cfg.Difficulty)

	g.outcome = core.OutcomeRunning
	g.paused = false
	g.frame = 0
	g.wave = 0

	g.bird = NewBird(atlas, cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Step)
	g.beams = nil
	g.explosions = nil
	g.score = NewScore(cfg.Score.Label, cfg.Score.X, g.area.H-cfg.Score.YFromBottom)

	g.bombs = make([]*Bomb, 0, cfg.Bombs.Count)
	for range cfg.Bombs.Count {
		g.bombs = append(g.bombs, g.spawnBomb(cfg.Bombs.Speed, false))
	}
}

// spawnBomb places a bomb uniformly at random with its box inside the play
// area. With avoidBird set, positions overlapping the bird are retried.
func (g *Game) spawnBomb(speed int, avoidBird bool) *Bomb {
	r := g.cfg.Bombs.Radius
	img := g.atlas.Bomb(g.bombColor, r)

	var bomb *Bomb
	for range spawnAttempts {
		cx := r + g.rng.IntN(max(1, g.area.W-2*r+1))
		cy := r + g.rng.IntN(max(1, g.area.H-2*r+1))
		bomb = NewBomb(img, g.bombColor, r, cx, cy, speed)
		if !avoidBird || !bomb.Rect().Intersects(g.bird.Rect()) {
			break
		}
	}
	return bomb
}

// Step advances the game by one frame and draws it into dst.
func (g *Game) Step(in core.InputFrame, dst core.Surface) core.StepResult {
	if g.outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.drawPaused(dst)
		return core.StepResult{State: g.State()}
	}

	// Fire
	if in.Has(core.ActionFire) {
		g.beams = append(g.beams, NewBeam(g.atlas, g.bird))
	}

	dst.Blit(g.atlas.Background, core.NewRect(0, 0, g.area.W, g.area.H))

	// A bomb touching the bird ends the game before anything else happens
	for _, bomb := range g.bombs {
		if g.bird.Rect().Intersects(bomb.Rect()) {
			return g.lose(dst)
		}
	}

	g.pruneBeams()
	g.resolveHits(dst)

	if len(g.bombs) == 0 {
		if g.mode == ModeClassic {
			return g.win(dst)
		}
		g.spawnWave()
	}

	for _, e := range g.explosions {
		e.Update(dst)
	}
	g.bird.ApplyInput(in, g.area, dst)
	for _, b := range g.beams {
		b.Update(g.area, dst)
	}
	for _, b := range g.bombs {
		b.Update(g.area, dst)
	}
	g.score.Update(dst)

	dst.Present()
	g.frame++
	return core.StepResult{State: g.State()}
}

// pruneBeams drops beams that have left the play area.
func (g *Game) pruneBeams() {
	kept := g.beams[:0]
	for _, b := range g.beams {
		if inBounds(b.Rect(), g.area) {
			kept = append(kept, b)
		}
	}
	clear(g.beams[len(kept):])
	g.beams = kept
}

// resolveHits pairs every live bomb with every live beam. A hit tombstones
// both, so neither takes part in later pairs, and the frame so far is
// presented at once to show the hit pose. Survivors are compacted after
// the pass and finished explosions are purged.
func (g *Game) resolveHits(dst core.Surface) {
	for i, bomb := range g.bombs {
		for j, beam := range g.beams {
			if g.bombs[i] == nil || beam == nil {
				continue
			}
			if !beam.Rect().Intersects(bomb.Rect()) {
				continue
			}
			g.explosions = append(g.explosions, NewExplosion(g.atlas, bomb, g.cfg.Explosion.Life, g.cfg.Explosion.Flicker))
			g.beams[j] = nil
			g.bombs[i] = nil
			g.bird.SetPose(sprite.PoseHit, dst)
			g.score.Increment()
			dst.Present()
		}
	}

	g.bombs = compact(g.bombs)
	g.beams = compact(g.beams)

	alive := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	clear(g.explosions[len(alive):])
	g.explosions = alive
}

// compact removes nil tombstones, keeping order.
func compact[T any](s []*T) []*T {
	out := s[:0]
	for _, v := range s {
		if v != nil {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}

// spawnWave starts the next endless wave with more and faster bombs.
func (g *Game) spawnWave() {
	g.wave++
	count := g.cfg.Bombs.Count + g.wave*g.cfg.Endless.WaveGrowth
	speed := g.ramp.BombSpeed(g.cfg.Bombs.Speed, g.score.Value(), g.frame)
	for range count {
		g.bombs = append(g.bombs, g.spawnBomb(speed, true))
	}
}

func (g *Game) lose(dst core.Surface) core.StepResult {
	g.bird.SetPose(sprite.PoseDefeat, dst)
	dst.DrawText("Game Over", g.area.W/2-150, g.area.H/2, bannerTextSize, core.ColorRed)
	dst.Present()
	g.outcome = core.OutcomeLoss
	return core.StepResult{State: g.State(), Hold: g.cfg.Holds.Loss}
}

func (g *Game) win(dst core.Surface) core.StepResult {
	dst.DrawText("You Win!", g.area.W/2-140, g.area.H/2-50, bannerTextSize, core.ColorRed)
	dst.DrawText(fmt.Sprintf("SCORE: %d", g.score.Value()), g.area.W/2-130, g.area.H/2+30, resultTextSize, core.ColorBlack)
	dst.Present()
	g.outcome = core.OutcomeWin
	return core.StepResult{State: g.State(), Hold: g.cfg.Holds.Win}
}

// drawPaused redraws the scene without advancing it.
func (g *Game) drawPaused(dst core.Surface) {
	dst.Blit(g.atlas.Background, core.NewRect(0, 0, g.area.W, g.area.H))
	for _, e := range g.explosions {
		if e.Alive() {
			e.Draw(dst)
		}
	}
	g.bird.Draw(dst)
	for _, b := range g.beams {
		b.Draw(dst)
	}
	for _, b := range g.bombs {
		b.Draw(dst)
	}
	g.score.Update(dst)

	const text = "PAUSED"
	w, h := textSize(text, pausedTextSize)
	dst.DrawText(text, (g.area.W-w)/2, (g.area.H-h)/2, pausedTextSize, core.ColorNavy)
	dst.Present()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.outcome.Terminal(),
		Paused:   g.paused,
		Outcome:  g.outcome,
		Frame:    g.frame,
	}
}

// PlayArea returns the size of the play area in world units.
func (g *Game) PlayArea() core.Size {
	return g.area
}

// FrameRate returns the configured frames per second.
func (g *Game) FrameRate() int {
	return g.cfg.FrameRate
}

func init() {
	registry.Register("kokaton", func() registry.Game {
		return New()
	})
	registry.Register("kokaton_endless", func() registry.Game {
		return NewEndless()
	})
}
