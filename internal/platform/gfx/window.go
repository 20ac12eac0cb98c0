// Package gfx is the Ebitengine frontend: a real window of the play area's
// size with true held-key input.
package gfx

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/storage"
)

// Key bindings.
var (
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
		core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
		core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	}
	edgeKeys = map[core.Action][]ebiten.Key{
		core.ActionFire:  {ebiten.KeySpace},
		core.ActionPause: {ebiten.KeyP},
		core.ActionQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
	}
)

// inputFrame builds one frame of input. pressed reports held keys and
// justPressed reports keys that went down this tick.
func inputFrame(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range core.MovementActions {
		for _, k := range heldKeys[a] {
			if pressed(k) {
				frame.Hold(a)
				break
			}
		}
	}
	for a, keys := range edgeKeys {
		for _, k := range keys {
			if justPressed(k) {
				frame.Set(a)
				break
			}
		}
	}
	return frame
}

// Window implements ebiten.Game around a registry.Game.
type Window struct {
	game     registry.Game
	store    *storage.Store
	logger   *log.Logger
	surface  *surface
	area     core.Size
	rate     int
	state    core.GameState
	holdLeft int
	saved    bool
}

// New resets game and prepares a window for it. A nil store disables score
// saving and a nil logger discards log output.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	area := game.PlayArea()
	s, err := newSurface(area)
	if err != nil {
		return nil, err
	}
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)
	return &Window{
		game:    game,
		store:   store,
		logger:  logger,
		surface: s,
		area:    area,
		rate:    game.FrameRate(),
	}, nil
}

// Update implements ebiten.Game. One call is one frame.
func (w *Window) Update() error {
	if w.holdLeft > 0 {
		w.holdLeft--
		if w.holdLeft == 0 {
			return ebiten.Termination
		}
		return nil
	}

	in := inputFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		if w.state.Score > 0 {
			w.save("quit")
		}
		return ebiten.Termination
	}

	result := w.game.Step(in, w.surface)
	w.state = result.State
	if w.state.Outcome.Terminal() {
		w.logger.Info("game over",
			"game", w.game.ID(),
			"outcome", w.state.Outcome,
			"score", w.state.Score,
			"frames", w.state.Frame,
		)
		w.save(w.state.Outcome.String())
		w.holdLeft = max(int(result.Hold*time.Duration(w.rate)/time.Second), 1)
	}
	return nil
}

func (w *Window) save(outcome string) {
	if w.saved || w.store == nil {
		return
	}
	w.saved = true
	_, err := w.store.SaveResult(storage.Result{
		GameID:  w.game.ID(),
		Score:   w.state.Score,
		Outcome: outcome,
		Frames:  w.state.Frame,
	})
	if err != nil {
		w.logger.Warn("could not save score", "game", w.game.ID(), "error", err)
	}
}

// Draw implements ebiten.Game by showing the last presented frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.shown, nil)
}

// Layout implements ebiten.Game. The logical screen is always the play area.
func (w *Window) Layout(int, int) (int, int) {
	return w.area.W, w.area.H
}

// State returns the game state after the last frame.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens a window and plays game until it ends or the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	w, err := New(game, store, cfg, logger)
	if err != nil {
		return core.GameState{}, err
	}
	ebiten.SetWindowSize(w.area.W, w.area.H)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.rate)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return w.state, err
	}
	return w.state, nil
}
