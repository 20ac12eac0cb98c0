package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/storage"
)

// scriptedGame wins after a fixed number of frames and records its input.
type scriptedGame struct {
	frames   int
	winAt    int
	score    int
	outcome  core.Outcome
	lastIn   core.InputFrame
	resets   int
	bg       *core.Bitmap
	holdTime time.Duration
}

func newScriptedGame(winAt int) *scriptedGame {
	bg := core.NewBitmap(100, 100)
	bg.Fill(core.ColorSky)
	return &scriptedGame{winAt: winAt, bg: bg, holdTime: 100 * time.Millisecond}
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames, g.score, g.outcome = 0, 0, core.OutcomeRunning
}

func (g *scriptedGame) Step(in core.InputFrame, dst core.Surface) core.StepResult {
	g.lastIn = in.Clone()
	dst.Blit(g.bg, g.bg.Rect())
	if in.Has(core.ActionFire) {
		g.score++
	}
	g.frames++
	dst.Present()
	if g.frames == g.winAt {
		g.outcome = core.OutcomeWin
		return core.StepResult{State: g.State(), Hold: g.holdTime}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Outcome:  g.outcome,
		GameOver: g.outcome.Terminal(),
		Frame:    g.frames,
	}
}

func (g *scriptedGame) PlayArea() core.Size { return core.Size{W: 100, H: 100} }
func (g *scriptedGame) FrameRate() int      { return 50 }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 21, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelResetsOnCreate(t *testing.T) {
	g := newScriptedGame(100)
	m := NewModel(g, nil, testConfig(), nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.config.TickRate != 50 {
		t.Errorf("TickRate = %d, want the game frame rate", m.config.TickRate)
	}
	if m.canvas.Rows() != 20 {
		t.Errorf("canvas rows = %d, want one row left for help", m.canvas.Rows())
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := newScriptedGame(100)
	m := NewModel(g, nil, testConfig(), nil)

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Now()))
	if !g.lastIn.IsHeld(core.ActionRight) || !g.lastIn.Has(core.ActionFire) {
		t.Fatalf("first frame input = %+v, want right held and fire", g.lastIn)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if !g.lastIn.IsHeld(core.ActionRight) {
		t.Error("right released after one frame")
	}
	if g.lastIn.Has(core.ActionFire) {
		t.Error("fire repeated on the second frame")
	}

	for range HeldTicks {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if g.lastIn.IsHeld(core.ActionRight) {
		t.Error("right still held without repeats")
	}
}

func TestModelHoldsBannerThenQuits(t *testing.T) {
	g := newScriptedGame(3)
	m := NewModel(g, nil, testConfig(), nil)

	for range 3 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if m.holdLeft != 5 {
		t.Fatalf("holdLeft = %d, want 5 frames for 100ms", m.holdLeft)
	}

	var cmd tea.Cmd
	for range 5 {
		m, cmd = update(t, m, TickMsg(time.Now()))
	}
	if g.frames != 3 {
		t.Errorf("game stepped during hold: frames = %d", g.frames)
	}
	if !m.IsQuitting() || cmd == nil {
		t.Error("model did not quit after the hold")
	}
	if m.View() != "" {
		t.Error("View not empty after quitting")
	}
}

func TestModelEmbeddedReturnsToMenu(t *testing.T) {
	g := newScriptedGame(1)
	m := NewModel(g, nil, testConfig(), nil)
	m.embedded = true

	m, _ = update(t, m, TickMsg(time.Now()))
	for range m.holdLeft {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("BackToMenu = %v, IsQuitting = %v", m.BackToMenu(), m.IsQuitting())
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := newScriptedGame(2)
	m := NewModel(g, store, testConfig(), nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('q'))

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 1 || got.Outcome != "win" || got.Frames != 2 {
		t.Errorf("saved %+v, want score 1, win, 2 frames", got)
	}
}

func TestModelQuitWithoutScoreIsNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewModel(newScriptedGame(100), store, testConfig(), nil)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("ctrl+c did not quit")
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d results for an empty quit", len(scores))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := newScriptedGame(100)
	m := NewModel(g, nil, testConfig(), nil)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 41})

	if g.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.canvas.Cols() != 80 || m.canvas.Rows() != 40 {
		t.Errorf("canvas = %dx%d, want 80x40", m.canvas.Cols(), m.canvas.Rows())
	}
}
