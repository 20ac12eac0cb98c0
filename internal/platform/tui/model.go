package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/storage"
)

// OutcomeQuit is stored for games abandoned before a terminal outcome.
const OutcomeQuit = "quit"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     registry.Game
	canvas   *Canvas
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *HeldKeys
	input    core.InputFrame
	state    core.GameState
	help     help.Model
	holdLeft int // frames left on the end-of-game banner

	embedded   bool // Part of a session: return to the menu instead of quitting
	started    bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewModel resets game and wraps it in a model. A nil store disables score
// saving and a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	cfg.TickRate = game.FrameRate()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		canvas: NewCanvas(game.PlayArea(), cfg.ScreenW, cfg.ScreenH-1),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(),
		input:  core.NewInputFrame(),
		help:   h,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.saveResult(OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.state.Paused || m.holdLeft > 0 {
			m.saveResult(OutcomeQuit)
			return m.finish()
		}
	case core.ActionFire, core.ActionPause:
		m.input.Set(a)
	case core.ActionNone:
	default:
		m.held.Press(a)
	}
	return m, nil
}

// handleResize refits the canvas. The play area never changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// The last frame stays on screen while the banner is held.
	if m.holdLeft > 0 {
		m.holdLeft--
		if m.holdLeft == 0 {
			return m.finish()
		}
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.input)
	result := m.game.Step(m.input, m.canvas)
	m.input.Clear()
	m.state = result.State
	m.started = true

	if m.state.Outcome.Terminal() {
		m.logger.Info("game over",
			"game", m.game.ID(),
			"outcome", m.state.Outcome,
			"score", m.state.Score,
			"frames", m.state.Frame,
		)
		m.saveResult(m.state.Outcome.String())
		m.held.Release()
		m.holdLeft = holdTicks(result.Hold, m.config.TickRate)
	}
	return m, tickCmd(m.config.TickRate)
}

// finish leaves the game: back to the menu inside a session, quit otherwise.
func (m Model) finish() (tea.Model, tea.Cmd) {
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveResult stores the result once. Abandoned games are only kept when
// they scored.
func (m *Model) saveResult(outcome string) {
	if m.saved || m.store == nil || !m.started {
		return
	}
	if outcome == OutcomeQuit && m.state.Score == 0 {
		return
	}
	m.saved = true
	id, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Score:   m.state.Score,
		Outcome: outcome,
		Frames:  m.state.Frame,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "game", m.game.ID(), "score", m.state.Score)
}

// saveScreenshot writes the last frame as plain text to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View shows the last presented frame and the help bar.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return m.canvas.Frame() + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the game is over inside a session.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until it ends or the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
