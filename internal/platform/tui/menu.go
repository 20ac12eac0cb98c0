package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuTitle = "F I G H T   K O K A T O N"

var modeBlurbs = map[string]string{
	"kokaton":         "shoot down every bomb before the timer runs out",
	"kokaton_endless": "waves keep coming, faster each time",
}

// MenuItem is one playable mode and its best stored score.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

// MenuModel picks a game mode.
type MenuModel struct {
	items  []MenuItem
	cursor int
	choice menuChoice
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
}

func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		it := MenuItem{GameID: info.ID, Title: info.Title}
		if store != nil {
			// A missing or unreadable score just leaves the column blank.
			if best, err := store.HighScore(info.ID); err == nil {
				it.Best = best
			}
		}
		items = append(items, it)
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper(), help: help.New()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			m.choice = choicePlay
		case MenuActionScoreboard:
			m.choice = choiceScores
		case MenuActionQuit, MenuActionBack:
			m.choice = choiceQuit
		default:
			return m, nil
		}
		if m.choice != choiceNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}
	w := m.config.ScreenW
	lines := []string{
		"",
		centerText(menuTitleStyle.Render(menuTitle), w),
		"",
		centerText("Dodge the bombs, shoot them down", w),
		"",
	}
	for i, it := range m.items {
		label := it.Title
		if it.Best > 0 {
			label += fmt.Sprintf("  (best %d)", it.Best)
		}
		if i == m.cursor {
			lines = append(lines, centerText(menuCursor.Render("> "+label), w))
			if blurb, ok := modeBlurbs[it.GameID]; ok {
				lines = append(lines, centerText(menuDimStyle.Render(blurb), w))
			}
			continue
		}
		lines = append(lines, centerText("  "+label, w))
	}
	lines = append(lines,
		"",
		centerText(menuDimStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), w),
		centerText(m.help.View(m.keys.Keys()), w),
	)
	return strings.Join(lines, "\n") + "\n"
}

// Selected is the chosen item, nil until Enter is pressed.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay {
		return nil
	}
	it := m.items[m.cursor]
	return &it
}

func (m MenuModel) IsQuitting() bool      { return m.choice == choiceQuit }
func (m MenuModel) WantsScoreboard() bool { return m.choice == choiceScores }

// Config carries terminal resizes back to the caller.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text to the middle of width printable cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the player picked in a standalone menu run.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	if sel := m.Selected(); sel != nil {
		res.GameID = sel.GameID
	} else if !res.WantsScoreboard {
		res.Quit = true
	}
	return res, nil
}
