package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/storage"
)

const (
	maxScores   = 100
	boardChrome = 10 // rows taken by title, tabs, stats, border and help
)

var boardColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 8},
	{Title: "Outcome", Width: 8},
	{Title: "Frames", Width: 8},
	{Title: "Date", Width: 14},
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	emptyBoardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap binds scoreboard navigation. It implements help.KeyMap.
type ScoreboardKeyMap struct {
	Up, Down           key.Binding
	NextGame, PrevGame key.Binding
	Back, Quit         key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(label, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	}
	return ScoreboardKeyMap{
		Up:       bind("↑/k", "up", "up", "k"),
		Down:     bind("↓/j", "down", "down", "j"),
		NextGame: bind("tab", "next mode", "tab", "right", "l"),
		PrevGame: bind("S-tab", "prev mode", "shift+tab", "left", "h"),
		Back:     bind("esc/b", "back", "esc", "b"),
		Quit:     bind("q", "quit", "q", "ctrl+c"),
	}
}

type boardExit int

const (
	boardOpen boardExit = iota
	boardBack
	boardQuit
)

// ScoreboardModel pages through the stored results of each game mode.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	active int
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	exit   boardExit
}

func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)

	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		table: table.New(
			table.WithColumns(boardColumns),
			table.WithFocused(true),
			table.WithHeight(boardHeight(height)),
			table.WithStyles(styles),
		),
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		width: width,
	}
	m.load()
	return m
}

func boardHeight(termHeight int) int { return max(termHeight-boardChrome, 3) }

// boardRows renders entries as ranked table rows.
func boardRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			e.Outcome,
			strconv.Itoa(e.Frames),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// load refreshes the board for the active game. Read errors leave it empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.active].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(boardRows(m.scores))
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.games); n > 0 {
		m.active = ((m.active+delta)%n + n) % n
		m.load()
	}
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(boardHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = boardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = boardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.exit != boardOpen {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs[i] = style.Render(g.Title)
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = emptyBoardStyle.Render("No scores recorded yet.\nShoot some bombs!")
	}

	return strings.Join([]string{
		centerText(boardTitleStyle.Render("HIGH SCORES"), m.width),
		"",
		centerText(strings.Join(tabs, " "), m.width),
		"",
		centerText(m.statsLine(), m.width),
		boardBoxStyle.Render(body),
		helpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return ""
	}
	return tabStyle.Render(fmt.Sprintf("%d played  |  %d won  |  %d lost  |  avg %.1f",
		st.GamesCount, st.Wins, st.Losses, st.AvgScore))
}

func (m ScoreboardModel) IsGoingBack() bool { return m.exit == boardBack }
func (m ScoreboardModel) IsQuitting() bool  { return m.exit == boardQuit }

// RunScoreboard reports whether the player asked to return to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
