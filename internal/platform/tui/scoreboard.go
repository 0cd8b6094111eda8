package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamevault/internal/registry"
	"github.com/vovakirdan/gamevault/internal/storage"
	"github.com/vovakirdan/gamevault/internal/view"
)

const (
	maxScores        = 100
	tabsMinWidth     = 60 // Below this only the current game is shown
	scoreboardChrome = 11 // Rows used by title, tabs, summary, help and borders
)

// ScoreSource provides leaderboard rows. *storage.Store satisfies it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// scoreSource keeps a nil *storage.Store from becoming a non-nil interface.
func scoreSource(s *storage.Store) ScoreSource {
	if s == nil {
		return nil
	}
	return s
}

// scoresLoadedMsg carries the result of an asynchronous score query.
type scoresLoadedMsg struct {
	gameID string
	scores []storage.ScoreEntry
	err    error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardModel shows the leaderboard of one registered game at a time.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	store   ScoreSource
	scores  view.State[storage.ScoreEntry]

	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. Scores load
// asynchronously once the program starts.
func NewScoreboardModel(store ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:   registry.List(),
		store:   store,
		scores:  view.Loading[storage.ScoreEntry](),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = newScoreTable(width, height)
	return m
}

// newScoreTable sizes the rank/score/date table to the terminal.
func newScoreTable(width, height int) table.Model {
	dateW := min(20, max(12, width-30))
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-scoreboardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// currentGame returns the selected game ID, or "" when none is registered.
func (m *ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// selectGame moves the cursor and starts loading that game's scores.
func (m *ScoreboardModel) selectGame(i int) tea.Cmd {
	if len(m.games) == 0 {
		return nil
	}
	m.current = (i + len(m.games)) % len(m.games)
	m.scores = view.Loading[storage.ScoreEntry]()
	return tea.Batch(m.loadScores(m.currentGame()), m.spinner.Tick)
}

// loadScores queries scores for gameID off the update loop.
func (m *ScoreboardModel) loadScores(gameID string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil || gameID == "" {
			return scoresLoadedMsg{gameID: gameID}
		}
		scores, err := store.TopScores(gameID, maxScores)
		return scoresLoadedMsg{gameID: gameID, scores: scores, err: err}
	}
}

// fillTable copies the loaded scores into the table.
func (m *ScoreboardModel) fillTable() {
	scores := m.scores.Items()
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init starts loading the first game's scores.
func (m ScoreboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadScores(m.currentGame()), m.spinner.Tick)
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.selectGame(m.current + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.selectGame(m.current - 1)
		case key.Matches(msg, m.keys.Scroll):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case scoresLoadedMsg:
		// Results for a game the user already moved past are stale
		if msg.gameID != m.currentGame() {
			return m, nil
		}
		m.scores = view.FromResult(msg.scores, msg.err)
		m.fillTable()
		return m, nil

	case spinner.TickMsg:
		if !m.scores.IsLoading() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.fillTable()
		return m, nil
	}

	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(scoreTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(scoreBoxStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	if summary := m.summary(); summary != "" {
		b.WriteString(centerText(menuDimStyle.Render(summary), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists the games with the current one highlighted, or just the
// current game between arrows when the terminal is narrow.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	if m.width < tabsMinWidth {
		return fmt.Sprintf("< %s >", m.games[m.current].Title)
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = browseActiveStyle.Render(g.Title)
		} else {
			parts[i] = browseTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ScoreboardModel) body() string {
	return view.Match(m.scores,
		func() string {
			return scoreNoteStyle.Render(m.spinner.View() + " Loading scores...")
		},
		func([]storage.ScoreEntry) string {
			return m.table.View()
		},
		func() string {
			return scoreNoteStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
		},
	)
}

// summary reports the best and average of the loaded scores.
func (m ScoreboardModel) summary() string {
	scores := m.scores.Items()
	if len(scores) == 0 {
		return ""
	}
	best, total := 0, 0
	for _, s := range scores {
		best = max(best, s.Score)
		total += s.Score
	}
	return fmt.Sprintf("Best %d  ·  Average %d  ·  %d runs", best, total/len(scores), len(scores))
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(scoreSource(store), width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
