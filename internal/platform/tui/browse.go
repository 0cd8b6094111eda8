package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/registry"
	"github.com/vovakirdan/gamevault/internal/view"
)

const browseLimit = 12

// browseSection is one tab of the catalog browser.
type browseSection struct {
	title string
	load  func() ([]catalog.Game, error)
	state view.State[catalog.Game]
}

// gamesLoadedMsg carries the result of loading one section.
type gamesLoadedMsg struct {
	section int
	games   []catalog.Game
	err     error
}

var (
	browseTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	browseActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	browseLocalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// BrowseModel lists catalog sections: featured, trending, new and one tab
// per category. Selecting a locally playable game ends the browser with
// that game's registry ID.
type BrowseModel struct {
	sections []browseSection
	tab      int
	cursor   int
	spinner  spinner.Model
	keys     *KeyMapper
	width    int
	height   int

	selected  string
	goingBack bool
	quitting  bool
}

// NewBrowseModel creates a browser over c.
func NewBrowseModel(c *catalog.Catalog, width, height int) BrowseModel {
	sections := []browseSection{
		{title: "Featured", load: func() ([]catalog.Game, error) { return c.Featured(browseLimit) }},
		{title: "Trending", load: func() ([]catalog.Game, error) { return c.Trending(browseLimit) }},
		{title: "New", load: func() ([]catalog.Game, error) { return c.New(browseLimit) }},
	}
	for _, cat := range c.Categories() {
		slug := cat.Slug
		sections = append(sections, browseSection{
			title: cat.Name,
			load: func() ([]catalog.Game, error) {
				_, games, err := c.Category(slug)
				return games, err
			},
		})
	}

	return BrowseModel{
		sections: sections,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:     NewKeyMapper(),
		width:    width,
		height:   height,
	}
}

func (m BrowseModel) loadSection(i int) tea.Cmd {
	load := m.sections[i].load
	return func() tea.Msg {
		games, err := load()
		return gamesLoadedMsg{section: i, games: games, err: err}
	}
}

// Init starts loading every section.
func (m BrowseModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for i := range m.sections {
		cmds = append(cmds, m.loadSection(i))
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the browser.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gamesLoadedMsg:
		if msg.section >= 0 && msg.section < len(m.sections) {
			m.sections[msg.section].state = view.FromResult(msg.games, msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.sections) == 0 {
		m.goingBack = true
		return m, tea.Quit
	}
	items := m.sections[m.tab].state.Items()

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.goingBack = true
		return m, tea.Quit
	case MenuActionLeft:
		m.tab = (m.tab - 1 + len(m.sections)) % len(m.sections)
		m.cursor = 0
	case MenuActionRight, MenuActionScoreboard:
		m.tab = (m.tab + 1) % len(m.sections)
		m.cursor = 0
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(items) && items[m.cursor].IsLocal() {
			id := items[m.cursor].Local
			if registry.Exists(id) {
				m.selected = id
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m BrowseModel) anyLoading() bool {
	for _, s := range m.sections {
		if s.state.IsLoading() {
			return true
		}
	}
	return false
}

// View renders the browser.
func (m BrowseModel) View() string {
	if m.quitting || m.goingBack || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("CATALOG"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		if i == m.tab {
			tabs[i] = browseActiveStyle.Render(s.title)
		} else {
			tabs[i] = browseTabStyle.Render(s.title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	if len(m.sections) > 0 {
		b.WriteString(m.renderSection(m.sections[m.tab]))
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Left/Right: Section  |  Up/Down: Navigate  |  Enter: Play  |  B: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m BrowseModel) renderSection(s browseSection) string {
	return view.Match(s.state,
		func() string {
			return centerText(m.spinner.View()+" Loading games...", m.width) + "\n"
		},
		func(games []catalog.Game) string {
			var b strings.Builder
			for i, g := range games {
				cursor := "  "
				if i == m.cursor {
					cursor = "> "
				}
				line := fmt.Sprintf("%s%-20s %-10s %6d plays", cursor, g.Title, g.CategoryName, g.Plays)
				if g.IsLocal() {
					line += browseLocalStyle.Render("  [play here]")
				}
				b.WriteString(centerText(line, m.width))
				b.WriteString("\n")
			}
			if m.cursor < len(games) && games[m.cursor].Description != "" {
				b.WriteString("\n")
				b.WriteString(centerText(menuDimStyle.Render(games[m.cursor].Description), m.width))
				b.WriteString("\n")
			}
			return b.String()
		},
		func() string {
			return centerText(menuDimStyle.Render("No games found."), m.width) + "\n"
		},
	)
}

// Selected returns the registry ID of the chosen game, or "".
func (m BrowseModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BrowseModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowseModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the catalog browser and returns the chosen game ID.
// An empty ID with goBack false means the user quit.
func RunBrowser(c *catalog.Catalog, width, height int) (gameID string, goBack bool, err error) {
	p := tea.NewProgram(NewBrowseModel(c, width, height), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := finalModel.(BrowseModel)
	if !ok {
		return "", false, nil
	}
	return m.Selected(), m.IsGoingBack(), nil
}
