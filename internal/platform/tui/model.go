package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/host"
	"github.com/vovakirdan/gamevault/internal/registry"
	"github.com/vovakirdan/gamevault/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store  *storage.Store // nil disables recording
	Logger *log.Logger
	Config core.RuntimeConfig

	// Standalone models quit the program on Back instead of handing
	// control back to a parent menu.
	Standalone bool
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	gen        uint64
	game       registry.Game
	session    *host.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	input      core.InputFrame
	state      core.GameState
	keys       *KeyMapper
	logger     *log.Logger
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the game registered under gameID, wired to a
// recording session, and resets it to Ready.
func NewGameModel(gameID string, opts GameOptions) (GameModel, error) {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var rec host.Recorder
	if opts.Store != nil {
		rec = opts.Store
	}
	session := host.NewSession(gameID, gameID, rec, logger)

	game, err := registry.Create(gameID, session.Hooks())
	if err != nil {
		return GameModel{}, err
	}
	game.Reset(cfg)

	return GameModel{
		gen:        nextGen(),
		game:       game,
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		input:      core.NewInputFrame(),
		state:      game.State(),
		keys:       NewKeyMapper(),
		logger:     logger,
		standalone: opts.Standalone,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, m.screen.Width(), &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		// Games draw in board coordinates, so a resize never resets them.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from a stopped game
	if action == core.ActionBack {
		if m.state.GameOver() || m.state.Paused() {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.input.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()
	return m, tickCmd(m.gen, m.game.TickInterval())
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".gamevault", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Plays returns how many rounds were started in this model.
func (m GameModel) Plays() int {
	return m.session.Plays()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own Bubble Tea program.
func Run(gameID string, opts GameOptions) error {
	opts.Standalone = true
	model, err := NewGameModel(gameID, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Breakout follows the mouse
	)

	_, err = p.Run()
	return err
}
