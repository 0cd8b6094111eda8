package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gamevault/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FPS is the frame rate for per-frame games.
	FPS int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		FPS:         60,
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. store and cat may be nil, which
// disables score recording and the catalog browser respectively.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, cat *catalog.Catalog, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "gamevault-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		catalog: cat,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".gamevault", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.FPS,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, s.catalog, cfg, s.logger.With("user", sshSession.User()))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. The store belongs to the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
	screenBrowse
)

// SessionModel manages the full session flow: menu -> game -> menu, plus
// the scoreboard and the catalog browser. It is the top-level model for
// SSH sessions.
type SessionModel struct {
	store   *storage.Store
	catalog *catalog.Catalog
	logger  *log.Logger
	config  core.RuntimeConfig
	screen  screen

	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	browser    BrowseModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cat *catalog.Catalog, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:   store,
		catalog: cat,
		logger:  logger,
		config:  cfg,
		menu:    NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenBrowse:
		return m.updateBrowser(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Children quit with tea.Quit when they finish. Inside a session that
// would end the whole connection, so their commands are dropped on exit.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		return m.openScores()
	case m.menu.WantsBrowser() && m.catalog != nil:
		return m.openBrowser()
	case m.menu.WantsBrowser():
		m.menu = NewMenuModel(m.config)
		return m, nil
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := NewGameModel(gameID, GameOptions{
		Store:  m.store,
		Logger: m.logger,
		Config: m.config,
	})
	if err != nil {
		m.logger.Error("could not start game", "game", gameID, "error", err)
		return m.backToMenu()
	}
	m.game = game
	m.screen = screenGame
	m.logger.Info("game started", "game", gameID)
	return m, m.game.Init()
}

func (m SessionModel) openScores() (tea.Model, tea.Cmd) {
	m.scoreboard = NewScoreboardModel(scoreSource(m.store), m.config.ScreenW, m.config.ScreenH)
	m.screen = screenScores
	return m, m.scoreboard.Init()
}

func (m SessionModel) openBrowser() (tea.Model, tea.Cmd) {
	m.browser = NewBrowseModel(m.catalog, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenBrowse
	return m, m.browser.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.logger.Info("game left", "game", m.game.game.ID(), "plays", m.game.Plays())
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.browser.Update(msg)
	if b, ok := next.(BrowseModel); ok {
		m.browser = b
	}

	switch {
	case m.browser.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.browser.Selected() != "":
		return m.startGame(m.browser.Selected())
	case m.browser.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	case screenBrowse:
		return m.browser.View()
	default:
		return m.menu.View()
	}
}
