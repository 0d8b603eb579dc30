// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/logging"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arkanoid/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arkanoid/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves Arkanoid sessions over SSH with Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	live   atomic.Int32 // Sessions currently connected
}

// NewSSHServer opens the score store and prepares the Wish server. A store
// that cannot be opened only disables score saving.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	srv := &SSHServer{config: cfg, logger: cfg.Logger}
	if srv.logger == nil {
		srv.logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "arkanoid-ssh"})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		srv.logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	// Middlewares run last to first: sessions are logged, then checked
	// for a terminal, then handed to bubbletea.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.trackSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the host key location, defaulting to
// ~/.arkanoid/host_key, and creates its directory.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".arkanoid", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the session model sized to the client's terminal.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
	}
	return NewSessionModel(s.store, cfg, sess.User(), s.logger),
		programOptions()
}

// trackSessions logs each connection with its length and the number of
// players online.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		l.Info("session started", "online", s.live.Add(1))
		defer func() {
			l.Info("session ended", "online", s.live.Add(-1), "duration", time.Since(start).Round(time.Second))
		}()
		next(sess)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down. A
// listener failure is returned directly.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down", "online", s.live.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions and waits up to ten seconds for open
// ones to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("close scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	logger    *log.Logger
	menu      MenuModel
	gameModel *Model
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		logger:   logger.With("user", username),
		menu:     NewMenuModel(store, cfg, true),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu forwards msg to the title screen and starts the picked mode.
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
		// The scoreboard runs as its own program, which a session cannot host.
		return m.resetMenu(), nil
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	m.config = m.menu.Config()
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("create game", "game", id, "error", err)
		return m.resetMenu(), nil
	}

	gm := NewModel(game, m.config, Options{Store: m.store, Logger: m.logger, Player: m.username})
	if err := gm.Err(); err != nil {
		m.logger.Error("start game", "game", id, "error", err)
		return m.resetMenu(), nil
	}
	gm.embedded = true
	m.gameModel, m.inGame = &gm, true
	m.logger.Info("game started", "game", id)
	return m, gm.Init()
}

func (m SessionModel) resetMenu() SessionModel {
	m.inGame, m.gameModel = false, nil
	m.menu = NewMenuModel(m.store, m.config, true)
	return m
}

// updateGame forwards msg to the running game until it ends or the
// player backs out to the title screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(Model); ok {
		m.gameModel = &gm
	}

	switch {
	case m.gameModel.BackToMenu():
		m.logger.Info("game left", "game", m.gameModel.game.ID(), "score", m.gameModel.gameState.Score)
		m = m.resetMenu()
		return m, m.menu.Init()
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}
