package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/registry"
	"github.com/vovakirdan/coin-rush/internal/storage"
)

// shutdownGrace bounds how long running sessions get to finish.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath is the host key file. Empty means ~/.coinrush/host_key,
	// generated on first start.
	HostKeyPath string

	// DBPath is the runs database shared by all sessions.
	DBPath string

	// GameID selects the registered game every session plays.
	GameID string

	TickRate    int
	IdleTimeout time.Duration

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the config `coinrush serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.coinrush/scores.db",
		GameID:      "coinrush",
		TickRate:    core.DefaultTickRate,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer runs one independent game per SSH session. The score store is
// the only thing sessions share.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store // nil when the database could not be opened
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer validates cfg, opens the score store and prepares the Wish
// server. Nothing listens until ListenAndServe.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("tui: %w %q", registry.ErrUnknownGame, cfg.GameID)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "coinrush-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	srv.server = server

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "error", err)
	} else {
		srv.store = store
	}

	return srv, nil
}

func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate host key: %w", err)
		}
		path = filepath.Join(home, ".coinrush", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the model of a new session. Sessions without a PTY are
// refused.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "coinrush needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewModel(game, cfg, Options{
		Store:  s.store,
		Logger: s.logger.With("user", sess.User()),
		Player: sess.User(),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionMiddleware logs each session and keeps the live session count.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		active := s.sessions.Add(1)
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String(), "active", active)

		next(sess)

		active = s.sessions.Add(-1)
		s.logger.Info("session ended", "user", sess.User(), "duration", time.Since(started).Round(time.Second), "active", active)
	}
}

// Sessions is the number of connected players.
func (s *SSHServer) Sessions() int {
	return int(s.sessions.Load())
}

// ListenAndServe accepts sessions until ctx is done, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.Sessions())
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions, waits for running ones up to a grace
// period and then closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
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
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
