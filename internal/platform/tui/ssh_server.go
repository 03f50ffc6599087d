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
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the multi-user server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.missile/host_key, generated on first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// TickRate is the frame rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns the server defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.missile/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the picker over SSH. Each connection runs its own
// simulation; all of them share one runs database.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	keys   *KeyMapper
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer opens the runs database and prepares the listener. A
// database that cannot be opened disables run saving, not the server.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "missile-ssh",
	})

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		if keyPath = config.UserDir("host_key"); keyPath == "" {
			return nil, errors.New("tui: no home directory for the host key")
		}
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key directory: %w", err)
	}

	s := &SSHServer{cfg: cfg, keys: DefaultKeyMapper(), logger: logger}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("runs will not be saved", "db", cfg.DBPath, "err", err)
	} else {
		s.store = store
	}

	// Middleware runs last to first: log, require a terminal, then the program.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return s, nil
}

func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	// Sound stays off: the speaker belongs to the host.
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(cfg, Options{
		Store:  s.store,
		Keys:   s.keys,
		Logger: s.logger.With("user", user),
		Player: user,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		l.Info("connected", "sessions", s.active.Add(1))
		defer func() {
			l.Info("disconnected", "after", time.Since(start).Truncate(time.Second), "sessions", s.active.Add(-1))
		}()
		next(sess)
	}
}

// Serve accepts connections until ctx is cancelled or the listener fails,
// then shuts down and closes the database.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "addr", s.cfg.Address)

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	var serveErr error
	select {
	case <-ctx.Done():
	case err := <-errc:
		if !errors.Is(err, ssh.ErrServerClosed) {
			serveErr = err
		}
	}

	s.logger.Info("shutting down", "sessions", s.active.Load())
	if err := s.Shutdown(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Shutdown stops accepting sessions and waits briefly for open ones.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
