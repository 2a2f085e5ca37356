// Package tui connects the snake game to real terminals: the local
// controlling terminal and SSH sessions served with Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the configuration every session plays with.
	Game config.SnakeConfig

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultSnakeConfig(),
	}
}

// SSHServer serves one snake game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	keys   KeyMap
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		keys:   NewKeyMap(cfg.Game.Keys),
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware plays one game on the session.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if err := s.play(sess); err != nil {
			s.logger.Error("game failed", "user", sess.User(), "error", err)
			fmt.Fprintf(sess.Stderr(), "snake: %v\r\n", err)
			_ = sess.Exit(1)
			return
		}
		next(sess)
	}
}

func (s *SSHServer) play(sess ssh.Session) error {
	pty, windows, ok := sess.Pty()
	if !ok {
		return errors.New("no PTY requested")
	}
	logger := s.logger.With("user", sess.User())

	terminal := newSessionTerminal(sess.Context(), sess, pty, windows)
	input, err := NewInput(sess, s.keys, logger)
	if err != nil {
		return err
	}
	defer input.Close()

	game, err := snake.New(snake.Options{
		Config:   s.config.Game,
		Terminal: terminal,
		Renderer: NewOutput(sess, bubbletea.MakeRenderer(sess)),
		Commands: input,
		Seed:     time.Now().UnixNano(),
		Logger:   logger,
		HelpLine: s.keys.HelpLine(),
	})
	if err != nil {
		return err
	}

	res, err := game.Run(sess.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(sess, "%s: length %d, %d items eaten\r\n", res.Outcome, res.Length, res.ItemsEaten)
	return nil
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

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionTerminal is the client's terminal seen through an SSH session.
// The client switches its terminal to raw mode when it allocates the PTY,
// so entering and leaving raw mode are no-ops here.
type sessionTerminal struct {
	w io.Writer

	mu   sync.Mutex
	cols int
	rows int
}

func newSessionTerminal(ctx context.Context, w io.Writer, pty ssh.Pty, windows <-chan ssh.Window) *sessionTerminal {
	t := &sessionTerminal{w: w, cols: pty.Window.Width, rows: pty.Window.Height}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case win, ok := <-windows:
				if !ok {
					return
				}
				t.mu.Lock()
				t.cols, t.rows = win.Width, win.Height
				t.mu.Unlock()
			}
		}
	}()
	return t
}

func (t *sessionTerminal) EnterRawMode() error { return nil }
func (t *sessionTerminal) ExitRawMode() error  { return nil }

func (t *sessionTerminal) SetViewportSize(rows, cols int) error {
	return writeViewportSize(t.w, rows, cols)
}

func (t *sessionTerminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols, t.rows, nil
}
