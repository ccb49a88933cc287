package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/services"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// Defaults for `showkey serve`
const (
	DefaultHost = "localhost"
	DefaultPort = "23234"
)

// Config holds the listener and key locations
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Port               string
}

// Server serves the keybinding viewer over SSH, one TUI per session.
// Every session reads the same immutable store.
type Server struct {
	cfg        Config
	options    ui.Options
	search     *services.SearchService
	store      *domain.BindingStore
	usage      *services.UsageService
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, store *domain.BindingStore, search *services.SearchService, options ui.Options) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		options: options,
		search:  search,
		store:   store,
		usage:   options.Usage,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.usageMiddleware(),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// Start starts the SSH server and blocks until ctx is done or a signal arrives
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.Address(), "bindings", s.store.Len())
	fmt.Printf("SSH server listening on %s\n", s.Address())

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
	case <-ctx.Done():
	}
	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

// usageMiddleware flushes usage recorded by a session once its TUI has exited
func (s *Server) usageMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			next(sess)
			if !s.usage.Enabled() || s.usage.Pending() == 0 {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.usage.Flush(ctx); err != nil {
				logging.Logger.Warn("Failed to record usage for SSH session", "error", err, "user", sess.User())
			}
		}
	}
}
