// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/numguess/numguess/internal/game"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

type (
	// Server hosts one game per SSH session. It moves through the states in
	// state.go exactly once; a stopped or failed Server cannot be restarted.
	Server struct {
		cfg    Config
		logger *log.Logger

		state atomic.Int32

		// mu guards everything set by Start and read by the accessors.
		mu       sync.Mutex
		srv      *ssh.Server
		listener net.Listener
		addr     string
		err      error

		wg   sync.WaitGroup
		errs chan error

		active atomic.Int64
		played atomic.Int64
	}

	// Config describes the arena. Zero values are filled in by New.
	Config struct {
		// Host to bind, 127.0.0.1 when empty.
		Host string
		// Port to bind; 0 picks a free one.
		Port int
		// HostKeyPath is generated on first start when missing. Empty uses a
		// throwaway key for this process.
		HostKeyPath string
		// Password required from clients. Empty lets everyone in.
		Password string
		// ShutdownTimeout is how long Stop waits for running games before
		// disconnecting them.
		ShutdownTimeout time.Duration
		// StartupTimeout bounds binding the listener.
		StartupTimeout time.Duration
		// Game is copied for every session. Source is shared between sessions
		// and Logger is replaced with a per-session one.
		Game game.Options
		// Logger for arena events; stderr with an "ssh" prefix when nil.
		Logger *log.Logger
	}
)

// DefaultConfig is the arena on 127.0.0.1:2222 with the default range.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            2222,
		ShutdownTimeout: 10 * time.Second,
		StartupTimeout:  5 * time.Second,
		Game:            game.Options{Range: game.DefaultRange(), Echo: true},
	}
}

// New returns an unstarted Server.
func New(cfg Config) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = 5 * time.Second
	}
	if cfg.Game.Source == nil {
		cfg.Game.Source = game.NewRandomSource(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ssh"})
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		errs:   make(chan error, 1),
	}
	s.state.Store(int32(StateCreated))
	return s
}

// Start binds the listener and begins accepting sessions in the background.
// It returns once the arena accepts connections or has failed; runtime
// failures are delivered on Err.
func (s *Server) Start(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("cannot start server in state %s", s.State())
	}
	if err := ctx.Err(); err != nil {
		return s.fail(fmt.Errorf("context cancelled before start: %w", err))
	}
	if err := s.cfg.Game.Range.Validate(); err != nil {
		return s.fail(err)
	}

	listenCtx, cancel := context.WithTimeout(ctx, s.cfg.StartupTimeout)
	defer cancel()

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	var lc net.ListenConfig
	listener, err := lc.Listen(listenCtx, "tcp", addr)
	if err != nil {
		return s.fail(fmt.Errorf("failed to listen on %s: %w", addr, err))
	}

	srv, err := wish.NewServer(s.options(addr)...)
	if err != nil {
		_ = listener.Close()
		return s.fail(fmt.Errorf("failed to create SSH server: %w", err))
	}

	s.mu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.serve(srv, listener)

	if !s.state.CompareAndSwap(int32(StateStarting), int32(StateRunning)) {
		return fmt.Errorf("server left %s while starting", StateStarting)
	}
	s.logger.Info("SSH arena started", "address", s.Address())
	return nil
}

// options returns the wish options for the configured host key and auth.
func (s *Server) options(addr string) []ssh.Option {
	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(s.gameMiddleware()),
	}

	if s.cfg.HostKeyPath != "" {
		if err := os.MkdirAll(filepath.Dir(s.cfg.HostKeyPath), 0o700); err != nil {
			s.logger.Warn("cannot create host key directory", "path", s.cfg.HostKeyPath, "err", err)
		}
		opts = append(opts, wish.WithHostKeyPath(s.cfg.HostKeyPath))
	}

	if s.cfg.Password != "" {
		opts = append(opts,
			wish.WithPasswordAuth(s.checkPassword),
			wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool { return false }),
		)
	}

	return opts
}

// serve blocks in Serve until the listener closes.
func (s *Server) serve(srv *ssh.Server, listener net.Listener) {
	defer s.wg.Done()

	err := srv.Serve(listener)
	if err == nil || errors.Is(err, ssh.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
		return
	}

	s.logger.Error("SSH arena stopped accepting sessions", "err", err)
	select {
	case s.errs <- fmt.Errorf("serve error: %w", err):
	default:
	}
}

// Stop closes the listener and waits up to ShutdownTimeout for running games,
// then disconnects the rest. Calling it again, or on a server that never
// started, is a no-op.
func (s *Server) Stop() error {
	for {
		current := s.State()
		switch current {
		case StateStopped, StateFailed:
			return nil
		case StateCreated:
			if s.state.CompareAndSwap(int32(StateCreated), int32(StateStopped)) {
				return nil
			}
		case StateStopping:
			s.wg.Wait()
			return nil
		case StateStarting, StateRunning:
			if s.state.CompareAndSwap(int32(current), int32(StateStopping)) {
				return s.shutdown()
			}
		default:
			return fmt.Errorf("unknown server state: %d", current)
		}
	}
}

func (s *Server) shutdown() error {
	s.mu.Lock()
	srv, listener := s.srv, s.listener
	s.mu.Unlock()

	var err error
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		err = srv.Shutdown(ctx)
		cancel()

		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("shutdown timeout, disconnecting players", "active", s.ActiveSessions())
			err = srv.Close()
		}
		if errors.Is(err, net.ErrClosed) {
			err = nil
		}
		if err != nil {
			s.logger.Error("shutdown error", "err", err)
		}
	}
	if listener != nil {
		_ = listener.Close()
	}

	s.wg.Wait()
	s.state.Store(int32(StateStopped))
	close(s.errs)

	s.logger.Info("SSH arena stopped", "played", s.PlayedSessions())
	return err
}

// fail records err, moves to StateFailed and reports err on Err.
func (s *Server) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	s.state.Store(int32(StateFailed))
	select {
	case s.errs <- err:
	default:
	}
	return err
}

// Err delivers errors that stop the arena after Start returned. It is closed
// by Stop.
func (s *Server) Err() <-chan error {
	return s.errs
}

// Wait blocks until the accept loop has ended and returns the start failure,
// if any.
func (s *Server) Wait() error {
	s.wg.Wait()
	if s.State() != StateFailed {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

func (s *Server) IsRunning() bool {
	return s.State() == StateRunning
}

// Address is the bound host:port, empty until Start succeeds.
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Port is the bound port, 0 until Start succeeds.
func (s *Server) Port() int {
	_, port, err := net.SplitHostPort(s.Address())
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0
	}
	return n
}

// ActiveSessions counts games in progress.
func (s *Server) ActiveSessions() int {
	return int(s.active.Load())
}

// PlayedSessions counts finished sessions, won or not.
func (s *Server) PlayedSessions() int {
	return int(s.played.Load())
}

func (s *Server) checkPassword(ctx ssh.Context, password string) bool {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1 {
		return true
	}
	s.logger.Warn("rejected password", "user", ctx.User(), "remote", ctx.RemoteAddr().String())
	return false
}
