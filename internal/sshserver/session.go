// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"fmt"
	"io"

	"github.com/numguess/numguess/internal/game"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/term"
)

// gameMiddleware plays one game per session. It is the terminal handler and
// never calls next.
func (s *Server) gameMiddleware() wish.Middleware {
	return func(_ ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.active.Add(1)
			code := s.play(sess)
			s.active.Add(-1)
			s.played.Add(1)

			_ = sess.Exit(code) //nolint:errcheck // Terminal operation; error non-critical
		}
	}
}

// play runs the game on the session and returns its exit status.
func (s *Server) play(sess ssh.Session) int {
	logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

	var (
		in  io.Reader = sess
		out io.Writer = sess
	)
	if ptyReq, winCh, isPty := sess.Pty(); isPty {
		t := term.NewTerminal(sess, "")
		_ = t.SetSize(ptyReq.Window.Width, ptyReq.Window.Height)
		go func() {
			for win := range winCh {
				_ = t.SetSize(win.Width, win.Height)
			}
		}()
		in = &terminalReader{t: t}
		out = t
	}

	opts := s.cfg.Game
	opts.Logger = logger

	loop, err := game.NewLoop(in, out, opts)
	if err != nil {
		_, _ = fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		return 1
	}

	logger.Info("session started")
	res, err := loop.Run(sess.Context())
	if err != nil {
		logger.Info("session ended without a win", "err", err)
		return 1
	}

	logger.Info("session won", "attempts", res.Attempts)
	return 0
}

// terminalReader turns a line-editing terminal into the newline-terminated
// stream the game reads. ReadLine handles echo and the carriage return sent
// by PTY clients.
type terminalReader struct {
	t   *term.Terminal
	buf []byte
}

func (r *terminalReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, err := r.t.ReadLine()
		if err != nil {
			return 0, err
		}
		r.buf = append([]byte(line), '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
