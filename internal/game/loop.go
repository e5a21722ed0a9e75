// SPDX-License-Identifier: MPL-2.0

package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

type (
	// Options configures a Loop. Zero fields take defaults in NewLoop.
	Options struct {
		// Range is the interval the secret is drawn from (default [1, 100]).
		Range Range
		// Source draws the secret (default: a randomly seeded RandomSource).
		Source SecretSource
		// Messages are the texts printed to the console (default: DefaultMessages).
		Messages *Messages
		// Styler decorates console lines (default: PlainStyler).
		Styler Styler
		// Echo repeats every guess back before answering it.
		Echo bool
		// Logger receives one debug record per outcome (default: discard).
		Logger *log.Logger
	}

	// Result summarizes a finished session.
	Result struct {
		// Secret is the value that was guessed.
		Secret uint32
		// Attempts counts parsed guesses. Parse failures are not counted.
		Attempts int
	}

	// Loop drives the read-validate-compare-respond cycle for one session.
	// A Loop is single-use.
	Loop struct {
		in       *bufio.Reader
		out      io.Writer
		rng      Range
		source   SecretSource
		messages Messages
		style    Styler
		echo     bool
		logger   *log.Logger

		state  State
		secret uint32
	}
)

// NewLoop creates a Loop reading lines from in and writing to out.
// It returns an *InvalidRangeError if opts.Range is inverted.
func NewLoop(in io.Reader, out io.Writer, opts Options) (*Loop, error) {
	if opts.Range == (Range{}) {
		opts.Range = DefaultRange()
	}
	if err := opts.Range.Validate(); err != nil {
		return nil, err
	}
	if opts.Source == nil {
		opts.Source = NewRandomSource(0)
	}
	messages := DefaultMessages()
	if opts.Messages != nil {
		messages = *opts.Messages
	}
	if opts.Styler == nil {
		opts.Styler = PlainStyler
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Loop{
		in:       bufio.NewReader(in),
		out:      out,
		rng:      opts.Range,
		source:   opts.Source,
		messages: messages,
		style:    opts.Styler,
		echo:     opts.Echo,
		logger:   opts.Logger,
		state:    StateAwaitingGuess,
	}, nil
}

// State returns the current state of the loop.
func (l *Loop) State() State {
	return l.state
}

// Run plays the session until the secret is guessed.
//
// The secret is drawn once before the first read. Every line that does not
// parse is answered with a re-prompt; every parsed guess gets a directional
// hint until the winning one. After the win the secret is disclosed.
//
// Run returns an *InputStreamError when a line cannot be read, including
// end of input, and the wrapped context error when ctx is done between
// iterations.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if l.state == StateWon {
		return Result{Secret: l.secret}, errors.New("game already finished")
	}

	l.secret = l.source.Draw(l.rng)
	res := Result{Secret: l.secret}
	l.logger.Debug("secret drawn", "range", l.rng.String())

	l.println(LineIntro, l.messages.intro(l.rng))

	for l.state == StateAwaitingGuess {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("game interrupted: %w", err)
		}

		l.println(LinePrompt, l.messages.Prompt)

		raw, err := l.readLine()
		if err != nil {
			l.logger.Debug("input stream failed", "err", err)
			return res, &InputStreamError{Err: err}
		}

		if l.echo {
			l.println(LineEcho, l.messages.echo(strings.TrimSpace(raw)))
		}

		outcome, guess, err := Evaluate(l.secret, raw)
		if err != nil {
			l.logger.Debug("guess rejected", "err", err)
		} else {
			res.Attempts++
			l.logger.Debug("guess evaluated", "guess", guess, "outcome", outcome, "in_range", l.rng.Contains(guess))
		}

		kind, text := l.messages.outcomeLine(outcome)
		l.println(kind, text)

		l.state = l.state.Next(outcome)
	}

	l.println(LineReveal, l.messages.reveal(l.secret))
	return res, nil
}

// readLine returns the next line including its terminator. A last line
// without a terminator is returned as is; the read after it reports io.EOF.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// println writes one styled line. Console writes are fire-and-forget.
func (l *Loop) println(kind LineKind, text string) {
	_, _ = fmt.Fprintln(l.out, l.style(kind, text))
}
