// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/numguess/numguess/internal/config"
	"github.com/numguess/numguess/internal/game"
	"github.com/numguess/numguess/internal/issue"

	"github.com/spf13/cobra"
)

// playFlags are the game flags accepted by both the root and play commands.
type playFlags struct {
	min    uint32
	max    uint32
	seed   uint64
	secret uint32
	noEcho bool
}

func (f *playFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Uint32Var(&f.min, "min", 0, "lowest possible secret (default from config, 1)")
	fs.Uint32Var(&f.max, "max", 0, "highest possible secret (default from config, 100)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible secrets (0 = random)")
	fs.BoolVar(&f.noEcho, "no-echo", false, "do not repeat guesses back")
	fs.Uint32Var(&f.secret, "secret", 0, "use a fixed secret (debugging)")
	_ = fs.MarkHidden("secret")
}

// gameOptions merges the configuration with the flags the user set.
func (f *playFlags) gameOptions(cmd *cobra.Command, cfg *config.Config) game.Options {
	fs := cmd.Flags()

	rng := game.Range{Min: cfg.Game.Min, Max: cfg.Game.Max}
	if fs.Changed("min") {
		rng.Min = f.min
	}
	if fs.Changed("max") {
		rng.Max = f.max
	}

	seed := cfg.Game.Seed
	if fs.Changed("seed") {
		seed = f.seed
	}

	var source game.SecretSource = game.NewRandomSource(seed)
	if fs.Changed("secret") {
		source = game.FixedSource(f.secret)
	}

	return game.Options{
		Range:  rng,
		Source: source,
		Echo:   cfg.UI.EchoGuess && !f.noEcho,
	}
}

func newPlayCommand(app *App, flags *rootFlags) *cobra.Command {
	play := &playFlags{}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game on this terminal",
		Long: `Play a game on this terminal.

Type one number per line. The game ends when you find the secret.
Closing the input (Ctrl+D) abandons the game with exit status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, app, flags, play)
		},
	}
	play.register(playCmd)

	return playCmd
}

func runPlay(cmd *cobra.Command, app *App, flags *rootFlags, play *playFlags) error {
	ctx := contextOrBackground(cmd.Context())

	cfg, err := app.loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	logger := app.newLogger(flags.verbose)

	opts := play.gameOptions(cmd, cfg)
	opts.Styler = gameStyler(isTerminal(app.stdout))
	opts.Logger = logger

	loop, err := game.NewLoop(app.stdin, app.stdout, opts)
	if err != nil {
		if flags.verbose {
			app.renderIssue(issue.InvalidRangeId, cfg.UI.ColorScheme)
		}
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("game started", "range", opts.Range.String())
	res, err := runLoop(ctx, loop)
	if err != nil {
		if errors.Is(err, game.ErrInputStream) && flags.verbose {
			app.renderIssue(issue.InputStreamClosedId, cfg.UI.ColorScheme)
		}
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("game won", "attempts", res.Attempts)
	return nil
}

// runLoop runs the loop in the background so that an interrupt does not wait
// for the pending console read.
func runLoop(ctx context.Context, loop *game.Loop) (game.Result, error) {
	type outcome struct {
		res game.Result
		err error
	}

	if err := ctx.Err(); err != nil {
		return game.Result{}, fmt.Errorf("game interrupted: %w", err)
	}

	done := make(chan outcome, 1)
	go func() {
		res, err := loop.Run(ctx)
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return game.Result{}, fmt.Errorf("game interrupted: %w", ctx.Err())
	}
}
