// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/numguess/numguess/internal/config"
	"github.com/numguess/numguess/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command handlers
	// receive an App reference and read configuration and streams through it.
	App struct {
		Config ConfigProvider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// configResolver is implemented by providers that can report the file
	// a configuration was read from.
	configResolver interface {
		Resolve(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// rootFlags holds the persistent flags shared by every command.
	rootFlags struct {
		verbose    bool
		configPath string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// loadConfig loads the configuration honoring --config, and folds ui.verbose
// into the verbose flag.
func (a *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		if flags.verbose {
			a.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		}
		// fang prints the returned error once; carry the suggestions in it.
		return nil, &ExitError{Code: 1, Err: err, Message: formatErrorForDisplay(err, flags.verbose)}
	}
	if cfg.UI.Verbose {
		flags.verbose = true
	}
	return cfg, nil
}

// newLogger returns the stderr logger: Debug when verbose, Warn otherwise.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
}

// renderIssue writes the glamour-rendered help page for id to stderr.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	page := issue.Get(id)
	if page == nil {
		return
	}
	rendered, err := page.Render(scheme.GlamourStyle())
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
