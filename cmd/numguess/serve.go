// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"net"
	"strconv"

	"github.com/numguess/numguess/internal/config"
	"github.com/numguess/numguess/internal/game"
	"github.com/numguess/numguess/internal/issue"
	"github.com/numguess/numguess/internal/sshserver"

	"github.com/spf13/cobra"
)

type serveFlags struct {
	host    string
	port    int
	hostKey string
}

func newServeCommand(app *App, flags *rootFlags) *cobra.Command {
	serve := &serveFlags{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Host games over SSH",
		Long: `Host games over SSH.

Every SSH session plays its own game with its own secret:

  ssh -p 2222 localhost

The server runs until interrupted. Set serve.password in the
configuration to require a password from clients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, app, flags, serve)
		},
	}

	serveCmd.Flags().StringVar(&serve.host, "host", "", "address to bind to (default from config, 127.0.0.1)")
	serveCmd.Flags().IntVar(&serve.port, "port", 0, "port to listen on (default from config, 2222)")
	serveCmd.Flags().StringVar(&serve.hostKey, "host-key", "", "SSH host key file, created when missing")

	return serveCmd
}

// serverConfig merges the configuration with the flags the user set.
func (f *serveFlags) serverConfig(cmd *cobra.Command, cfg *config.Config) sshserver.Config {
	fs := cmd.Flags()

	srvCfg := sshserver.DefaultConfig()
	srvCfg.Host = cfg.Serve.Host
	srvCfg.Port = cfg.Serve.Port
	srvCfg.HostKeyPath = cfg.Serve.HostKeyPath
	srvCfg.Password = cfg.Serve.Password
	if cfg.Serve.ShutdownTimeout > 0 {
		srvCfg.ShutdownTimeout = cfg.Serve.ShutdownTimeout
	}
	srvCfg.Game = game.Options{
		Range:  game.Range{Min: cfg.Game.Min, Max: cfg.Game.Max},
		Source: game.NewRandomSource(cfg.Game.Seed),
		Echo:   cfg.UI.EchoGuess,
	}
	if fs.Changed("host") {
		srvCfg.Host = f.host
	}
	if fs.Changed("port") {
		srvCfg.Port = f.port
	}
	if fs.Changed("host-key") {
		srvCfg.HostKeyPath = f.hostKey
	}

	return srvCfg
}

func runServe(cmd *cobra.Command, app *App, flags *rootFlags, serve *serveFlags) error {
	ctx := contextOrBackground(cmd.Context())

	cfg, err := app.loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	logger := app.newLogger(flags.verbose).WithPrefix("ssh")

	srvCfg := serve.serverConfig(cmd, cfg)
	srvCfg.Logger = logger
	if srvCfg.HostKeyPath == "" {
		if keyPath, keyErr := config.DefaultHostKeyPath(); keyErr == nil {
			srvCfg.HostKeyPath = keyPath
		} else {
			logger.Warn("no config directory, using an ephemeral host key", "err", keyErr)
		}
	}

	srv := sshserver.New(srvCfg)
	if err := srv.Start(ctx); err != nil {
		if flags.verbose {
			app.renderIssue(issue.ServerStartFailedId, cfg.UI.ColorScheme)
		}
		startErr := issue.Failed("start SSH server").
			At(net.JoinHostPort(srvCfg.Host, strconv.Itoa(srvCfg.Port))).
			Suggest("Choose a free port with --port").
			Suggest("Check that game.min is not greater than game.max").
			Because(err)
		return &ExitError{Code: 1, Err: startErr, Message: formatErrorForDisplay(startErr, flags.verbose)}
	}

	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Listening on"), CmdStyle.Render(srv.Address()))
	fmt.Fprintf(app.stdout, "%s\n", SubtitleStyle.Render(fmt.Sprintf("Connect with: ssh -p %d %s", srv.Port(), srvCfg.Host)))

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-srv.Err():
	}

	if err := srv.Stop(); err != nil && serveErr == nil {
		serveErr = err
	}
	if err := srv.Wait(); err != nil && serveErr == nil {
		serveErr = err
	}
	if serveErr != nil {
		return &ExitError{Code: 1, Err: serveErr}
	}

	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Server stopped."))
	return nil
}
