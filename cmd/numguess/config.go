// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/numguess/numguess/internal/config"
	"github.com/numguess/numguess/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `numguess config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage numguess configuration",
		Long: `Manage numguess configuration.

Configuration is stored in:
  - Linux: ~/.config/numguess/config.cue
  - macOS: ~/Library/Application Support/numguess/config.cue
  - Windows: %APPDATA%\numguess\config.cue

A config.cue in the current directory is used when the file above is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(contextOrBackground(cmd.Context()), flags)
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	ctx = contextOrBackground(ctx)

	var (
		cfg     *config.Config
		cfgPath string
		err     error
	)
	if resolver, ok := app.Config.(configResolver); ok {
		cfg, cfgPath, err = resolver.Resolve(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
		if err != nil {
			cfg, err = app.loadConfig(ctx, flags)
		}
	} else {
		cfg, err = app.loadConfig(ctx, flags)
	}
	if err != nil {
		return err
	}

	w := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("game"))
	fmt.Fprintf(w, "  min: %s\n", valueStyle.Render(fmt.Sprint(cfg.Game.Min)))
	fmt.Fprintf(w, "  max: %s\n", valueStyle.Render(fmt.Sprint(cfg.Game.Max)))
	if cfg.Game.Seed == 0 {
		fmt.Fprintf(w, "  seed: %s\n", SubtitleStyle.Render("(random)"))
	} else {
		fmt.Fprintf(w, "  seed: %s\n", valueStyle.Render(fmt.Sprint(cfg.Game.Seed)))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprint(cfg.UI.Verbose)))
	fmt.Fprintf(w, "  echo_guess: %s\n", valueStyle.Render(fmt.Sprint(cfg.UI.EchoGuess)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("serve"))
	fmt.Fprintf(w, "  host: %s\n", valueStyle.Render(cfg.Serve.Host))
	fmt.Fprintf(w, "  port: %s\n", valueStyle.Render(fmt.Sprint(cfg.Serve.Port)))
	if cfg.Serve.HostKeyPath == "" {
		fmt.Fprintf(w, "  host_key_path: %s\n", SubtitleStyle.Render("(config directory)"))
	} else {
		fmt.Fprintf(w, "  host_key_path: %s\n", valueStyle.Render(cfg.Serve.HostKeyPath))
	}
	fmt.Fprintf(w, "  shutdown_timeout: %s\n", valueStyle.Render(cfg.Serve.ShutdownTimeout.String()))
	if cfg.Serve.Password == "" {
		fmt.Fprintf(w, "  password: %s\n", SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(w, "  password: %s\n", valueStyle.Render("********"))
	}

	return nil
}

func initConfig(w io.Writer) error {
	cfgPath, err := config.CreateDefaultConfig()
	if err != nil {
		return issue.Failed("create default configuration").
			Suggest("Check that the config directory is writable ('numguess config path')").
			Because(err)
	}

	fmt.Fprintf(w, "%s Configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	keyPath, err := config.DefaultHostKeyPath()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", cfgPath)
	fmt.Fprintf(w, "SSH host key: %s\n", keyPath)

	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
