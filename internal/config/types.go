// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It collects every field-level error found by Validate.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Game configures how secrets are drawn
		Game GameConfig `json:"game" mapstructure:"game"`
		// UI configures the console output
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Serve configures the SSH arena
		Serve ServeConfig `json:"serve" mapstructure:"serve"`
	}

	// GameConfig configures the secret range and the random source.
	GameConfig struct {
		// Min is the lowest possible secret (default: 1)
		Min uint32 `json:"min" mapstructure:"min"`
		// Max is the highest possible secret (default: 100)
		Max uint32 `json:"max" mapstructure:"max"`
		// Seed makes the secrets reproducible when non-zero (default: 0, random)
		Seed uint64 `json:"seed" mapstructure:"seed"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light")
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging on stderr
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// EchoGuess repeats each guess before answering it (default: true)
		EchoGuess bool `json:"echo_guess" mapstructure:"echo_guess"`
	}

	// ServeConfig configures the SSH arena.
	ServeConfig struct {
		// Host is the address to bind to (default: 127.0.0.1)
		Host string `json:"host" mapstructure:"host"`
		// Port is the port to listen on (default: 2222, 0 selects a free port)
		Port int `json:"port" mapstructure:"port"`
		// HostKeyPath is the SSH host key file, created when missing
		// (default: <config dir>/ssh_host_ed25519)
		HostKeyPath string `json:"host_key_path" mapstructure:"host_key_path"`
		// ShutdownTimeout bounds graceful shutdown (default: 10s)
		ShutdownTimeout time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
		// Password, when set, is required from every SSH client
		Password string `json:"password" mapstructure:"password"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Min:  1,
			Max:  100,
			Seed: 0,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			EchoGuess:   true,
		},
		Serve: ServeConfig{
			Host:            "127.0.0.1",
			Port:            2222,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns nil if the ColorScheme is one of the known schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// GlamourStyle maps the color scheme to a glamour standard style name.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks the constraints the CUE schema cannot express, plus the
// schema constraints again for configs built in code.
func (c *Config) Validate() error {
	var errs []error

	if c.Game.Min > c.Game.Max {
		errs = append(errs, fmt.Errorf("game.min (%d) must not exceed game.max (%d)", c.Game.Min, c.Game.Max))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui.color_scheme: %w", err))
	}
	if strings.TrimSpace(c.Serve.Host) == "" {
		errs = append(errs, errors.New("serve.host must be non-empty"))
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		errs = append(errs, fmt.Errorf("serve.port %d out of range 0-65535", c.Serve.Port))
	}
	if c.Serve.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("serve.shutdown_timeout %s must not be negative", c.Serve.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}
