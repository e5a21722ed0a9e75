// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/numguess/numguess/internal/issue"
	"github.com/numguess/numguess/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Game.Min != 1 || cfg.Game.Max != 100 {
		t.Errorf("default range = [%d, %d], want [1, 100]", cfg.Game.Min, cfg.Game.Max)
	}
	if cfg.Game.Seed != 0 {
		t.Errorf("default seed = %d, want 0", cfg.Game.Seed)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default color scheme = %s, want auto", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if !cfg.UI.EchoGuess {
		t.Error("expected echo_guess to be true by default")
	}
	if cfg.Serve.Host != "127.0.0.1" || cfg.Serve.Port != 2222 {
		t.Errorf("default serve address = %s:%d, want 127.0.0.1:2222", cfg.Serve.Host, cfg.Serve.Port)
	}
	if cfg.Serve.ShutdownTimeout != 10*time.Second {
		t.Errorf("default shutdown timeout = %s, want 10s", cfg.Serve.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := Resolve(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if cfg.Game.Max != 100 || !cfg.UI.EchoGuess {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
game: {
	min: 10
	max: 20
	seed: 99
}
ui: echo_guess: false
serve: {
	port: 3333
	shutdown_timeout: "1m30s"
}
`)

	cfg, path, err := Resolve(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Game.Min != 10 || cfg.Game.Max != 20 || cfg.Game.Seed != 99 {
		t.Errorf("game = %+v, want min 10 max 20 seed 99", cfg.Game)
	}
	if cfg.UI.EchoGuess {
		t.Error("echo_guess should be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("unset color scheme should keep default, got %s", cfg.UI.ColorScheme)
	}
	if cfg.Serve.Port != 3333 {
		t.Errorf("serve.port = %d, want 3333", cfg.Serve.Port)
	}
	if cfg.Serve.Host != "127.0.0.1" {
		t.Errorf("unset serve.host should keep default, got %q", cfg.Serve.Host)
	}
	if cfg.Serve.ShutdownTimeout != 90*time.Second {
		t.Errorf("serve.shutdown_timeout = %s, want 1m30s", cfg.Serve.ShutdownTimeout)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `ui: color_scheme: "light"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("color scheme = %s, want light", cfg.UI.ColorScheme)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown top-level field", `difficulty: "hard"`, "difficulty"},
		{"negative min", `game: min: -1`, "game.min"},
		{"max too large", `game: max: 5000000000`, "game.max"},
		{"bad color scheme", `ui: color_scheme: "neon"`, "color_scheme"},
		{"port out of range", `serve: port: 70000`, "serve.port"},
		{"bad duration", `serve: shutdown_timeout: "soon"`, "shutdown_timeout"},
		{"wrong type", `ui: verbose: "yes"`, "ui.verbose"},
		{"syntax error", `game: {`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("Load() should fail")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_InvertedRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `game: {min: 50, max: 10}`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "game.min (50) must not exceed game.max (10)") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NUMGUESS_GAME_MAX", "500")
	t.Setenv("NUMGUESS_UI_ECHO_GUESS", "false")

	dir := t.TempDir()
	writeConfig(t, dir, `game: max: 20`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.Max != 500 {
		t.Errorf("game.max = %d, want 500 from the environment", cfg.Game.Max)
	}
	if cfg.UI.EchoGuess {
		t.Error("echo_guess should be overridden to false")
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoad_CurrentDirectoryFallback(t *testing.T) {
	// Not parallel: changes the working directory.
	work := t.TempDir()
	writeConfig(t, work, `game: seed: 7`)
	testutil.MustChdir(t, work)

	cfg, path, err := Resolve(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if path != ConfigFileName+"."+ConfigFileExt {
		t.Errorf("resolved path = %q, want the local config.cue", path)
	}
	if cfg.Game.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Game.Seed)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Game.Min = 5
	cfg.Game.Max = 500
	cfg.Game.Seed = 42
	cfg.UI.ColorScheme = ColorSchemeDark
	cfg.Serve.HostKeyPath = "/tmp/key"
	cfg.Serve.Password = "s3cret"
	cfg.Serve.ShutdownTimeout = 1500 * time.Millisecond

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(cfg))

	got, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE should load, got %v\n%s", err, GenerateCUE(cfg))
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, *cfg)
	}
}

func TestSaveAndCreateDefaultConfig(t *testing.T) {
	// Not parallel: uses the package-level config dir override.
	dir := filepath.Join(t.TempDir(), "numguess")
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	path, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, "config.cue"))
	}

	cfg := DefaultConfig()
	cfg.Game.Max = 1000
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// CreateDefaultConfig must not overwrite an existing file.
	if _, err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Game.Max != 1000 {
		t.Errorf("game.max = %d, want 1000", loaded.Game.Max)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is Linux-specific")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != filepath.Join("/xdg", AppName) {
		t.Errorf("ConfigDir() = %q, want %q", dir, filepath.Join("/xdg", AppName))
	}

	keyPath, err := DefaultHostKeyPath()
	if err != nil {
		t.Fatalf("DefaultHostKeyPath() error = %v", err)
	}
	if keyPath != filepath.Join("/xdg", AppName, HostKeyFileName) {
		t.Errorf("DefaultHostKeyPath() = %q", keyPath)
	}
}
