// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/numguess/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/numguess/config.cue on macOS, %APPDATA%\numguess\config.cue
// on Windows). Files are validated against the embedded config_schema.cue before their
// values are merged over the defaults. Environment variables prefixed with NUMGUESS_
// (e.g. NUMGUESS_GAME_MAX) override both.
package config
