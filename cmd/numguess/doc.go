// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for numguess.
//
// The root command plays a game on the terminal. Subcommands host games over
// SSH (serve), print the rules (rules) and manage the configuration (config).
package cmd
