// SPDX-License-Identifier: MPL-2.0

// Package sshserver hosts the guessing game over SSH using the Wish library.
//
// Every SSH session plays its own game: the session is the console, a fresh
// secret is drawn when the session starts and the session exits with status 0
// on a win or 1 when the client closes its input first. Sessions with a PTY
// get line editing and echo from a golang.org/x/term terminal; sessions
// without one (e.g. `printf '50\n' | ssh host`) are read line by line.
package sshserver
