// SPDX-License-Identifier: MPL-2.0

// Package game implements the number guessing session.
//
// A Loop draws one secret from a SecretSource, then reads guesses line by line
// from its console input until the secret is found. Malformed guesses are
// answered with a re-prompt and never end the session; a failure of the input
// stream itself ends the session with an *InputStreamError.
package game
