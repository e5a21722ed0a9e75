// SPDX-License-Identifier: MPL-2.0

package game

import (
	"cmp"
	"strconv"
	"strings"
)

const (
	// OutcomeParseFailure means the input was not an unsigned integer.
	OutcomeParseFailure Outcome = iota
	// OutcomeTooSmall means the guess is below the secret.
	OutcomeTooSmall
	// OutcomeTooBig means the guess is above the secret.
	OutcomeTooBig
	// OutcomeWin means the guess equals the secret.
	OutcomeWin
)

const (
	// StateAwaitingGuess is the initial state, re-entered after every wrong or invalid guess.
	StateAwaitingGuess State = iota
	// StateWon is terminal: the secret was guessed.
	StateWon
)

type (
	// Outcome is the response to one line of input.
	Outcome int

	// State is the state of a Loop.
	State int
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeParseFailure:
		return "parse-failure"
	case OutcomeTooSmall:
		return "too-small"
	case OutcomeTooBig:
		return "too-big"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting-guess"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Next returns the state reached from s after outcome o.
// Won has no outgoing transitions.
func (s State) Next(o Outcome) State {
	if s == StateWon || o == OutcomeWin {
		return StateWon
	}
	return StateAwaitingGuess
}

// Evaluate runs one iteration step on raw console text: trim, parse, compare.
// A single leading '+' is accepted before the digits. The raw text is kept
// apart from the parsed guess; on a parse failure no guess exists and a
// *ParseError is returned together with OutcomeParseFailure.
func Evaluate(secret uint32, raw string) (Outcome, uint32, error) {
	text := strings.TrimSpace(raw)

	n, err := strconv.ParseUint(unsignedDigits(text), 10, 32)
	if err != nil {
		return OutcomeParseFailure, 0, &ParseError{Input: text, Err: err}
	}
	guess := uint32(n)

	switch cmp.Compare(guess, secret) {
	case -1:
		return OutcomeTooSmall, guess, nil
	case 1:
		return OutcomeTooBig, guess, nil
	default:
		return OutcomeWin, guess, nil
	}
}

// unsignedDigits drops one '+' sign when something follows it. ParseUint
// rejects any sign, so "+", "++1" and "-1" still fail.
func unsignedDigits(text string) string {
	if len(text) > 1 && text[0] == '+' {
		return text[1:]
	}
	return text
}
