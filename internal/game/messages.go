// SPDX-License-Identifier: MPL-2.0

package game

import "fmt"

const (
	// LineIntro is printed once before the first prompt.
	LineIntro LineKind = iota
	// LinePrompt is printed before every read.
	LinePrompt
	// LineEcho repeats the trimmed input back to the player.
	LineEcho
	// LineInvalid answers a parse failure.
	LineInvalid
	// LineTooSmall answers a guess below the secret.
	LineTooSmall
	// LineTooBig answers a guess above the secret.
	LineTooBig
	// LineWin answers the correct guess.
	LineWin
	// LineReveal discloses the secret after the loop ends.
	LineReveal
)

type (
	// LineKind identifies a console line so a Styler can decorate it.
	LineKind int

	// Messages holds every text the loop prints. Intro is formatted with the
	// range bounds, Echo with the input and Reveal with the secret.
	Messages struct {
		Intro    string
		Prompt   string
		Echo     string
		Invalid  string
		TooSmall string
		TooBig   string
		Win      string
		Reveal   string
	}

	// Styler decorates a line before it is written. It must not change the
	// meaning of the text.
	Styler func(kind LineKind, text string) string
)

// DefaultMessages returns the English messages.
func DefaultMessages() Messages {
	return Messages{
		Intro:    "Guess the number between %d and %d!",
		Prompt:   "Please input your guess.",
		Echo:     "You guessed: %s",
		Invalid:  "That is not a valid number, please try again!",
		TooSmall: "Too small!",
		TooBig:   "Too big!",
		Win:      "You win!",
		Reveal:   "The secret number was: %d",
	}
}

// PlainStyler returns text unchanged.
func PlainStyler(_ LineKind, text string) string { return text }

// outcomeLine maps an outcome to its line kind and text.
func (m Messages) outcomeLine(o Outcome) (LineKind, string) {
	switch o {
	case OutcomeTooSmall:
		return LineTooSmall, m.TooSmall
	case OutcomeTooBig:
		return LineTooBig, m.TooBig
	case OutcomeWin:
		return LineWin, m.Win
	default:
		return LineInvalid, m.Invalid
	}
}

func (m Messages) intro(r Range) string {
	return fmt.Sprintf(m.Intro, r.Min, r.Max)
}

func (m Messages) echo(input string) string {
	return fmt.Sprintf(m.Echo, input)
}

func (m Messages) reveal(secret uint32) string {
	return fmt.Sprintf(m.Reveal, secret)
}
