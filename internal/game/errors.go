// SPDX-License-Identifier: MPL-2.0

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is the sentinel error wrapped by InvalidRangeError.
	ErrInvalidRange = errors.New("invalid secret range")
	// ErrInputStream is matched by every InputStreamError via errors.Is.
	ErrInputStream = errors.New("console input failed")
)

type (
	// InvalidRangeError is returned when a Range has Min greater than Max.
	InvalidRangeError struct {
		Range Range
	}

	// ParseError describes a guess that could not be read as an unsigned integer.
	// The loop recovers from it locally; it is never returned from Run.
	ParseError struct {
		Input string
		Err   error
	}

	// InputStreamError is returned from Run when a line could not be read
	// from the console. It is fatal for the session.
	InputStreamError struct {
		Err error
	}
)

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid secret range %s: min must not exceed max", e.Range)
}

// Unwrap returns ErrInvalidRange for errors.Is() compatibility.
func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid number", e.Input)
}

// Unwrap returns the strconv error.
func (e *ParseError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *InputStreamError) Error() string {
	if e.Err == nil {
		return "failed to read guess"
	}
	return "failed to read guess: " + e.Err.Error()
}

// Unwrap returns the underlying read error, so errors.Is(err, io.EOF) works.
func (e *InputStreamError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInputStream.
func (e *InputStreamError) Is(target error) bool {
	return target == ErrInputStream
}
