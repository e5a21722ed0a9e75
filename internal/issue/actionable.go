// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError names the operation that failed, what it failed on and what
// the player can try next. Build one by chaining from Failed:
//
//	return issue.Failed("load configuration").
//		At(path).
//		Suggest("Run 'numguess config init' to write the defaults").
//		Because(err)
type ActionableError struct {
	Operation   string
	Resource    string
	Suggestions []string
	Cause       error
}

// Failed starts an ActionableError for operation, a verb phrase such as
// "start SSH server".
func Failed(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// At records the file, address or stream involved.
func (e *ActionableError) At(resource string) *ActionableError {
	e.Resource = resource
	return e
}

// Suggest appends a hint.
func (e *ActionableError) Suggest(hint string) *ActionableError {
	e.Suggestions = append(e.Suggestions, hint)
	return e
}

// Because records the underlying error.
func (e *ActionableError) Because(cause error) *ActionableError {
	e.Cause = cause
	return e
}

// Error reads "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the message with one bullet per hint. Verbose output also
// numbers every error in the cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
	}
	for _, hint := range e.Suggestions {
		sb.WriteString("\n  • " + hint)
	}

	if !verbose || e.Cause == nil {
		return sb.String()
	}

	sb.WriteString("\n\nError chain:")
	for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
		fmt.Fprintf(&sb, "\n  %d. %s", i, err)
	}
	return sb.String()
}
