// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"io"
	"os"
	"strings"
	"testing"
)

// Stopper is an interface for types that have a Stop method returning an error.
// This is commonly used for server types.
type Stopper interface {
	Stop() error
}

// Script returns a reader that yields each guess as one newline-terminated line.
func Script(guesses ...string) io.Reader {
	if len(guesses) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(guesses, "\n") + "\n")
}

// Lines splits console output into lines, dropping the trailing empty line
// and any carriage returns.
func Lines(out string) []string {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// MustChdir changes the current working directory to dir and restores the
// original directory on test cleanup.
func MustChdir(t testing.TB, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	})
}

// MustClose closes c and reports an error if it fails.
func MustClose(t testing.TB, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Errorf("failed to close: %v", err)
	}
}

// MustStop stops s and reports an error if it fails.
func MustStop(t testing.TB, s Stopper) {
	t.Helper()
	if err := s.Stop(); err != nil {
		t.Errorf("failed to stop: %v", err)
	}
}
