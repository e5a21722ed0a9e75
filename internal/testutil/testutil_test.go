// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"io"
	"slices"
	"testing"
)

func TestScript(t *testing.T) {
	t.Parallel()

	data, err := io.ReadAll(Script("abc", "42"))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got, want := string(data), "abc\n42\n"; got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}

	data, _ = io.ReadAll(Script())
	if len(data) != 0 {
		t.Errorf("Script() with no guesses = %q, want empty", data)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "a\n", []string{"a"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Lines(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
