// SPDX-License-Identifier: MPL-2.0

package game

import (
	"errors"
	"testing"
)

func TestRange_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"default", DefaultRange(), false},
		{"single value", Range{Min: 7, Max: 7}, false},
		{"zero based", Range{Min: 0, Max: 10}, false},
		{"inverted", Range{Min: 10, Max: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRange) {
				t.Errorf("error should wrap ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	if got := DefaultRange().String(); got != "[1, 100]" {
		t.Errorf("String() = %q, want %q", got, "[1, 100]")
	}
}

func TestRandomSource_DrawStaysInRange(t *testing.T) {
	t.Parallel()

	src := NewRandomSource(0)
	r := DefaultRange()
	seen := make(map[uint32]bool)

	for range 5000 {
		v := src.Draw(r)
		if !r.Contains(v) {
			t.Fatalf("Draw() = %d, outside %s", v, r)
		}
		seen[v] = true
	}

	if !seen[r.Min] || !seen[r.Max] {
		t.Errorf("5000 draws never produced a bound (min seen: %v, max seen: %v)", seen[r.Min], seen[r.Max])
	}
}

func TestRandomSource_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewRandomSource(1234)
	b := NewRandomSource(1234)
	r := Range{Min: 1, Max: 1_000_000}

	for i := range 20 {
		if va, vb := a.Draw(r), b.Draw(r); va != vb {
			t.Fatalf("draw %d differs: %d != %d", i, va, vb)
		}
	}
}

func TestRandomSource_SingleValueRange(t *testing.T) {
	t.Parallel()

	src := NewRandomSource(9)
	if got := src.Draw(Range{Min: 5, Max: 5}); got != 5 {
		t.Errorf("Draw([5, 5]) = %d, want 5", got)
	}
}

func TestRandomSource_FullRange(t *testing.T) {
	t.Parallel()

	src := NewRandomSource(3)
	full := Range{Min: 0, Max: ^uint32(0)}
	for range 100 {
		_ = src.Draw(full) // must not panic on the widest span
	}
}

func TestFixedSource_Clamps(t *testing.T) {
	t.Parallel()

	r := DefaultRange()
	tests := []struct {
		src  FixedSource
		want uint32
	}{
		{FixedSource(42), 42},
		{FixedSource(0), 1},
		{FixedSource(500), 100},
	}

	for _, tt := range tests {
		if got := tt.src.Draw(r); got != tt.want {
			t.Errorf("FixedSource(%d).Draw(%s) = %d, want %d", uint32(tt.src), r, got, tt.want)
		}
	}
}
