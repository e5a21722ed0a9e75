// SPDX-License-Identifier: MPL-2.0

package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

const (
	// DefaultMin is the lowest secret drawn by default.
	DefaultMin uint32 = 1
	// DefaultMax is the highest secret drawn by default.
	DefaultMax uint32 = 100
)

type (
	// Range is an inclusive interval of secret values.
	Range struct {
		Min uint32
		Max uint32
	}

	// SecretSource is the randomness collaborator. Draw is called once per session.
	SecretSource interface {
		Draw(r Range) uint32
	}

	// RandomSource draws secrets uniformly from a PCG generator.
	// It is safe for concurrent use, so one source can serve many sessions.
	RandomSource struct {
		mu  sync.Mutex
		rng *rand.Rand
	}

	// FixedSource always draws the same value, clamped into the requested range.
	FixedSource uint32
)

// DefaultRange returns [1, 100].
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// String returns the range as "[min, max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Validate returns an *InvalidRangeError if Min is greater than Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return &InvalidRangeError{Range: r}
	}
	return nil
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v uint32) bool {
	return v >= r.Min && v <= r.Max
}

// NewRandomSource creates a RandomSource. A zero seed selects a random seed,
// any other value makes the sequence of secrets reproducible.
func NewRandomSource(seed uint64) *RandomSource {
	var src *rand.PCG
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &RandomSource{rng: rand.New(src)}
}

// Draw returns a value uniformly distributed over r.
func (s *RandomSource) Draw(r Range) uint32 {
	span := uint64(r.Max-r.Min) + 1

	s.mu.Lock()
	defer s.mu.Unlock()
	return r.Min + uint32(s.rng.Uint64N(span))
}

// Draw returns the fixed value, clamped into r.
func (f FixedSource) Draw(r Range) uint32 {
	v := uint32(f)
	switch {
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}
