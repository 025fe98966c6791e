// Package random provides the reproducible uniform source that every
// casegen generator draws from.
//
// A seeded [Source] is a 32-bit linear congruential generator:
//
//	state = (state*1664525 + 1013904223) mod 2^32
//	next  = state / 2^32
//
// The constants satisfy the Hull-Dobell conditions for the modulus 2^32, so
// the recurrence has full period. With a fixed seed the sequence of draws is
// an exact function of draw order: two sources seeded alike stay in lockstep
// for any number of draws.
//
// An unseeded Source has no state of its own and draws from the ambient
// math/rand/v2 generator instead, so its output is not reproducible.
//
// A Source is not safe for concurrent use. Callers that need parallel
// reproducible streams create one Source per goroutine.
package random

import "math/rand/v2"

const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223

	// modulus is 2^32 as a float, the divisor that maps state into [0,1).
	modulus = float64(1 << 32)
)

// Source produces floating-point draws in [0,1).
type Source struct {
	state  uint32
	seeded bool
}

// New returns an unseeded Source backed by the ambient math/rand/v2 generator.
func New() *Source {
	return &Source{}
}

// NewSeeded returns a Source seeded with seed.
func NewSeeded(seed int64) *Source {
	s := &Source{}
	s.SetSeed(seed)
	return s
}

// SetSeed resets the state from seed. Seeds are reduced mod 2^32, so seeds
// that differ by a multiple of 2^32 produce identical sequences.
func (s *Source) SetSeed(seed int64) {
	s.state = uint32(seed)
	s.seeded = true
}

// Seeded reports whether the source has been seeded.
func (s *Source) Seeded() bool {
	return s.seeded
}

// Next advances the source and returns the next draw in [0,1).
func (s *Source) Next() float64 {
	if !s.seeded {
		return rand.Float64()
	}
	s.state = s.state*multiplier + increment
	return float64(s.state) / modulus
}
