// Package prng implements the xoshiro256++ pseudo-random number generator
// with splitmix64 seeding.
//
// The generator reproduces the reference xoshiro256++ output sequence bit
// for bit on every platform. That property is what makes maze generation
// deterministic: the same seed and configuration always produce the same
// maze, regardless of operating system or architecture.
//
// A Source holds 256 bits of state and is advanced sequentially; it is not
// safe for concurrent use. Give each concurrent generation its own Source.
package prng

import "math/bits"

// Source is a xoshiro256++ generator.
//
// The zero value is a valid but degenerate state (all zeros produces all
// zeros); always initialize via New or Seed before use.
type Source struct {
	s [4]uint64
}

// New returns a Source seeded from the given 64-bit value.
func New(seed uint64) *Source {
	src := &Source{}
	src.Seed(seed)
	return src
}

// Seed initializes the full 256-bit state from a single 64-bit value using
// the splitmix64 mixing function. The same seed always yields the same
// state.
func (src *Source) Seed(x uint64) {
	for i := range src.s {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		src.s[i] = z ^ (z >> 31)
	}
}

// Next advances the state and returns the next 64-bit word of the
// xoshiro256++ sequence.
func (src *Source) Next() uint64 {
	s := &src.s
	result := bits.RotateLeft64(s[0]+s[3], 23) + s[0]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// UintN returns an unbiased pseudo-random value in [0, n).
//
// Bias is avoided by rejection sampling: a drawn word is discarded and
// redrawn whenever its remainder would over-represent some outputs, so
// every value in range is equally probable no matter how n divides 2^64.
//
// n must be greater than zero; UintN panics on n == 0.
func (src *Source) UintN(n uint64) uint64 {
	if n == 0 {
		panic("prng: UintN range must be > 0")
	}
	for {
		x := src.Next()
		r := x % n
		if x-r <= -n {
			return r
		}
	}
}
