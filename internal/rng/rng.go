// Package rng is a small xoshiro128** generator plus the bit helpers the
// growth and color code lean on. It is deterministic for a given seed and
// never allocates.
package rng

import (
	"math"
	"math/bits"
)

// Rand is a xoshiro128** generator. The zero value is not usable; build one
// with New or call Seed first.
type Rand struct {
	s [4]uint32
}

// New returns a generator seeded with the four state words.
func New(a, b, c, d uint32) *Rand {
	r := &Rand{}
	r.Seed(a, b, c, d)
	return r
}

// Seed replaces the generator state. An all-zero state would only ever
// produce zeros, so it is nudged to a fixed non-zero word.
func (r *Rand) Seed(a, b, c, d uint32) {
	r.s = [4]uint32{a, b, c, d}
	if a|b|c|d == 0 {
		r.s[0] = 1
	}
}

// SeedFromClock seeds from a coarse clock reading (seconds). The small
// offsets decorrelate the four state words.
func (r *Rand) SeedFromClock(t uint32) {
	r.Seed(t+5, t+3, t+2, t)
}

// Uint32 returns the next raw 32-bit output.
func (r *Rand) Uint32() uint32 {
	s := &r.s
	result := bits.RotateLeft32(s[1]*5, 7) * 9
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft32(s[3], 11)
	return result
}

// NextInRange returns a uniformly distributed value in [0, ceiling],
// inclusive of ceiling.
func (r *Rand) NextInRange(ceiling uint32) uint32 {
	if ceiling == math.MaxUint32 {
		return r.Uint32()
	}
	n := ceiling + 1
	// Lemire's multiply-shift with rejection of the biased low band.
	m := uint64(r.Uint32()) * uint64(n)
	if low := uint32(m); low < n {
		thresh := -n % n
		for low < thresh {
			m = uint64(r.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// Rotl rotates x left by k bits. It does not touch any generator state.
func Rotl(x uint32, k int) uint32 { return bits.RotateLeft32(x, k) }

// Rotr rotates x right by k bits.
func Rotr(x uint32, k int) uint32 { return bits.RotateLeft32(x, -k) }
