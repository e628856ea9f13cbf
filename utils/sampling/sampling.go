// Package sampling implements the sampling of uniform bytes, integers,
// floating-point and complex values from a PRNG.
package sampling

import (
	"encoding/binary"
	"io"
)

// Sampler draws uniform values from a PRNG.
type Sampler struct {
	prng PRNG
	buf  [8]byte
}

// NewSampler creates a new Sampler reading from prng.
func NewSampler(prng PRNG) *Sampler {
	return &Sampler{prng: prng}
}

// Uint64 returns a uniform value in [0, 2^64-1].
func (s *Sampler) Uint64() uint64 {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int64 returns a uniform value in [min, max]. It panics if max < min.
func (s *Sampler) Int64(min, max int64) int64 {

	if max < min {
		panic("cannot Int64: max < min")
	}

	span := uint64(max) - uint64(min) + 1

	// span == 0 means the full 64-bit range.
	if span == 0 {
		return int64(s.Uint64())
	}

	// Rejection sampling to remove the modulo bias.
	bound := -span % span
	for {
		if v := s.Uint64(); v >= bound {
			return min + int64(v%span)
		}
	}
}

// Float64 returns a uniform value in [min, max).
func (s *Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// Complex128 returns a complex value whose real and imaginary parts are
// uniform in [min, max).
func (s *Sampler) Complex128(min, max float64) complex128 {
	return complex(s.Float64(min, max), s.Float64(min, max))
}
