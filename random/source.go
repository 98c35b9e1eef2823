// Package random provides randomization helpers over an injectable Source.
// Every helper accepts a nil Source and falls back to Default.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// cryptoSource is the default: unpredictable, not reproducible.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// 53 random bits give every representable step in [0, 1).
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// Default returns the crypto-backed source.
func Default() Source { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeeded returns a reproducible PCG-backed source. Not safe for
// concurrent use.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }

func orDefault(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// Intn returns a uniform int in [0, n). Panics if n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("random: Intn with n <= 0")
	}
	i := int(orDefault(src).Float64() * float64(n))
	if i >= n {
		// Float64 near 1 can round up for large n.
		i = n - 1
	}
	return i
}
