// Package gmath holds small scalar helpers for game code: interpolation,
// remapping and easing curves.
package gmath

import "math"

// A plain per-frame Lerp(v, target, delta/N) needs about 3N seconds to get
// within 5% of the target and about 2.28N seconds to get within 10%. These
// factors convert between the two: N = seconds / factor.
const (
	TimeFactor5Pct  = 3
	TimeFactor10Pct = 2.283333333
)

// Lerp linearly interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns the t for which Lerp(a, b, t) == v. Returns 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return Lerp(outLo, outHi, InverseLerp(inLo, inHi, v))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpFactor is the interpolation weight that halves the remaining distance
// every 1/rate seconds: 1 - 2^(-rate*delta). It is always in [0, 1) for
// non-negative input.
func LerpFactor(rate, delta float64) float64 {
	return 1 - math.Exp2(-rate*delta)
}

// Lerp2 moves value toward target at a frame-rate independent speed: the
// result after two steps of delta equals one step of 2*delta.
func Lerp2(value, target, rate, delta float64) float64 {
	return Lerp(value, target, LerpFactor(rate, delta))
}
