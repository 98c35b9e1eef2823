package random

import (
	"errors"
	"fmt"
	"math"

	"github.com/metarract/gamelib/gmath"
)

var (
	// ErrEmpty is returned when picking from an empty slice.
	ErrEmpty = errors.New("random: empty input")
	// ErrBadWeights is returned for unusable weight lists.
	ErrBadWeights = errors.New("random: invalid weights")
)

// Item returns a uniformly chosen element of items.
func Item[T any](src Source, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return items[Intn(src, len(items))], nil
}

// MustItem is Item for callers that know items is non-empty. Panics otherwise.
func MustItem[T any](src Source, items []T) T {
	v, err := Item(src, items)
	if err != nil {
		panic(err)
	}
	return v
}

// Weighted chooses items[i] with probability weights[i] / sum(weights).
// Zero weights are never chosen. The slices must have the same length, and
// weights must be finite, non-negative and not all zero.
func Weighted[T any](src Source, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%w: %d items, %d weights", ErrBadWeights, len(items), len(weights))
	}
	// Scale by the largest weight so the sum cannot overflow.
	var top float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return zero, fmt.Errorf("%w: weight %d is %v", ErrBadWeights, i, w)
		}
		top = max(top, w)
	}
	if top == 0 {
		return zero, fmt.Errorf("%w: all weights are zero", ErrBadWeights)
	}
	var total float64
	for _, w := range weights {
		total += w / top
	}
	r := orDefault(src).Float64() * total
	last := -1
	for i, w := range weights {
		w /= top
		if w == 0 {
			continue
		}
		if r < w {
			return items[i], nil
		}
		r -= w
		last = i
	}
	// Rounding left r at or past the final bucket.
	return items[last], nil
}

// Chance reports true with probability clamp(p, 0, 1): p <= 0 never hits,
// p >= 1 always hits.
func Chance(src Source, p float64) bool {
	if p <= 0 || math.IsNaN(p) {
		return false
	}
	if p >= 1 {
		return true
	}
	return orDefault(src).Float64() < p
}

// Range maps a uniform draw onto [lo, hi). lo > hi is allowed and mirrors
// the range.
func Range(src Source, lo, hi float64) float64 {
	return gmath.Remap(orDefault(src).Float64(), 0, 1, lo, hi)
}
