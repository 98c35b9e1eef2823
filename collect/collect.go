// Package collect has small generic helpers for slices, pairs and copies.
package collect

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotSerializable is returned by DeepCopy for values msgpack cannot encode.
var ErrNotSerializable = errors.New("collect: value is not serializable")

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Reverse swaps the elements.
func (p Pair[A, B]) Reverse() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Values returns both elements.
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

// Each calls fn with every element of seq and its zero-based position.
func Each[T any](seq iter.Seq[T], fn func(v T, i int)) {
	i := 0
	for v := range seq {
		fn(v, i)
		i++
	}
}

// DeepCopy returns an independent copy of v made by a msgpack round trip.
// Only what msgpack serializes survives: exported fields, or fields tagged
// for msgpack. Channels and functions make the copy fail with
// ErrNotSerializable.
func DeepCopy[T any](v T) (T, error) {
	var out T
	data, err := msgpack.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("deep copy %T: %w", v, err)
	}
	return out, nil
}
