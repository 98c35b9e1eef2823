package gamelib

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotFound is wrapped by every LookupError.
	ErrNodeNotFound = errors.New("node not found")
	// ErrTypeMismatch is wrapped by every TypeMismatchError.
	ErrTypeMismatch = errors.New("node type mismatch")
	// ErrUnknownScript is returned when a script name has no registered factory.
	ErrUnknownScript = errors.New("unknown script")
)

// LookupError reports a key that resolved to no node. Member is empty when
// the lookup did not come from the binder.
type LookupError struct {
	Member string
	Key    string
	From   string // path of the node the lookup started at
}

func (e *LookupError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("bind %s: no node at %q from %q", e.Member, e.Key, e.From)
	}
	return fmt.Sprintf("no node at %q from %q", e.Key, e.From)
}

func (e *LookupError) Unwrap() error { return ErrNodeNotFound }

// TypeMismatchError reports a resolved node that cannot be assigned to the
// member's declared type.
type TypeMismatchError struct {
	Member string
	Key    string
	Want   string
	Got    string
}

func (e *TypeMismatchError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("bind %s: node at %q is %s, want %s", e.Member, e.Key, e.Got, e.Want)
	}
	return fmt.Sprintf("node at %q is %s, want %s", e.Key, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
