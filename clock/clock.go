// Package clock has wall-clock helpers: unix timestamps and cancellable
// delayed callbacks. For delays measured in game time use gamelib.Scene.After.
package clock

import (
	"sync/atomic"
	"time"
)

// Unix returns the current unix time in seconds.
func Unix() int64 { return time.Now().Unix() }

// UnixMilli returns the current unix time in milliseconds.
func UnixMilli() int64 { return time.Now().UnixMilli() }

// Timer is a pending one-shot callback.
type Timer struct {
	t     *time.Timer
	fired atomic.Bool
	done  chan struct{}
}

// AfterFunc runs fn once on its own goroutine after d. The returned Timer
// may be kept to cancel the call or ignored.
func AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{done: make(chan struct{})}
	t.t = time.AfterFunc(d, func() {
		t.fired.Store(true)
		fn()
		close(t.done)
	})
	return t
}

// Stop cancels the call. It reports whether the call was prevented; false
// means it already ran, is running, or was stopped before.
func (t *Timer) Stop() bool {
	return t.t.Stop()
}

// Fired reports whether the callback has started.
func (t *Timer) Fired() bool {
	return t.fired.Load()
}

// Done returns a channel closed after the callback returns. It is never
// closed for a stopped timer.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}
