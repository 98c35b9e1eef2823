package gamelib

import (
	"container/heap"
	"time"
)

// Timer is a one-shot callback scheduled on a Scene's update loop. It fires
// during the first Advance at which the scene clock has reached its due time.
type Timer struct {
	scene *Scene
	node  *Node
	due   time.Duration
	seq   uint64
	fn    func()
	done  chan struct{}
	index int // position in the scene queue, -1 when not queued

	fired   bool
	stopped bool
}

// After schedules fn to run once, no earlier than delay of scene time from
// now. The returned Timer can be stopped; dropping it is fine.
func (s *Scene) After(delay time.Duration, fn func()) *Timer {
	return s.schedule(nil, delay, fn)
}

// AfterFor is After tied to a node: the timer is dropped without firing if
// n has been disposed by its due time, and the EntityStore receives an
// EventTimer carrying n.EntityID when it fires.
func (s *Scene) AfterFor(n *Node, delay time.Duration, fn func()) *Timer {
	return s.schedule(n, delay, fn)
}

// Wait returns a channel that is closed once delay of scene time has passed.
func (s *Scene) Wait(delay time.Duration) <-chan struct{} {
	return s.schedule(nil, delay, nil).Done()
}

func (s *Scene) schedule(n *Node, delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.timerSeq++
	t := &Timer{
		scene: s,
		node:  n,
		due:   s.now + delay,
		seq:   s.timerSeq,
		fn:    fn,
		done:  make(chan struct{}),
	}
	heap.Push(&s.timers, t)
	s.logger.Debug("timer scheduled", "seq", t.seq, "delay", delay, "due", t.due)
	return t
}

// Stop cancels the timer. It reports whether the call prevented the timer
// from firing. Done is never closed for a stopped timer.
func (t *Timer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.scene.timers, t.index)
	}
	return true
}

// Done returns a channel closed when the timer fires.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

// Fired reports whether the timer has run.
func (t *Timer) Fired() bool {
	return t.fired
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return !t.fired && !t.stopped
}

// fireTimers runs every timer due at the current scene time, earliest first
// and in scheduling order among equal due times. Timers scheduled by a
// callback during this pass wait for the next Advance.
func (s *Scene) fireTimers() {
	limit := s.timerSeq
	var deferred []*Timer
	for s.timers.Len() > 0 {
		t := s.timers[0]
		if t.due > s.now {
			break
		}
		heap.Pop(&s.timers)
		if t.seq > limit {
			deferred = append(deferred, t)
			continue
		}
		if t.node != nil && t.node.IsDisposed() {
			t.stopped = true
			s.logger.Debug("timer dropped, node disposed", "seq", t.seq)
			continue
		}
		t.fired = true
		close(t.done)
		if t.fn != nil {
			t.fn()
		}
		if t.node != nil {
			s.emit(InteractionEvent{Type: EventTimer, EntityID: t.node.EntityID, Elapsed: s.now})
		}
	}
	for _, t := range deferred {
		if !t.stopped {
			heap.Push(&s.timers, t)
		}
	}
}

// timerQueue is a min-heap ordered by (due, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
