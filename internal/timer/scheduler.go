// internal/timer/scheduler.go
package timer

import (
	"sort"
	"time"
)

// Handle is returned by After and lets the owner cancel the callback.
type Handle struct {
	due      float64
	seq      uint64
	fn       func()
	canceled bool
	fired    bool
}

// Cancel stops the callback from firing. It reports whether the callback was
// still pending.
func (h *Handle) Cancel() bool {
	if h == nil || h.canceled || h.fired {
		return false
	}
	h.canceled = true
	return true
}

// Pending reports whether the callback has neither fired nor been cancelled.
func (h *Handle) Pending() bool {
	return h != nil && !h.canceled && !h.fired
}

// Scheduler runs deferred callbacks on simulation time. It only moves when
// Advance is called, so paused games pause their timers too.
type Scheduler struct {
	now   float64
	seq   uint64
	queue []*Handle
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once d of simulation time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{
		due: s.now + d.Seconds(),
		seq: s.seq,
		fn:  fn,
	}
	s.queue = append(s.queue, h)
	return h
}

// Advance moves the clock by deltaTime seconds and fires every due callback in
// due-time order, FIFO for equal times. Callbacks scheduled from inside a
// callback fire in the same call if they are already due.
func (s *Scheduler) Advance(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}
	for {
		h := s.popDue()
		if h == nil {
			return
		}
		h.fired = true
		if h.fn != nil {
			h.fn()
		}
	}
}

func (s *Scheduler) popDue() *Handle {
	s.compact()
	if len(s.queue) == 0 {
		return nil
	}
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].due != s.queue[j].due {
			return s.queue[i].due < s.queue[j].due
		}
		return s.queue[i].seq < s.queue[j].seq
	})
	h := s.queue[0]
	if h.due > s.now {
		return nil
	}
	s.queue = s.queue[1:]
	return h
}

// compact drops cancelled handles.
func (s *Scheduler) compact() {
	kept := s.queue[:0]
	for _, h := range s.queue {
		if !h.canceled {
			kept = append(kept, h)
		}
	}
	s.queue = kept
}

// CancelAll cancels everything still pending.
func (s *Scheduler) CancelAll() {
	for _, h := range s.queue {
		h.Cancel()
	}
	s.queue = nil
}

// Len is the number of pending callbacks.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.queue {
		if h.Pending() {
			n++
		}
	}
	return n
}

// Now returns elapsed simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}
