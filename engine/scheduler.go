package engine

import (
	"container/heap"
	"time"
)

// MinInterval is the smallest cadence a repeating timer runs at
// Non-positive intervals are raised to it so a repeating timer can never stall the queue
const MinInterval = time.Millisecond

type timerState uint8

const (
	timerPending timerState = iota
	timerDone
	timerCancelled
)

// Timer is a handle to a scheduled one-shot or repeating callback
// Handles are owned by whoever scheduled them; only the owner cancels
type Timer struct {
	sched    *Scheduler
	fn       func()
	deadline time.Duration
	interval time.Duration // 0 for one-shot
	seq      uint64
	index    int // position in the queue, -1 when not queued
	state    timerState
	fires    int
}

// Cancel stops the timer from firing again
// Returns true only for the call that actually cancelled; repeated calls and calls
// after a one-shot already fired are no-ops returning false
func (t *Timer) Cancel() bool {
	if t == nil || t.state != timerPending {
		return false
	}
	t.state = timerCancelled
	if t.index >= 0 {
		heap.Remove(&t.sched.queue, t.index)
	}
	return true
}

// Active reports whether the timer can still fire
func (t *Timer) Active() bool {
	return t != nil && t.state == timerPending
}

// Cancelled reports whether the timer was stopped by Cancel
func (t *Timer) Cancelled() bool {
	return t != nil && t.state == timerCancelled
}

// Repeating reports whether the timer was created by Every
func (t *Timer) Repeating() bool {
	return t != nil && t.interval > 0
}

// Fires returns how many times the callback ran
func (t *Timer) Fires() int {
	if t == nil {
		return 0
	}
	return t.fires
}

// Scheduler is a single-threaded virtual-time timer queue
// Time only moves when the driver calls Advance/AdvanceTo; callbacks run on the driver's
// goroutine in deadline order, FIFO among equal deadlines
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewScheduler creates a scheduler at elapsed time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed time since the scheduler was created
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn once, d after now; negative delays fire at now
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{sched: s, fn: fn, deadline: s.now + d, index: -1}
	s.push(t)
	return t
}

// Every schedules fn repeatedly, first at now+interval, until cancelled
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval < MinInterval {
		interval = MinInterval
	}
	t := &Timer{sched: s, fn: fn, deadline: s.now + interval, interval: interval, index: -1}
	s.push(t)
	return t
}

// Pending returns the number of queued timers
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// NextDeadline returns the earliest queued deadline
func (s *Scheduler) NextDeadline() (time.Duration, bool) {
	if s.queue.Len() == 0 {
		return 0, false
	}
	return s.queue[0].deadline, true
}

// Advance moves time forward by d, firing every timer that comes due
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now + d)
}

// AdvanceTo moves time forward to target, firing every timer due at or before it
// Timers scheduled by callbacks fire in the same call when they come due before target
// Targets in the past are ignored
func (s *Scheduler) AdvanceTo(target time.Duration) {
	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.deadline > target {
			break
		}
		heap.Pop(&s.queue)

		if t.deadline > s.now {
			s.now = t.deadline
		}
		t.fires++

		// Re-queue before running so the callback may cancel its own timer
		if t.interval > 0 {
			t.deadline += t.interval
			s.push(t)
		} else {
			t.state = timerDone
		}

		t.fn()
	}

	if target > s.now {
		s.now = target
	}
}

// RunUntilIdle fires timers in deadline order until the queue is empty or the next
// deadline lies beyond horizon; returns the elapsed time reached
func (s *Scheduler) RunUntilIdle(horizon time.Duration) time.Duration {
	for {
		next, ok := s.NextDeadline()
		if !ok || next > horizon {
			return s.now
		}
		s.AdvanceTo(next)
	}
}

func (s *Scheduler) push(t *Timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// timerQueue is a min-heap ordered by deadline then insertion sequence
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
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
