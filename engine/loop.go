package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("loop already running")

// FrameFunc is called once per frame after due timers fired
type FrameFunc func(elapsed time.Duration)

// Loop drives a Scheduler from real time on a fixed frame interval
// Scheduler callbacks and FrameFunc run on the Run goroutine only, which keeps the
// presentation single-threaded
type Loop struct {
	sched         *Scheduler
	clock         TimeProvider
	frameInterval time.Duration
	onFrame       FrameFunc

	running    atomic.Bool
	frameCount atomic.Uint64
}

// NewLoop creates a loop advancing sched from clock every frameInterval
func NewLoop(sched *Scheduler, clock TimeProvider, frameInterval time.Duration, onFrame FrameFunc) *Loop {
	if frameInterval < MinInterval {
		frameInterval = MinInterval
	}
	return &Loop{
		sched:         sched,
		clock:         clock,
		frameInterval: frameInterval,
		onFrame:       onFrame,
	}
}

// Run blocks until ctx is cancelled
// Elapsed time is measured from the first call; frames that fall behind catch up in one
// AdvanceTo rather than replaying every missed frame
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	start := l.clock.Now()
	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	l.frame(start)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.frame(start)
		}
	}
}

// Frames returns how many frames were processed
func (l *Loop) Frames() uint64 {
	return l.frameCount.Load()
}

func (l *Loop) frame(start time.Time) {
	elapsed := l.clock.Now().Sub(start)
	l.sched.AdvanceTo(elapsed)
	if l.onFrame != nil {
		l.onFrame(l.sched.Now())
	}
	l.frameCount.Add(1)
}
