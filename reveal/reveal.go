// Package reveal uncovers a token's cells one at a time on a fixed total budget
package reveal

import (
	"time"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
)

// Letter is one revealed cell
// Offset is the horizontal origin of the cell's entry animation, signed by its distance
// from the token midpoint
type Letter struct {
	Index  int
	Rune   rune
	Offset float64
}

// Scheduler drives letter reveals on the presentation timer queue
type Scheduler struct {
	sched  *engine.Scheduler
	budget time.Duration
	step   float64
}

// NewScheduler creates a reveal scheduler
func NewScheduler(sched *engine.Scheduler, cfg config.Reveal) *Scheduler {
	return &Scheduler{
		sched:  sched,
		budget: cfg.Budget.Std(),
		step:   cfg.OffsetStep,
	}
}

// Cadence returns the per-letter delay for a token of length cells
func (s *Scheduler) Cadence(length int) time.Duration {
	return NewCursor(length, s.budget).Cadence
}

// Offset returns the entry offset of cell index in a token of length cells
func (s *Scheduler) Offset(index, length int) float64 {
	return (float64(index) - float64(length)/2) * s.step
}

// Reveal shows cells left to right, one per cadence, starting now
// onLetter runs once per cell; onComplete runs once, one cadence after the last letter,
// or immediately for an empty token. Each step is a separate one-shot on the scheduler
// The returned cursor is live and read-only for callers
func (s *Scheduler) Reveal(cells []rune, onLetter func(Letter), onComplete func()) *Cursor {
	cur := NewCursor(len(cells), s.budget)

	var step func()
	step = func() {
		i, ok := cur.Advance()
		if !ok {
			if onComplete != nil {
				onComplete()
			}
			return
		}
		if onLetter != nil {
			onLetter(Letter{
				Index:  i,
				Rune:   cells[i],
				Offset: s.Offset(i, cur.Length),
			})
		}
		s.sched.After(cur.Cadence, step)
	}
	step()

	return cur
}
