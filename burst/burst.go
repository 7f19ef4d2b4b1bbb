// Package burst emits a bounded, randomized sequence of flash marker batches
package burst

import (
	"errors"
	"sync"
	"time"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/vmath"
)

var (
	// ErrAlreadyStarted is returned by a second Start
	ErrAlreadyStarted = errors.New("burst already started")
	// ErrNoSurface is returned when the generator has nowhere to attach markers
	ErrNoSurface = errors.New("burst has no flash surface")
)

// Marker is one ephemeral flash at a position in flash bounds units
// Its removal belongs to the surface, after Lifetime
type Marker struct {
	X, Y     int
	Batch    int
	Lifetime time.Duration
}

// Batch is the set of markers created in one tick
type Batch struct {
	Index   int
	Markers []Marker
}

// Surface receives batches; it owns marker expiry
type Surface interface {
	Attach(Batch)
}

// Generator runs one burst
// The repeating tick is owned and cancelled only by the generator
type Generator struct {
	sched   *engine.Scheduler
	rng     vmath.RangeSource
	cfg     config.Flash
	surface Surface
	events  *event.EventQueue

	tick       *engine.Timer
	started    bool
	done       bool
	once       sync.Once
	batchCount int
	markers    int
	ticks      int
}

// NewGenerator creates a generator; events may be nil
func NewGenerator(sched *engine.Scheduler, rng vmath.RangeSource, cfg config.Flash, surface Surface, events *event.EventQueue) *Generator {
	return &Generator{
		sched:   sched,
		rng:     rng,
		cfg:     cfg,
		surface: surface,
		events:  events,
	}
}

// Start begins ticking at the flash cadence
// onComplete runs exactly once, on the first tick that observes batchCount past the
// ceiling; with a ceiling of 60 that is the 62nd tick, after 61 batches
func (g *Generator) Start(onComplete func()) error {
	if g.surface == nil {
		return ErrNoSurface
	}
	if g.started {
		return ErrAlreadyStarted
	}
	g.started = true

	g.tick = g.sched.Every(g.cfg.Cadence.Std(), func() {
		g.ticks++
		if g.batchCount > g.cfg.BatchCountMax {
			g.tick.Cancel()
			g.once.Do(func() {
				g.done = true
				if g.events != nil {
					g.events.Push(event.EventBurstComplete, &event.BurstCompletePayload{
						Batches: g.batchCount,
						Markers: g.markers,
						Ticks:   g.ticks,
					})
				}
				if onComplete != nil {
					onComplete()
				}
			})
			return
		}
		g.batchCount++
		g.emitBatch(g.batchCount - 1)
	})
	return nil
}

func (g *Generator) emitBatch(index int) {
	n := g.rng.IntRange(g.cfg.MarkersMin, g.cfg.MarkersMax)
	batch := Batch{Index: index, Markers: make([]Marker, n)}
	for i := range batch.Markers {
		batch.Markers[i] = Marker{
			X:        g.rng.IntRange(0, g.cfg.BoundsWidth),
			Y:        g.rng.IntRange(0, g.cfg.BoundsHeight),
			Batch:    index,
			Lifetime: g.cfg.MarkerLifetime.Std(),
		}
	}
	g.markers += n

	g.surface.Attach(batch)
	if g.events != nil {
		g.events.Push(event.EventFlashBatch, &event.FlashBatchPayload{Index: index, Markers: n})
	}
}

// Done reports whether completion has been signaled
func (g *Generator) Done() bool { return g.done }

// Batches returns the number of batches emitted
func (g *Generator) Batches() int { return g.batchCount }

// Markers returns the number of markers emitted
func (g *Generator) Markers() int { return g.markers }

// Ticks returns the number of ticks observed, including the completing one
func (g *Generator) Ticks() int { return g.ticks }

// Duration returns how long a burst with cfg runs before completing
func Duration(cfg config.Flash) time.Duration {
	cadence := max(cfg.Cadence.Std(), engine.MinInterval)
	return time.Duration(max(cfg.BatchCountMax, -1)+2) * cadence
}
