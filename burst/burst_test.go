package burst

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/vmath"
)

type recordingSurface struct {
	batches []Batch
}

func (s *recordingSurface) Attach(b Batch) { s.batches = append(s.batches, b) }

func TestBurstCompletesOnceAfter61Batches(t *testing.T) {
	sched := engine.NewScheduler()
	surface := &recordingSurface{}
	cfg := config.Default().Flash
	g := NewGenerator(sched, vmath.NewFastRand(42), cfg, surface, nil)

	completions := 0
	var completedAt time.Duration
	if err := g.Start(func() {
		completions++
		completedAt = sched.Now()
	}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	sched.Advance(30 * time.Second)

	if completions != 1 {
		t.Fatalf("Expected exactly 1 completion, got %d", completions)
	}
	if g.Batches() != 61 || len(surface.batches) != 61 {
		t.Errorf("Expected 61 batches, got %d (surface saw %d)", g.Batches(), len(surface.batches))
	}
	if g.Ticks() != 62 {
		t.Errorf("Expected completion on tick 62, got %d ticks", g.Ticks())
	}
	if completedAt != 6200*time.Millisecond {
		t.Errorf("Expected completion at 6.2s, got %v", completedAt)
	}
	if completedAt != Duration(cfg) {
		t.Errorf("Duration disagrees: %v vs %v", Duration(cfg), completedAt)
	}
	if g.Markers() < 2*61 || g.Markers() > 3*61 {
		t.Errorf("Expected markers in [122, 183], got %d", g.Markers())
	}
	if !g.Done() {
		t.Error("Expected Done after completion")
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected tick cancelled, %d timers pending", sched.Pending())
	}
}

func TestBurstMarkersStayInBounds(t *testing.T) {
	sched := engine.NewScheduler()
	surface := &recordingSurface{}
	cfg := config.Default().Flash
	g := NewGenerator(sched, vmath.NewFastRand(7), cfg, surface, nil)
	_ = g.Start(nil)
	sched.Advance(10 * time.Second)

	total := 0
	for i, b := range surface.batches {
		if b.Index != i {
			t.Errorf("Batch %d has index %d", i, b.Index)
		}
		if len(b.Markers) < 2 || len(b.Markers) > 3 {
			t.Errorf("Batch %d has %d markers", i, len(b.Markers))
		}
		for _, m := range b.Markers {
			if m.X < 0 || m.X > 1600 || m.Y < 0 || m.Y > 700 {
				t.Errorf("Marker out of bounds: %+v", m)
			}
			if m.Lifetime != 500*time.Millisecond {
				t.Errorf("Expected 500ms lifetime, got %v", m.Lifetime)
			}
		}
		total += len(b.Markers)
	}
	if total != g.Markers() {
		t.Errorf("Expected %d markers attached, got %d", g.Markers(), total)
	}
}

func TestBurstStartTwice(t *testing.T) {
	sched := engine.NewScheduler()
	g := NewGenerator(sched, vmath.NewFastRand(1), config.Default().Flash, &recordingSurface{}, nil)

	if err := g.Start(nil); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := g.Start(nil); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Expected ErrAlreadyStarted, got %v", err)
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected one tick timer, got %d", sched.Pending())
	}
}

func TestBurstWithoutSurface(t *testing.T) {
	g := NewGenerator(engine.NewScheduler(), vmath.NewFastRand(1), config.Default().Flash, nil, nil)
	if err := g.Start(nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Expected ErrNoSurface, got %v", err)
	}
}

func TestBurstZeroCeiling(t *testing.T) {
	sched := engine.NewScheduler()
	cfg := config.Default().Flash
	cfg.BatchCountMax = 0
	g := NewGenerator(sched, vmath.NewFastRand(3), cfg, &recordingSurface{}, nil)

	completions := 0
	_ = g.Start(func() { completions++ })
	sched.Advance(time.Second)

	if completions != 1 || g.Batches() != 1 || g.Ticks() != 2 {
		t.Errorf("Expected 1 completion after 1 batch on tick 2, got %d/%d/%d", completions, g.Batches(), g.Ticks())
	}
}

func TestBurstPublishesEvents(t *testing.T) {
	sched := engine.NewScheduler()
	q := event.NewEventQueue(sched)
	g := NewGenerator(sched, vmath.NewFastRand(9), config.Default().Flash, &recordingSurface{}, q)
	_ = g.Start(nil)
	sched.Advance(10 * time.Second)

	batches, completes := 0, 0
	for _, ev := range q.Consume() {
		switch ev.Type {
		case event.EventFlashBatch:
			batches++
		case event.EventBurstComplete:
			completes++
			p := ev.Payload.(*event.BurstCompletePayload)
			if p.Batches != 61 || p.Ticks != 62 {
				t.Errorf("Unexpected completion payload %+v", *p)
			}
			if ev.At != 6200*time.Millisecond {
				t.Errorf("Expected completion stamped 6.2s, got %v", ev.At)
			}
		}
	}
	if batches != 61 || completes != 1 {
		t.Errorf("Expected 61 batch events and 1 completion, got %d and %d", batches, completes)
	}
}
