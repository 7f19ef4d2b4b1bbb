package status

import (
	"strings"
	"testing"

	"github.com/lixenwraith/bomaye/event"
)

func TestMetricMapReturnsCachedPointer(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get("x")
	a.Add(3)
	if b := reg.Ints.Get("x"); b != a || b.Load() != 3 {
		t.Error("Expected Get to return the cached pointer")
	}
	if reg.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", reg.TotalCount())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to load empty")
	}
	s.Store(strings.Repeat("A", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestCollectorCountsEvents(t *testing.T) {
	reg := NewRegistry()
	q := event.NewEventQueue(nil)
	r := event.NewRouter(q)
	r.Register(NewCollector(reg))

	q.Push(event.EventStageChanged, &event.StageChangedPayload{From: "Idle", To: "FlashBursting"})
	q.Push(event.EventFlashBatch, &event.FlashBatchPayload{Index: 1, Markers: 2})
	q.Push(event.EventFlashBatch, &event.FlashBatchPayload{Index: 2, Markers: 3})
	q.Push(event.EventWaveformCancelled, &event.WaveformCancelledPayload{Frames: 150})
	q.Push(event.EventNameResolved, &event.NameResolvedPayload{First: "KENNY", Last: "OMEGA"})
	r.DispatchAll()

	if got := reg.Ints.Get(KeyFlashBatches).Load(); got != 2 {
		t.Errorf("Expected 2 batches, got %d", got)
	}
	if got := reg.Ints.Get(KeyFlashMarkers).Load(); got != 5 {
		t.Errorf("Expected 5 markers, got %d", got)
	}
	if got := reg.Ints.Get(KeyWaveformCancels).Load(); got != 1 {
		t.Errorf("Expected 1 cancel, got %d", got)
	}
	if got := reg.Strings.Get(KeyStage).Load(); got != "FlashBursting" {
		t.Errorf("Expected stage FlashBursting, got %q", got)
	}

	line := reg.Line()
	if !strings.HasPrefix(line, "name=KENNY OMEGA stage=FlashBursting") {
		t.Errorf("Expected string metrics first in key order, got %q", line)
	}
	if !strings.Contains(line, "flash.markers=5") {
		t.Errorf("Expected marker count in line, got %q", line)
	}
}
