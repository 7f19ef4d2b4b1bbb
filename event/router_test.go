package event

import (
	"testing"
	"time"
)

type fixedClock time.Duration

func (c fixedClock) Now() time.Duration { return time.Duration(c) }

type recordingHandler struct {
	types []EventType
	got   []Event
}

func (h *recordingHandler) HandleEvent(ev Event)    { h.got = append(h.got, ev) }
func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatchesInOrder(t *testing.T) {
	q := NewEventQueue(fixedClock(3 * time.Second))
	r := NewRouter(q)

	batches := &recordingHandler{types: []EventType{EventFlashBatch}}
	everything := &recordingHandler{types: AllTypes()}
	r.Register(batches)
	r.Register(everything)

	q.Push(EventStageChanged, &StageChangedPayload{From: "Idle", To: "WaveformPlaying"})
	q.Push(EventFlashBatch, &FlashBatchPayload{Index: 1, Markers: 2})
	q.Push(EventFlashBatch, &FlashBatchPayload{Index: 2, Markers: 3})

	if n := r.DispatchAll(); n != 3 {
		t.Fatalf("Expected 3 events dispatched, got %d", n)
	}

	if len(batches.got) != 2 {
		t.Fatalf("Expected 2 batch events, got %d", len(batches.got))
	}
	if p := batches.got[1].Payload.(*FlashBatchPayload); p.Index != 2 {
		t.Errorf("Expected second batch index 2, got %d", p.Index)
	}
	if len(everything.got) != 3 || everything.got[0].Type != EventStageChanged {
		t.Errorf("Expected catch-all handler to see all events in order, got %v", everything.got)
	}
	if everything.got[0].At != 3*time.Second {
		t.Errorf("Expected events stamped with clock time, got %v", everything.got[0].At)
	}

	if q.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", q.Len())
	}
	if n := r.DispatchAll(); n != 0 {
		t.Errorf("Expected nothing on second dispatch, got %d", n)
	}
}

func TestHandlerFunc(t *testing.T) {
	q := NewEventQueue(nil)
	r := NewRouter(q)

	count := 0
	r.Register(HandlerFunc{Types: []EventType{EventRevealComplete}, Fn: func(Event) { count++ }})

	q.Push(EventRevealComplete, nil)
	q.Push(EventFilmstripHidden, nil)
	r.DispatchAll()

	if count != 1 {
		t.Errorf("Expected 1 matching event, got %d", count)
	}
	if r.HandlerCount(EventRevealComplete) != 1 || r.HandlerCount(EventFilmstripHidden) != 0 {
		t.Error("Unexpected handler counts")
	}
}

func TestEventTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		if et.String() == "Unknown" {
			t.Errorf("Event type %d has no registered name", et)
		}
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected unregistered type to be Unknown")
	}
}
