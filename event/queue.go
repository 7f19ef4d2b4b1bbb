package event

import (
	"time"

	"github.com/lixenwraith/bomaye/parameter"
)

// Clock reports the current scheduler time for event stamping
type Clock interface {
	Now() time.Duration
}

// EventQueue is a FIFO of presentation events
// Not safe for concurrent use: producers and the consumer all run on the frame loop
type EventQueue struct {
	clock  Clock
	events []Event
}

// NewEventQueue creates a queue stamping events with clock time; clock may be nil
func NewEventQueue(clock Clock) *EventQueue {
	return &EventQueue{
		clock:  clock,
		events: make([]Event, 0, parameter.EventQueueSize),
	}
}

// Push appends an event, stamping it when the queue has a clock
func (eq *EventQueue) Push(t EventType, payload any) {
	ev := Event{Type: t, Payload: payload}
	if eq.clock != nil {
		ev.At = eq.clock.Now()
	}
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []Event {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
