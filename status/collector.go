package status

import (
	"sync/atomic"

	"github.com/lixenwraith/bomaye/event"
)

// Collector mirrors presentation events into registry metrics
type Collector struct {
	stage *AtomicString
	name  *AtomicString

	waveformFrames  *atomic.Int64
	waveformCancels *atomic.Int64
	batches         *atomic.Int64
	markers         *atomic.Int64
	bursts          *atomic.Int64
	letters         *atomic.Int64
	reveals         *atomic.Int64
}

// NewCollector caches the metric pointers it writes
func NewCollector(reg *Registry) *Collector {
	return &Collector{
		stage:           reg.Strings.Get(KeyStage),
		name:            reg.Strings.Get(KeyName),
		waveformFrames:  reg.Ints.Get(KeyWaveformFrames),
		waveformCancels: reg.Ints.Get(KeyWaveformCancels),
		batches:         reg.Ints.Get(KeyFlashBatches),
		markers:         reg.Ints.Get(KeyFlashMarkers),
		bursts:          reg.Ints.Get(KeyBurstCompletions),
		letters:         reg.Ints.Get(KeyLettersRevealed),
		reveals:         reg.Ints.Get(KeyRevealCompletions),
	}
}

// EventTypes implements event.Handler
func (c *Collector) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStageChanged,
		event.EventNameResolved,
		event.EventWaveformFrame,
		event.EventWaveformCancelled,
		event.EventFlashBatch,
		event.EventBurstComplete,
		event.EventLetterRevealed,
		event.EventRevealComplete,
	}
}

// HandleEvent implements event.Handler
func (c *Collector) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventStageChanged:
		if p, ok := ev.Payload.(*event.StageChangedPayload); ok {
			c.stage.Store(p.To)
		}
	case event.EventNameResolved:
		if p, ok := ev.Payload.(*event.NameResolvedPayload); ok {
			c.name.Store(p.First + " " + p.Last)
		}
	case event.EventWaveformFrame:
		c.waveformFrames.Add(1)
	case event.EventWaveformCancelled:
		c.waveformCancels.Add(1)
	case event.EventFlashBatch:
		c.batches.Add(1)
		if p, ok := ev.Payload.(*event.FlashBatchPayload); ok {
			c.markers.Add(int64(p.Markers))
		}
	case event.EventBurstComplete:
		c.bursts.Add(1)
	case event.EventLetterRevealed:
		c.letters.Add(1)
	case event.EventRevealComplete:
		c.reveals.Add(1)
	}
}
