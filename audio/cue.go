package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/sequence"
)

// Sink plays synthesized cues; SoundManager is the device-backed one
type Sink interface {
	Play(beep.Streamer)
	StartHum(beep.Streamer)
	StopHum()
}

// CueHandler turns presentation events into sound
// Hum while the waveform plays, a shutter click per flash batch, a chime per letter
type CueHandler struct {
	sink     Sink
	settings Settings
	humming  bool
}

// NewCueHandler creates a handler playing into sink
func NewCueHandler(sink Sink, s Settings) *CueHandler {
	return &CueHandler{sink: sink, settings: s}
}

// EventTypes implements event.Handler
func (h *CueHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStageChanged,
		event.EventWaveformCancelled,
		event.EventFlashBatch,
		event.EventLetterRevealed,
	}
}

// HandleEvent implements event.Handler
func (h *CueHandler) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventStageChanged:
		p, ok := ev.Payload.(*event.StageChangedPayload)
		if !ok {
			return
		}
		if p.To == sequence.StageWaveform.String() && !h.humming {
			h.sink.StartHum(CreateHumSound(h.settings))
			h.humming = true
		}
	case event.EventWaveformCancelled:
		h.stopHum()
	case event.EventFlashBatch:
		h.stopHum()
		h.sink.Play(CreateShutterSound(h.settings))
	case event.EventLetterRevealed:
		p, ok := ev.Payload.(*event.LetterRevealedPayload)
		if !ok {
			return
		}
		h.sink.Play(CreateChimeSound(h.settings, ChimeFrequency(p.Token, p.Index)))
	}
}

func (h *CueHandler) stopHum() {
	if h.humming {
		h.sink.StopHum()
		h.humming = false
	}
}
