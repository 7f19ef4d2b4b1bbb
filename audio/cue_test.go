package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/event"
)

type recordingSink struct {
	played    int
	humStarts int
	humStops  int
}

func (s *recordingSink) Play(beep.Streamer)     { s.played++ }
func (s *recordingSink) StartHum(beep.Streamer) { s.humStarts++ }
func (s *recordingSink) StopHum()               { s.humStops++ }

func TestCueHandlerRoutesEvents(t *testing.T) {
	q := event.NewEventQueue(nil)
	router := event.NewRouter(q)
	sink := &recordingSink{}
	router.Register(NewCueHandler(sink, NewSettings(config.Default().Audio)))

	q.Push(event.EventStageChanged, &event.StageChangedPayload{From: "idle", To: "waveform"})
	q.Push(event.EventStageChanged, &event.StageChangedPayload{From: "idle", To: "waveform"})
	q.Push(event.EventWaveformCancelled, &event.WaveformCancelledPayload{Frames: 10})
	q.Push(event.EventFlashBatch, &event.FlashBatchPayload{Index: 0, Markers: 2})
	q.Push(event.EventFlashBatch, &event.FlashBatchPayload{Index: 1, Markers: 3})
	q.Push(event.EventLetterRevealed, &event.LetterRevealedPayload{Token: 0, Index: 0, Rune: 'K'})
	q.Push(event.EventPresentationFinished, nil)

	router.DispatchAll()

	if sink.humStarts != 1 || sink.humStops != 1 {
		t.Errorf("Expected one hum start and stop, got %d/%d", sink.humStarts, sink.humStops)
	}
	if sink.played != 3 {
		t.Errorf("Expected 2 shutters and 1 chime, got %d cues", sink.played)
	}
}

func TestSoundManagerIgnoresCuesBeforeInit(t *testing.T) {
	sm := NewSoundManager(NewSettings(config.Default().Audio))
	sm.Play(CreateShutterSound(NewSettings(config.Default().Audio)))
	sm.StartHum(CreateHumSound(NewSettings(config.Default().Audio)))
	sm.StopHum()
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("Expected no cues played without a device, got %d", sm.Played())
	}
}
