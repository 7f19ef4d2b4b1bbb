package event

import "time"

// EventType represents the type of presentation event
type EventType int

const (
	// EventStageChanged marks a sequencer stage transition
	// Trigger: Sequencer | Payload: *StageChangedPayload
	EventStageChanged EventType = iota + 1

	// EventWaveformFrame marks one waveform redraw
	// Trigger: Sequencer waveform timer | Payload: *WaveformFramePayload
	EventWaveformFrame

	// EventWaveformCancelled marks the single cancellation of the waveform timer
	// Trigger: Sequencer | Payload: *WaveformCancelledPayload
	EventWaveformCancelled

	// EventFlashBatch marks one emitted burst batch
	// Trigger: burst.Generator tick | Payload: *FlashBatchPayload
	EventFlashBatch

	// EventBurstComplete marks burst completion, emitted exactly once
	// Trigger: burst.Generator | Payload: *BurstCompletePayload
	EventBurstComplete

	// EventFilmstripShown and EventFilmstripHidden track filmstrip visibility
	// Payload: *FilmstripPayload / nil
	EventFilmstripShown
	EventFilmstripHidden

	// EventNameResolved carries the sanitized display name
	// Trigger: Sequencer name stage | Payload: *NameResolvedPayload
	EventNameResolved

	// EventLetterRevealed marks one revealed letter cell
	// Trigger: reveal.Scheduler | Payload: *LetterRevealedPayload
	EventLetterRevealed

	// EventRevealComplete marks the join of both name tokens
	// Payload: nil
	EventRevealComplete

	// EventPresentationFinished marks the terminal looping stage
	// Payload: nil
	EventPresentationFinished
)

// Event is a queued presentation event stamped with scheduler time
type Event struct {
	Type    EventType
	Payload any
	At      time.Duration
}
