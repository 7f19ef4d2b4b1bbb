// Package sequence orders the presentation stages in time
//
// The Sequencer owns the stage value and every top-level timer. Waveform start and the
// flash transition are independent timers both anchored to run start; they race, and
// whichever comes due first decides whether the waveform ever draws. The waveform's
// repeating timer is cancelled by the sequencer exactly once.
package sequence

import (
	"errors"
	"log"

	"github.com/lixenwraith/bomaye/burst"
	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/name"
	"github.com/lixenwraith/bomaye/reveal"
	"github.com/lixenwraith/bomaye/vmath"
	"github.com/lixenwraith/bomaye/waveform"
)

// ErrAlreadyStarted is returned by a second Start
var ErrAlreadyStarted = errors.New("sequencer already started")

// Option configures a Sequencer
type Option func(*Sequencer)

// WithRandom sets the random source shared by the waveform and the burst
func WithRandom(rng vmath.RangeSource) Option {
	return func(s *Sequencer) { s.rng = rng }
}

// WithEvents publishes stage, batch and letter events to q
func WithEvents(q *event.EventQueue) Option {
	return func(s *Sequencer) { s.events = q }
}

// WithNameInput sets the raw, untrusted name; absent input is the empty string
func WithNameInput(raw string) Option {
	return func(s *Sequencer) { s.rawName = raw }
}

// Sequencer drives one presentation run on a scheduler
type Sequencer struct {
	cfg      config.Config
	sched    *engine.Scheduler
	surfaces Surfaces
	rng      vmath.RangeSource
	events   *event.EventQueue
	rawName  string

	sanitizer *name.Sanitizer
	revealer  *reveal.Scheduler
	wave      *waveform.Generator
	burst     *burst.Generator

	stage   Stage
	history []Stage
	started bool

	waveformTimer   *engine.Timer
	waveformCancels int
	flashStarted    bool

	token         name.Token
	verdict       name.Verdict
	revealPending int
}

// New creates a sequencer over cfg; every surface must be present
func New(cfg config.Config, sched *engine.Scheduler, surfaces Surfaces, opts ...Option) (*Sequencer, error) {
	if err := surfaces.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sequencer{
		cfg:      cfg,
		sched:    sched,
		surfaces: surfaces,
		stage:    StageIdle,
		history:  []Stage{StageIdle},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewFastRand(cfg.Seed)
	}

	s.sanitizer = name.NewSanitizer(cfg.Name)
	s.revealer = reveal.NewScheduler(sched, cfg.Reveal)
	s.wave = waveform.NewGenerator(s.rng, cfg.Waveform)
	s.burst = burst.NewGenerator(sched, s.rng, cfg.Flash, surfaces.Flash, s.events)
	return s, nil
}

// Start schedules the waveform start and the flash transition from now
func (s *Sequencer) Start() error {
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	s.sched.After(s.cfg.Timeline.WaveformDelay.Std(), s.onWaveformDelayElapsed)
	s.sched.After(s.cfg.Timeline.FlashDelay.Std(), s.onFlashDelayElapsed)
	return nil
}

func (s *Sequencer) onWaveformDelayElapsed() {
	s.waveformTimer = s.sched.Every(s.cfg.Waveform.FrameInterval.Std(), s.onWaveformFrame)

	// The flash already claimed the screen: the waveform never shows
	if s.flashStarted {
		s.cancelWaveform()
		return
	}

	s.surfaces.Waveform.ShowWaveform()
	s.setStage(StageWaveform)
}

func (s *Sequencer) onWaveformFrame() {
	frame := s.wave.Next()
	s.surfaces.Waveform.DrawWaveform(frame)
	s.publish(event.EventWaveformFrame, &event.WaveformFramePayload{Frame: frame.Index})
}

func (s *Sequencer) cancelWaveform() {
	if !s.waveformTimer.Cancel() {
		return
	}
	s.waveformCancels++
	s.publish(event.EventWaveformCancelled, &event.WaveformCancelledPayload{Frames: s.wave.Frames()})
}

func (s *Sequencer) onFlashDelayElapsed() {
	s.flashStarted = true
	s.cancelWaveform()
	s.surfaces.Waveform.RemoveWaveform()
	s.setStage(StageFlash)

	if err := s.burst.Start(s.onBurstComplete); err != nil {
		// Surfaces are validated in New; a failure here is a wiring bug
		log.Printf("sequence: burst start: %v", err)
	}
}

func (s *Sequencer) onBurstComplete() {
	s.setStage(StageFilmstrip)
	s.surfaces.Filmstrip.ShowFilmstrip(false)
	s.publish(event.EventFilmstripShown, &event.FilmstripPayload{Repeat: false})
	s.sched.After(s.cfg.Timeline.FilmstripDuration.Std(), s.onFilmstripTimeout)
}

func (s *Sequencer) onFilmstripTimeout() {
	s.surfaces.Filmstrip.HideFilmstrip()
	s.publish(event.EventFilmstripHidden, nil)
	s.sched.After(s.cfg.Timeline.NameDelay.Std(), s.onNameDelayElapsed)
}

func (s *Sequencer) onNameDelayElapsed() {
	s.setStage(StageName)

	s.token, s.verdict = s.sanitizer.Parse(s.rawName)
	first, last := s.token.Strings()
	if s.verdict != name.Accepted {
		log.Printf("sequence: name input %s, using %q", s.verdict, first+s.cfg.Name.Delimiter+last)
	}
	s.publish(event.EventNameResolved, &event.NameResolvedPayload{
		First:    first,
		Last:     last,
		Fallback: s.verdict != name.Accepted,
	})

	s.surfaces.FirstName.SetToken(s.token.First)
	s.surfaces.LastName.SetToken(s.token.Last)

	// Join of both tokens; an empty token completes synchronously inside Reveal
	s.revealPending = 2
	s.revealer.Reveal(s.token.First, s.letterHandler(0, s.surfaces.FirstName), s.onTokenRevealed)
	s.revealer.Reveal(s.token.Last, s.letterHandler(1, s.surfaces.LastName), s.onTokenRevealed)
}

func (s *Sequencer) letterHandler(token int, surface NameSurface) func(reveal.Letter) {
	return func(l reveal.Letter) {
		surface.RevealLetter(l)
		s.publish(event.EventLetterRevealed, &event.LetterRevealedPayload{
			Token:  token,
			Index:  l.Index,
			Rune:   l.Rune,
			Offset: l.Offset,
		})
	}
}

func (s *Sequencer) onTokenRevealed() {
	s.revealPending--
	if s.revealPending != 0 {
		return
	}
	s.publish(event.EventRevealComplete, nil)
	s.sched.After(s.cfg.Timeline.PostRevealDelay.Std(), s.onRevealComplete)
}

func (s *Sequencer) onRevealComplete() {
	s.setStage(StageFilmstripLoop)
	s.surfaces.Filmstrip.ShowFilmstrip(true)
	s.publish(event.EventFilmstripShown, &event.FilmstripPayload{Repeat: true})
	s.publish(event.EventPresentationFinished, nil)
}

func (s *Sequencer) setStage(to Stage) {
	from := s.stage
	if !CanTransition(from, to) {
		log.Printf("sequence: invalid transition %s -> %s", from, to)
		return
	}
	s.stage = to
	s.history = append(s.history, to)
	log.Printf("sequence: %s -> %s at %v", from, to, s.sched.Now())
	s.publish(event.EventStageChanged, &event.StageChangedPayload{From: from.String(), To: to.String()})
}

func (s *Sequencer) publish(t event.EventType, payload any) {
	if s.events != nil {
		s.events.Push(t, payload)
	}
}

// Stage returns the active stage
func (s *Sequencer) Stage() Stage { return s.stage }

// History returns every stage entered, starting with idle
func (s *Sequencer) History() []Stage {
	out := make([]Stage, len(s.history))
	copy(out, s.history)
	return out
}

// Finished reports whether the terminal stage was reached
func (s *Sequencer) Finished() bool { return s.stage.Terminal() }

// Token returns the resolved display name; empty before the name stage
func (s *Sequencer) Token() name.Token { return s.token }

// WaveformCancels returns how many times the waveform timer was actually cancelled
func (s *Sequencer) WaveformCancels() int { return s.waveformCancels }

// WaveformFrames returns how many waveform frames were drawn
func (s *Sequencer) WaveformFrames() int { return s.wave.Frames() }

// Burst exposes the run's burst generator for inspection
func (s *Sequencer) Burst() *burst.Generator { return s.burst }
