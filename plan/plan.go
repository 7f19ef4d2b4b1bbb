// Package plan computes the choreography of a run ahead of time and stores it as YAML
//
// A plan is produced by running the real sequencer against a virtual clock with
// surfaces that draw nothing, so it always agrees with what a live run does.
package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/bomaye/burst"
	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/reveal"
	"github.com/lixenwraith/bomaye/sequence"
	"github.com/lixenwraith/bomaye/vmath"
	"github.com/lixenwraith/bomaye/waveform"
)

// ErrUnfinished means the simulated run did not reach its terminal stage
var ErrUnfinished = errors.New("run did not finish")

// Plan is the timeline of one run
type Plan struct {
	RunID    string          `yaml:"run_id,omitempty"`
	Seed     uint64          `yaml:"seed"`
	Name     Name            `yaml:"name"`
	Stages   []Stage         `yaml:"stages"`
	Waveform Waveform        `yaml:"waveform"`
	Burst    Burst           `yaml:"burst"`
	Reveal   []Token         `yaml:"reveal"`
	Finished config.Duration `yaml:"finished"`
}

// Name is the resolved display name
type Name struct {
	Input    string `yaml:"input"`
	First    string `yaml:"first"`
	Last     string `yaml:"last"`
	Fallback bool   `yaml:"fallback"`
}

// Stage is a stage entry at an offset from run start
type Stage struct {
	Stage string          `yaml:"stage"`
	At    config.Duration `yaml:"at"`
}

// Waveform summarizes the background trace
type Waveform struct {
	Frames      int             `yaml:"frames"`
	Cancels     int             `yaml:"cancels"`
	CancelledAt config.Duration `yaml:"cancelled_at"`
}

// Burst summarizes the flash burst
type Burst struct {
	Batches   int             `yaml:"batches"`
	Markers   int             `yaml:"markers"`
	Ticks     int             `yaml:"ticks"`
	Completed config.Duration `yaml:"completed"`
}

// Token is the reveal schedule of one name token
type Token struct {
	Text    string          `yaml:"text"`
	Cadence config.Duration `yaml:"cadence"`
	Letters []Letter        `yaml:"letters"`
}

// Letter is one revealed cell
type Letter struct {
	Rune   string          `yaml:"rune"`
	At     config.Duration `yaml:"at"`
	Offset float64         `yaml:"offset"`
}

// Horizon bounds how far a simulated run may go
func Horizon(cfg config.Config) time.Duration {
	t := cfg.Timeline
	var total time.Duration
	for _, d := range []config.Duration{t.WaveformDelay, t.FlashDelay, t.FilmstripDuration, t.NameDelay, t.PostRevealDelay} {
		total += max(d.Std(), 0)
	}
	return total + burst.Duration(cfg.Flash) + max(cfg.Reveal.Budget.Std(), 0) + time.Minute
}

// Build simulates a run of cfg with the raw name input
func Build(cfg config.Config, raw string) (*Plan, error) {
	sched := engine.NewScheduler()
	q := event.NewEventQueue(sched)

	seq, err := sequence.New(cfg, sched, blankSurfaces(),
		sequence.WithRandom(vmath.NewFastRand(cfg.Seed)),
		sequence.WithEvents(q),
		sequence.WithNameInput(raw),
	)
	if err != nil {
		return nil, err
	}
	if err := seq.Start(); err != nil {
		return nil, err
	}
	sched.RunUntilIdle(Horizon(cfg))

	p := &Plan{
		Seed:   cfg.Seed,
		Name:   Name{Input: raw},
		Stages: []Stage{{Stage: sequence.StageIdle.String()}},
	}
	tokens := [2]Token{}

	for _, ev := range q.Consume() {
		at := config.Duration(ev.At)
		switch ev.Type {
		case event.EventStageChanged:
			pl := ev.Payload.(*event.StageChangedPayload)
			p.Stages = append(p.Stages, Stage{Stage: pl.To, At: at})
			if pl.To == sequence.StageFilmstripLoop.String() {
				p.Finished = at
			}
		case event.EventWaveformFrame:
			p.Waveform.Frames++
		case event.EventWaveformCancelled:
			p.Waveform.Cancels++
			p.Waveform.CancelledAt = at
		case event.EventBurstComplete:
			pl := ev.Payload.(*event.BurstCompletePayload)
			p.Burst = Burst{Batches: pl.Batches, Markers: pl.Markers, Ticks: pl.Ticks, Completed: at}
		case event.EventNameResolved:
			pl := ev.Payload.(*event.NameResolvedPayload)
			p.Name.First, p.Name.Last, p.Name.Fallback = pl.First, pl.Last, pl.Fallback
		case event.EventLetterRevealed:
			pl := ev.Payload.(*event.LetterRevealedPayload)
			if pl.Token < 0 || pl.Token >= len(tokens) {
				continue
			}
			tokens[pl.Token].Letters = append(tokens[pl.Token].Letters, Letter{
				Rune:   string(pl.Rune),
				At:     at,
				Offset: pl.Offset,
			})
		}
	}

	for i, text := range []string{p.Name.First, p.Name.Last} {
		tokens[i].Text = text
		tokens[i].Cadence = config.Duration(reveal.NewCursor(len([]rune(text)), cfg.Reveal.Budget.Std()).Cadence)
	}
	p.Reveal = tokens[:]

	if !seq.Finished() {
		return p, fmt.Errorf("%w: stopped in %s at %v", ErrUnfinished, seq.Stage(), sched.Now())
	}
	return p, nil
}

type blank struct{}

func (blank) ShowWaveform()               {}
func (blank) DrawWaveform(waveform.Frame) {}
func (blank) RemoveWaveform()             {}
func (blank) Attach(burst.Batch)          {}
func (blank) ShowFilmstrip(bool)          {}
func (blank) HideFilmstrip()              {}
func (blank) SetToken([]rune)             {}
func (blank) RevealLetter(reveal.Letter)  {}

func blankSurfaces() sequence.Surfaces {
	b := blank{}
	return sequence.Surfaces{Waveform: b, Flash: b, Filmstrip: b, FirstName: b, LastName: b}
}
