package sequence

import "fmt"

// Phase is one named part of the presentation timeline
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseWaveformPlaying
	PhaseFlashBursting
	PhaseFilmstripShowing
	PhaseNameRevealing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWaveformPlaying:
		return "waveform"
	case PhaseFlashBursting:
		return "flash"
	case PhaseFilmstripShowing:
		return "filmstrip"
	case PhaseNameRevealing:
		return "name"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Stage is the active phase; Repeat only applies to the filmstrip
type Stage struct {
	Phase  Phase
	Repeat bool
}

// Stages of the timeline in order
var (
	StageIdle          = Stage{Phase: PhaseIdle}
	StageWaveform      = Stage{Phase: PhaseWaveformPlaying}
	StageFlash         = Stage{Phase: PhaseFlashBursting}
	StageFilmstrip     = Stage{Phase: PhaseFilmstripShowing}
	StageName          = Stage{Phase: PhaseNameRevealing}
	StageFilmstripLoop = Stage{Phase: PhaseFilmstripShowing, Repeat: true}
)

func (s Stage) String() string {
	if s.Phase == PhaseFilmstripShowing {
		return fmt.Sprintf("filmstrip(repeat=%t)", s.Repeat)
	}
	return s.Phase.String()
}

// Terminal reports whether the stage is the stable end of the timeline
func (s Stage) Terminal() bool {
	return s == StageFilmstripLoop
}

// validTransitions lists the stages reachable from each stage
// Idle may skip the waveform when the flash delay elapses first
var validTransitions = map[Stage][]Stage{
	StageIdle:      {StageWaveform, StageFlash},
	StageWaveform:  {StageFlash},
	StageFlash:     {StageFilmstrip},
	StageFilmstrip: {StageName},
	StageName:      {StageFilmstripLoop},
}

// CanTransition checks if a stage transition is valid
func CanTransition(from, to Stage) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
