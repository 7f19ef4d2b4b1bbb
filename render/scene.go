package render

import (
	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/sequence"
	"github.com/lixenwraith/bomaye/status"
)

// Scene is the full set of presentation layers for one run
type Scene struct {
	Waveform  *WaveformLayer
	Flash     *FlashLayer
	Filmstrip *FilmstripLayer
	FirstName *NameLayer
	LastName  *NameLayer
	Status    *StatusLayer
}

// NewScene creates every layer; the status line shows only in debug
func NewScene(clock Clock, cfg config.Config, reg *status.Registry, debug bool) *Scene {
	return &Scene{
		Waveform:  NewWaveformLayer(),
		Flash:     NewFlashLayer(clock),
		Filmstrip: NewFilmstripLayer(clock, cfg.Render),
		FirstName: NewNameLayer(clock, cfg, -1),
		LastName:  NewNameLayer(clock, cfg, 1),
		Status:    NewStatusLayer(reg, debug),
	}
}

// Register adds every layer to o in draw order
func (s *Scene) Register(o *RenderOrchestrator) {
	o.Register(s.Waveform, PriorityWaveform)
	o.Register(s.Flash, PriorityFlash)
	o.Register(s.Filmstrip, PriorityFilmstrip)
	o.Register(s.FirstName, PriorityName)
	o.Register(s.LastName, PriorityName)
	o.Register(s.Status, PriorityDebug)
}

// Surfaces returns the layers as sequencer surfaces
func (s *Scene) Surfaces() sequence.Surfaces {
	return sequence.Surfaces{
		Waveform:  s.Waveform,
		Flash:     s.Flash,
		Filmstrip: s.Filmstrip,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	}
}
