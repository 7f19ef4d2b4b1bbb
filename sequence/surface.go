package sequence

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/bomaye/burst"
	"github.com/lixenwraith/bomaye/reveal"
	"github.com/lixenwraith/bomaye/waveform"
)

// ErrMissingSurface is a fatal configuration error: a required surface was not provided
var ErrMissingSurface = errors.New("missing presentation surface")

// WaveformSurface draws the background trace
type WaveformSurface interface {
	ShowWaveform()
	DrawWaveform(waveform.Frame)
	RemoveWaveform()
}

// FilmstripSurface shows and hides the filmstrip overlay
type FilmstripSurface interface {
	ShowFilmstrip(repeat bool)
	HideFilmstrip()
}

// NameSurface displays one name token and reveals its cells
type NameSurface interface {
	SetToken(cells []rune)
	RevealLetter(reveal.Letter)
}

// Surfaces are the host-provided presentation targets; all are required
type Surfaces struct {
	Waveform  WaveformSurface
	Flash     burst.Surface
	Filmstrip FilmstripSurface
	FirstName NameSurface
	LastName  NameSurface
}

// Validate reports every missing surface, each wrapping ErrMissingSurface
func (s Surfaces) Validate() error {
	var errs []error
	missing := func(present bool, name string) {
		if !present {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSurface, name))
		}
	}
	missing(s.Waveform != nil, "waveform")
	missing(s.Flash != nil, "flash")
	missing(s.Filmstrip != nil, "filmstrip")
	missing(s.FirstName != nil, "first name")
	missing(s.LastName != nil, "last name")
	return errors.Join(errs...)
}
