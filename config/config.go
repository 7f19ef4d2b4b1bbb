// Package config holds the immutable presentation configuration and its loaders
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/bomaye/parameter"
)

// ErrInvalid marks a configuration that cannot drive a run
var ErrInvalid = errors.New("invalid configuration")

// Duration is a time.Duration that reads and writes as text ("1700ms") in TOML and env
type Duration time.Duration

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the full set of run constants, set once before a run and read-only after
type Config struct {
	// Seed fixes the random source; 0 seeds from the clock
	Seed uint64 `toml:"seed" env:"SEED"`

	Timeline Timeline `toml:"timeline" envPrefix:"TIMELINE_"`
	Waveform Waveform `toml:"waveform" envPrefix:"WAVEFORM_"`
	Flash    Flash    `toml:"flash" envPrefix:"FLASH_"`
	Reveal   Reveal   `toml:"reveal" envPrefix:"REVEAL_"`
	Name     Name     `toml:"name" envPrefix:"NAME_"`
	Render   Render   `toml:"render" envPrefix:"RENDER_"`
	Audio    Audio    `toml:"audio" envPrefix:"AUDIO_"`
}

// Timeline holds the stage transition delays
type Timeline struct {
	WaveformDelay     Duration `toml:"waveform_delay" env:"WAVEFORM_DELAY"`
	FlashDelay        Duration `toml:"flash_delay" env:"FLASH_DELAY"`
	FilmstripDuration Duration `toml:"filmstrip_duration" env:"FILMSTRIP_DURATION"`
	NameDelay         Duration `toml:"name_delay" env:"NAME_DELAY"`
	PostRevealDelay   Duration `toml:"post_reveal_delay" env:"POST_REVEAL_DELAY"`
}

// Waveform holds the background waveform frame parameters
type Waveform struct {
	FrameInterval Duration `toml:"frame_interval" env:"FRAME_INTERVAL"`
	Points        int      `toml:"points" env:"POINTS"`
	OffsetMin     int      `toml:"offset_min" env:"OFFSET_MIN"`
	OffsetMax     int      `toml:"offset_max" env:"OFFSET_MAX"`
}

// Flash holds the burst parameters
type Flash struct {
	Cadence        Duration `toml:"cadence" env:"CADENCE"`
	BatchCountMax  int      `toml:"batch_count_max" env:"BATCH_COUNT_MAX"`
	MarkersMin     int      `toml:"markers_min" env:"MARKERS_MIN"`
	MarkersMax     int      `toml:"markers_max" env:"MARKERS_MAX"`
	BoundsWidth    int      `toml:"bounds_width" env:"BOUNDS_WIDTH"`
	BoundsHeight   int      `toml:"bounds_height" env:"BOUNDS_HEIGHT"`
	MarkerLifetime Duration `toml:"marker_lifetime" env:"MARKER_LIFETIME"`
}

// Reveal holds the letter reveal parameters
type Reveal struct {
	Budget          Duration `toml:"budget" env:"BUDGET"`
	OffsetStep      float64  `toml:"offset_step" env:"OFFSET_STEP"`
	LetterAnimation Duration `toml:"letter_animation" env:"LETTER_ANIMATION"`
}

// Name holds the display name policy
type Name struct {
	Delimiter       string `toml:"delimiter" env:"DELIMITER"`
	MaxLength       int    `toml:"max_length" env:"MAX_LENGTH"`
	Fallback        string `toml:"fallback" env:"FALLBACK"`
	FallbackTooLong string `toml:"fallback_too_long" env:"FALLBACK_TOO_LONG"`
	Denylist        string `toml:"denylist" env:"DENYLIST"`
}

// Render holds terminal geometry
type Render struct {
	FrameInterval    Duration `toml:"frame_interval" env:"FRAME_INTERVAL"`
	CellWidthUnits   int      `toml:"cell_width_units" env:"CELL_WIDTH_UNITS"`
	CellHeightUnits  int      `toml:"cell_height_units" env:"CELL_HEIGHT_UNITS"`
	LetterSpacing    int      `toml:"letter_spacing" env:"LETTER_SPACING"`
	FilmstripHeight  int      `toml:"filmstrip_height" env:"FILMSTRIP_HEIGHT"`
	FilmstripFrame   int      `toml:"filmstrip_frame" env:"FILMSTRIP_FRAME"`
	FilmstripFadeIn  Duration `toml:"filmstrip_fade_in" env:"FILMSTRIP_FADE_IN"`
	FilmstripScroll  Duration `toml:"filmstrip_scroll" env:"FILMSTRIP_SCROLL"`
}

// Audio holds sound cue settings
type Audio struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

// Default returns the configuration of the original choreography
func Default() Config {
	return Config{
		Timeline: Timeline{
			WaveformDelay:     Duration(parameter.WaveformDelay),
			FlashDelay:        Duration(parameter.FlashDelay),
			FilmstripDuration: Duration(parameter.FilmstripDuration),
			NameDelay:         Duration(parameter.NameDelay),
			PostRevealDelay:   Duration(parameter.PostRevealDelay),
		},
		Waveform: Waveform{
			FrameInterval: Duration(parameter.WaveformFrameInterval),
			Points:        parameter.WaveformPoints,
			OffsetMin:     parameter.WaveformOffsetMin,
			OffsetMax:     parameter.WaveformOffsetMax,
		},
		Flash: Flash{
			Cadence:        Duration(parameter.FlashCadence),
			BatchCountMax:  parameter.FlashBatchCountMax,
			MarkersMin:     parameter.FlashMarkersMin,
			MarkersMax:     parameter.FlashMarkersMax,
			BoundsWidth:    parameter.FlashBoundsWidth,
			BoundsHeight:   parameter.FlashBoundsHeight,
			MarkerLifetime: Duration(parameter.FlashMarkerLifetime),
		},
		Reveal: Reveal{
			Budget:          Duration(parameter.RevealBudget),
			OffsetStep:      parameter.RevealOffsetStep,
			LetterAnimation: Duration(parameter.RevealLetterAnimation),
		},
		Name: Name{
			Delimiter:       parameter.NameDelimiter,
			MaxLength:       parameter.NameMaxLength,
			Fallback:        parameter.NameFallback,
			FallbackTooLong: parameter.NameFallbackTooLong,
			Denylist:        parameter.NameDenylist,
		},
		Render: Render{
			FrameInterval:   Duration(parameter.FrameUpdateInterval),
			CellWidthUnits:  parameter.CellWidthUnits,
			CellHeightUnits: parameter.CellHeightUnits,
			LetterSpacing:   parameter.NameLetterSpacing,
			FilmstripHeight: parameter.FilmstripHeight,
			FilmstripFrame:  parameter.FilmstripFrameWidth,
			FilmstripFadeIn: Duration(parameter.FilmstripFadeIn),
			FilmstripScroll: Duration(parameter.FilmstripScrollInterval),
		},
		Audio: Audio{
			Enabled: false,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Validate reports every field that cannot drive a run
// Delays may be zero or negative (they short-circuit); cadences must be positive
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Waveform.FrameInterval > 0, "waveform.frame_interval must be positive, got %s", c.Waveform.FrameInterval.Std())
	check(c.Waveform.Points >= 0, "waveform.points must not be negative, got %d", c.Waveform.Points)
	check(c.Waveform.OffsetMin <= c.Waveform.OffsetMax, "waveform.offset_min %d exceeds offset_max %d", c.Waveform.OffsetMin, c.Waveform.OffsetMax)

	check(c.Flash.Cadence > 0, "flash.cadence must be positive, got %s", c.Flash.Cadence.Std())
	check(c.Flash.MarkersMin >= 0, "flash.markers_min must not be negative, got %d", c.Flash.MarkersMin)
	check(c.Flash.MarkersMin <= c.Flash.MarkersMax, "flash.markers_min %d exceeds markers_max %d", c.Flash.MarkersMin, c.Flash.MarkersMax)
	check(c.Flash.BoundsWidth >= 0 && c.Flash.BoundsHeight >= 0, "flash bounds must not be negative, got %dx%d", c.Flash.BoundsWidth, c.Flash.BoundsHeight)

	check(c.Name.Delimiter != "", "name.delimiter must not be empty")
	check(c.Name.MaxLength > 0, "name.max_length must be positive, got %d", c.Name.MaxLength)

	check(c.Render.FrameInterval > 0, "render.frame_interval must be positive, got %s", c.Render.FrameInterval.Std())
	check(c.Render.CellWidthUnits > 0 && c.Render.CellHeightUnits > 0, "render cell units must be positive, got %dx%d", c.Render.CellWidthUnits, c.Render.CellHeightUnits)
	check(c.Render.FilmstripScroll > 0, "render.filmstrip_scroll must be positive, got %s", c.Render.FilmstripScroll.Std())

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %g", c.Audio.Volume)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
