package parameter

import "time"

// Stage Timeline
// All delays are measured from the moment the stage that schedules them runs;
// WaveformDelay and FlashDelay are both anchored to run start
const (
	// WaveformDelay is the time before the waveform starts redrawing
	WaveformDelay = 1700 * time.Millisecond

	// FlashDelay is the time before the waveform is retired and the flash burst begins
	FlashDelay = 8000 * time.Millisecond

	// FilmstripDuration is how long the first filmstrip stays on screen
	FilmstripDuration = 6000 * time.Millisecond

	// NameDelay is the pause between hiding the filmstrip and revealing the name
	NameDelay = 1500 * time.Millisecond

	// PostRevealDelay is the pause after both name tokens finished revealing,
	// before the filmstrip returns in looping mode
	// 2000ms from reveal start minus the 800ms reveal budget
	PostRevealDelay = 1200 * time.Millisecond
)
