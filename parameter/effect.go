package parameter

import "time"

// Waveform
const (
	// WaveformFrameInterval is the redraw cadence (24 frames per second)
	WaveformFrameInterval = time.Second / 24

	// WaveformPoints is the number of polyline vertices drawn down the surface
	WaveformPoints = 40

	// WaveformOffsetMin and WaveformOffsetMax bound the horizontal swing of a vertex
	WaveformOffsetMin = 5
	WaveformOffsetMax = 300
)

// Flash Burst
const (
	// FlashCadence is the interval between batches
	FlashCadence = 100 * time.Millisecond

	// FlashBatchCountMax is the stop ceiling; completion is observed once the
	// batch counter exceeds it, so FlashBatchCountMax+1 batches are emitted
	FlashBatchCountMax = 60

	// FlashMarkersMin and FlashMarkersMax bound the markers per batch
	FlashMarkersMin = 2
	FlashMarkersMax = 3

	// FlashBoundsWidth and FlashBoundsHeight are the marker placement bounds in
	// presentation units; they are not the live surface size
	FlashBoundsWidth  = 1600
	FlashBoundsHeight = 700

	// FlashMarkerLifetime is the marker animation length, after which the
	// renderer removes it
	FlashMarkerLifetime = 500 * time.Millisecond
)

// Filmstrip
const (
	// FilmstripFadeIn is the fade-in duration when the filmstrip is shown
	FilmstripFadeIn = 500 * time.Millisecond

	// FilmstripScrollInterval is the time per one-column scroll of the strip
	FilmstripScrollInterval = 40 * time.Millisecond
)
