package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bomaye/burst"
)

type liveMarker struct {
	burst.Marker
	born time.Duration
}

// FlashLayer holds attached flash markers and expires each once its lifetime elapsed
// Expiry is the layer's own concern; the burst generator never hears about it
type FlashLayer struct {
	clock   Clock
	markers []liveMarker
	expired int
}

// NewFlashLayer creates an empty flash layer
func NewFlashLayer(clock Clock) *FlashLayer {
	return &FlashLayer{clock: clock}
}

// Attach implements burst.Surface
func (l *FlashLayer) Attach(b burst.Batch) {
	now := l.clock.Now()
	for _, m := range b.Markers {
		l.markers = append(l.markers, liveMarker{Marker: m, born: now})
	}
}

// Expire drops markers whose lifetime elapsed by now, returning how many were dropped
func (l *FlashLayer) Expire(now time.Duration) int {
	kept := l.markers[:0]
	for _, m := range l.markers {
		if now-m.born < m.Lifetime {
			kept = append(kept, m)
		}
	}
	n := len(l.markers) - len(kept)
	clear(l.markers[len(kept):])
	l.markers = kept
	l.expired += n
	return n
}

// Live returns the number of markers on screen
func (l *FlashLayer) Live() int {
	return len(l.markers)
}

// Expired returns the number of markers removed so far
func (l *FlashLayer) Expired() int {
	return l.expired
}

// IsVisible implements VisibilityToggle
func (l *FlashLayer) IsVisible() bool {
	return len(l.markers) > 0
}

// Render implements Layer
func (l *FlashLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	l.Expire(ctx.Now)

	for _, m := range l.markers {
		x, y := ctx.UnitsToCell(m.X, m.Y)
		alpha := 1 - progress(ctx.Now-m.born, m.Lifetime)

		buf.Set(x, y, '✦', RgbFlash, RgbFlashGlow, BlendAlpha, alpha, tcell.AttrBold)
		buf.Set(x-1, y, 0, RGBBlack, RgbFlashGlow, BlendAlphaBg, alpha*0.5, tcell.AttrNone)
		buf.Set(x+1, y, 0, RGBBlack, RgbFlashGlow, BlendAlphaBg, alpha*0.5, tcell.AttrNone)
	}
}
