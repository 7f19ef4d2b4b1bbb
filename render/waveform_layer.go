package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bomaye/vmath"
	"github.com/lixenwraith/bomaye/waveform"
)

// waveformOriginUnits is the vertical start of the trace, above the top edge
const waveformOriginUnits = -30

// WaveformLayer draws the latest waveform frame as a polyline down the screen center
type WaveformLayer struct {
	visible bool
	removed bool
	frame   waveform.Frame
}

// NewWaveformLayer creates a hidden waveform layer
func NewWaveformLayer() *WaveformLayer {
	return &WaveformLayer{}
}

// ShowWaveform makes the layer visible; a removed layer stays removed
func (l *WaveformLayer) ShowWaveform() {
	if !l.removed {
		l.visible = true
	}
}

// DrawWaveform replaces the displayed frame
func (l *WaveformLayer) DrawWaveform(f waveform.Frame) {
	if !l.removed {
		l.frame = f
	}
}

// RemoveWaveform takes the layer off the presentation for good
func (l *WaveformLayer) RemoveWaveform() {
	l.visible = false
	l.removed = true
	l.frame = waveform.Frame{}
}

// IsVisible implements VisibilityToggle
func (l *WaveformLayer) IsVisible() bool {
	return l.visible
}

// Render implements Layer
func (l *WaveformLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	n := len(l.frame.Offsets)
	if n == 0 {
		return
	}

	center := float64(ctx.Width) / 2
	stepY := float64(ctx.Height) / float64(n)
	px := center
	py := float64(waveformOriginUnits) / float64(ctx.UnitHeight)

	plot := func(x, y int) bool {
		buf.SetFgOnly(x, y, '*', RgbWaveform, tcell.AttrBold)
		return true
	}

	for _, off := range l.frame.Offsets {
		x := center + float64(off)/float64(ctx.UnitWidth)
		y := py + stepY
		vmath.Traverse(vmath.FromFloat(px), vmath.FromFloat(py), vmath.FromFloat(x), vmath.FromFloat(y), plot)
		px, py = x, y
	}
}
