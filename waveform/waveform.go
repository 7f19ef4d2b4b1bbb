// Package waveform generates frames of the background trace
package waveform

import (
	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/vmath"
)

// Frame is one redraw: horizontal offsets of evenly spaced points down the surface
// Even points swing right (positive), odd points left
type Frame struct {
	Index   int
	Offsets []int
}

// Generator draws random frames
type Generator struct {
	rng    vmath.RangeSource
	cfg    config.Waveform
	frames int
}

// NewGenerator creates a frame generator
func NewGenerator(rng vmath.RangeSource, cfg config.Waveform) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Next returns a fresh frame
func (g *Generator) Next() Frame {
	f := Frame{Index: g.frames, Offsets: make([]int, g.cfg.Points)}
	for i := range f.Offsets {
		off := g.rng.IntRange(g.cfg.OffsetMin, g.cfg.OffsetMax)
		if i%2 != 0 {
			off = -off
		}
		f.Offsets[i] = off
	}
	g.frames++
	return f
}

// Frames returns how many frames were generated
func (g *Generator) Frames() int {
	return g.frames
}
