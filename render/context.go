package render

import (
	"time"

	"github.com/lixenwraith/bomaye/config"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	// Presentation time of the frame
	Now time.Duration

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Layout units per terminal cell
	UnitWidth  int
	UnitHeight int
}

// NewRenderContext creates the context of one frame
func NewRenderContext(now time.Duration, width, height int, cfg config.Render) RenderContext {
	return RenderContext{
		Now:        now,
		Width:      width,
		Height:     height,
		UnitWidth:  max(cfg.CellWidthUnits, 1),
		UnitHeight: max(cfg.CellHeightUnits, 1),
	}
}

// UnitsToCell converts layout units to a cell position; results may lie off screen
func (rc RenderContext) UnitsToCell(ux, uy int) (int, int) {
	return floorDiv(ux, rc.UnitWidth), floorDiv(uy, rc.UnitHeight)
}

// Center returns the middle cell of the screen
func (rc RenderContext) Center() (int, int) {
	return rc.Width / 2, rc.Height / 2
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// progress returns elapsed/span clamped to [0, 1]; a non-positive span is complete
func progress(elapsed, span time.Duration) float64 {
	if span <= 0 || elapsed >= span {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(span)
}
