package render

import (
	"github.com/lixenwraith/bomaye/status"
)

// StatusLayer prints the metrics line on the bottom row
type StatusLayer struct {
	reg     *status.Registry
	visible bool
}

// NewStatusLayer creates a status line over reg
func NewStatusLayer(reg *status.Registry, visible bool) *StatusLayer {
	return &StatusLayer{reg: reg, visible: visible}
}

// SetVisible toggles the line
func (l *StatusLayer) SetVisible(v bool) {
	l.visible = v
}

// IsVisible implements VisibilityToggle
func (l *StatusLayer) IsVisible() bool {
	return l.visible
}

// Render implements Layer
func (l *StatusLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Height == 0 {
		return
	}
	line := []rune(l.reg.Line())
	if len(line) > ctx.Width {
		line = line[:ctx.Width]
	}
	buf.SetString(0, ctx.Height-1, string(line), RgbStatus)
}
