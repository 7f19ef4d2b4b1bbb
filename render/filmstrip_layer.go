package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/engine"
)

// FilmstripLayer draws a scrolling strip across the screen middle that fades in on show
type FilmstripLayer struct {
	clock   Clock
	height  int
	frame   int
	fadeIn  time.Duration
	scroll  time.Duration
	visible bool
	repeat  bool
	shownAt time.Duration
}

// NewFilmstripLayer creates a hidden filmstrip
func NewFilmstripLayer(clock Clock, cfg config.Render) *FilmstripLayer {
	return &FilmstripLayer{
		clock:  clock,
		height: max(cfg.FilmstripHeight, 2),
		frame:  max(cfg.FilmstripFrame, 3),
		fadeIn: cfg.FilmstripFadeIn.Std(),
		scroll: max(cfg.FilmstripScroll.Std(), engine.MinInterval),
	}
}

// ShowFilmstrip implements sequence.FilmstripSurface; each show restarts the fade
func (l *FilmstripLayer) ShowFilmstrip(repeat bool) {
	l.visible = true
	l.repeat = repeat
	l.shownAt = l.clock.Now()
}

// HideFilmstrip implements sequence.FilmstripSurface
func (l *FilmstripLayer) HideFilmstrip() {
	l.visible = false
}

// IsVisible implements VisibilityToggle
func (l *FilmstripLayer) IsVisible() bool {
	return l.visible
}

// Repeat reports whether the strip is in its looping mode
func (l *FilmstripLayer) Repeat() bool {
	return l.repeat
}

// Render implements Layer
func (l *FilmstripLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	age := ctx.Now - l.shownAt
	alpha := progress(age, l.fadeIn)
	shift := int(max(age, 0) / l.scroll)

	h := min(l.height, ctx.Height)
	top := (ctx.Height - h) / 2
	bottom := top + h - 1

	for y := top; y <= bottom; y++ {
		edge := y == top || y == bottom
		for x := 0; x < ctx.Width; x++ {
			u := (x + shift) % l.frame

			r, fg := ' ', RgbFilmFrame
			switch {
			case edge && u%3 == 1:
				r, fg = '■', RgbFilmHole
			case !edge && u == 0:
				r = '│'
			}
			buf.Set(x, y, r, fg, RgbFilmBase, BlendAlpha, alpha, tcell.AttrNone)
		}
	}
}
