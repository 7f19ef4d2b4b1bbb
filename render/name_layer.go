package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/reveal"
)

type revealedCell struct {
	index  int
	offset float64
	at     time.Duration
}

// NameLayer displays one name token centered on a row relative to screen middle
// Unrevealed cells are not drawn; a revealed cell slides from its offset to rest and
// brightens over the letter animation
type NameLayer struct {
	clock     Clock
	line      int
	spacing   int
	animation time.Duration
	cells     []rune
	revealed  []revealedCell
}

// NewNameLayer creates a name layer line rows below the screen middle (negative is above)
func NewNameLayer(clock Clock, cfg config.Config, line int) *NameLayer {
	return &NameLayer{
		clock:     clock,
		line:      line,
		spacing:   max(cfg.Render.LetterSpacing, 0),
		animation: cfg.Reveal.LetterAnimation.Std(),
	}
}

// SetToken implements sequence.NameSurface
func (l *NameLayer) SetToken(cells []rune) {
	l.cells = append(l.cells[:0], cells...)
	l.revealed = l.revealed[:0]
}

// RevealLetter implements sequence.NameSurface
func (l *NameLayer) RevealLetter(letter reveal.Letter) {
	if letter.Index < 0 || letter.Index >= len(l.cells) {
		return
	}
	l.revealed = append(l.revealed, revealedCell{index: letter.Index, offset: letter.Offset, at: l.clock.Now()})
}

// Text returns the revealed cells in token order, hidden cells as spaces
func (l *NameLayer) Text() string {
	out := make([]rune, len(l.cells))
	for i := range out {
		out[i] = ' '
	}
	for _, rc := range l.revealed {
		out[rc.index] = l.cells[rc.index]
	}
	return string(out)
}

// IsVisible implements VisibilityToggle
func (l *NameLayer) IsVisible() bool {
	return len(l.revealed) > 0
}

// Render implements Layer
func (l *NameLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	n := len(l.cells)
	stride := 1 + l.spacing
	total := n*stride - l.spacing
	startX := (ctx.Width - total) / 2
	_, cy := ctx.Center()
	y := cy + l.line

	for _, rc := range l.revealed {
		p := progress(ctx.Now-rc.at, l.animation)
		slide := rc.offset * (1 - p) / float64(ctx.UnitWidth)
		x := startX + rc.index*stride + int(math.Round(slide))

		attrs := tcell.AttrNone
		if p >= 1 {
			attrs = tcell.AttrBold
		}
		buf.SetFgOnly(x, y, l.cells[rc.index], RgbBackground.Blend(RgbName, p), attrs)
	}
}
