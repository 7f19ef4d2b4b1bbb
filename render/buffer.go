package render

import "github.com/gdamore/tcell/v2"

// RenderBuffer is a compositor backed by a Cell array with touch tracking
// Untouched cells get the default background on flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions in cells
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds returns an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell with specified blend mode; out of bounds writes are clipped
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}

	if flags&flagBg != 0 {
		base := dst.Bg
		if !b.touched[idx] {
			base = RgbBackground
		}
		dst.Bg = apply(op, base, bg, alpha)
		b.touched[idx] = true
	}

	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: tcell.AttrNone}
	b.touched[idx] = true
}

// SetString writes text left to right from (x, y) with the existing background
func (b *RenderBuffer) SetString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, tcell.AttrNone)
		x++
	}
}

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to screen; the caller shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
		}
	}
}
