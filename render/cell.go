package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

var emptyCell = Cell{Rune: 0, Fg: RgbBackground, Bg: RGBBlack, Attrs: tcell.AttrNone}
