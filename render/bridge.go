package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the standard background color
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Style returns the tcell style of a cell
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(RGBToTcell(c.Fg)).
		Background(RGBToTcell(c.Bg)).
		Attributes(c.Attrs)
}
