package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace Fg, Keep Bg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Fade background only, preserve fg
	BlendMaxBg   = BlendMode(opMax | flagBg)     // Max blend background only, preserve fg
)

func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return dst.Blend(src, alpha)
	case opAdd:
		return dst.Add(src)
	case opMax:
		return dst.Max(src)
	default:
		return src
	}
}
