package vmath

import "math"

// axis tracks one coordinate of a supercover walk
type axis struct {
	cell, target, step int
	tMax, tDelta       int64
}

func newAxis(from, to int64) axis {
	a := axis{cell: ToInt(from), target: ToInt(to), step: 1}
	d := to - from
	if d < 0 {
		a.step, d = -1, -d
	}
	if d == 0 {
		a.tMax = math.MaxInt64
		return a
	}
	a.tDelta = Div(Scale, d)
	frac := from & Mask
	if a.step > 0 {
		frac = Scale - frac
	}
	a.tMax = Mul(frac, a.tDelta)
	return a
}

func (a *axis) done() bool { return a.cell == a.target }

func (a *axis) advance() {
	a.cell += a.step
	a.tMax += a.tDelta
}

// Traverse visits every cell a segment between two fixed-point points passes through,
// endpoints included; visit returning false stops the walk
// Diagonal crossings step both axes at once, and an axis that reached its target
// never moves again, so the walk always terminates on the end cell
func Traverse(x1, y1, x2, y2 int64, visit func(x, y int) bool) {
	ax, ay := newAxis(x1, x2), newAxis(y1, y2)

	if !visit(ax.cell, ay.cell) {
		return
	}
	for !ax.done() || !ay.done() {
		switch {
		case ax.tMax < ay.tMax:
			if !ax.done() {
				ax.advance()
			} else {
				ay.advance()
			}
		case ax.tMax > ay.tMax:
			if !ay.done() {
				ay.advance()
			} else {
				ax.advance()
			}
		default:
			if !ax.done() {
				ax.advance()
			}
			if !ay.done() {
				ay.advance()
			}
		}
		if !visit(ax.cell, ay.cell) {
			return
		}
	}
}
