// Package vmath holds the Q32.32 fixed-point helpers and the random source the
// presentation draws from
package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 fixed point
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
)

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// magnitudes splits a signed pair into unsigned magnitudes and the sign of the product
func magnitudes(a, b int64) (ua, ub uint64, negative bool) {
	negative = (a < 0) != (b < 0)
	ua, ub = uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}
	return ua, ub, negative
}

func saturate(negative bool) int64 {
	if negative {
		return math.MinInt64
	}
	return math.MaxInt64
}

// Mul multiplies two fixed-point values through a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	ua, ub, negative := magnitudes(a, b)
	hi, lo := bits.Mul64(ua, ub)
	r := int64((hi << Shift) | (lo >> Shift))
	if negative {
		return -r
	}
	return r
}

// Div divides two fixed-point values, saturating on overflow; division by zero yields 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	ua, ub, negative := magnitudes(a, b)

	hi, lo := ua>>Shift, ua<<Shift
	if hi >= ub {
		return saturate(negative)
	}
	q, _ := bits.Div64(hi, lo, ub)
	if q > math.MaxInt64 {
		return saturate(negative)
	}
	if negative {
		return -int64(q)
	}
	return int64(q)
}

// Lerp interpolates from a to b, t in [0, Scale]
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}
