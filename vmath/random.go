package vmath

import (
	"math/bits"
	"time"
)

// RangeSource draws integers from an inclusive range
type RangeSource interface {
	IntRange(min, max int) int
}

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; seed 0 seeds from the clock
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if seed == 0 {
			seed = 1
		}
	}
	return &FastRand{state: seed}
}

// Next advances the state and returns 64 random bits
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Multiply-shift reduction, bias is below 2^-32 for the ranges used here
	hi, _ := bits.Mul64(r.Next(), uint64(n))
	return int(hi)
}

// IntRange returns a value uniformly distributed over [min, max], both inclusive
// Swapped bounds are swapped back before drawing
func (r *FastRand) IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.Intn(max-min+1)
}
