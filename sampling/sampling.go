// SPDX-License-Identifier: MIT
// Package: fraunhofer/sampling
//
// sampling.go - uniform sample sequences over an independent variable.
//
// Contract:
//   - Outputs are freshly allocated; callers own them.
//   - Values are computed as a + i*step (never by accumulation) so every
//     point carries at most one rounding error.
//   - No panics; invalid preconditions yield nil.

package sampling

import "math"

// overCount inflates the computed step count of Sequence so that a final
// point mathematically equal to b, but numerically a hair short of it, is
// still included. Any factor slightly above 1 works; it must only ever
// round toward one extra point.
const overCount = 1.00000000000001

// radToDeg converts radians to degrees.
const radToDeg = 180.0 / math.Pi

// Linspace returns n evenly spaced values from a to b inclusive.
// step = (b-a)/(n-1); value i = step*i + a.
// Returns nil for n < 2.
func Linspace(a, b float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	step := (b - a) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = step*float64(i) + a
	}

	return out
}

// Sequence returns a, a+step, a+2*step, ... up to b (inclusive within
// roundoff). Returns nil if step <= 0, b < a, or any bound is not finite.
func Sequence(a, step, b float64) []float64 {
	if !(step > 0) || !(b >= a) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil
	}

	count := int(overCount*(b-a)/step) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = a + float64(i)*step
	}

	return out
}

// Degrees returns a copy of xs converted from radians to degrees.
func Degrees(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * radToDeg
	}

	return out
}
