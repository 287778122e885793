// SPDX-License-Identifier: MIT
// Package: fraunhofer/phasor
//
// engine.go - the phasor summation loop.
//
// Algorithm (per sample k):
//  1. tip := (0,0)
//  2. for i = 0..n-1: tip += lengths[k] * (cos(i*phases[k]), sin(i*phases[k]))
//  3. resultant[k] = |tip|
//
// The sum always runs in local coordinates; Options.Origin only shifts the
// tips handed to an observer, so results are bit-identical with or without
// one. Samples never share state.

package phasor

import (
	"fmt"
	"math"
)

// Resultants lays n arrows per sample and returns the resultant magnitude
// of each chain. len(result) == len(phases).
//
// Errors:
//   - ErrTooFewSources  if n < 1.
//   - ErrLengthMismatch if a PerSample profile has the wrong length.
//   - ErrNegativeLength if any length is negative or NaN.
func Resultants(n int, phases []float64, lengths Lengths, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Resultants: n=%d: %w", n, ErrTooFewSources)
	}
	if err := lengths.validate(len(phases)); err != nil {
		return nil, fmt.Errorf("Resultants: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]float64, len(phases))
	for k, phase := range phases {
		var tips []Point
		if o.Observe != nil {
			tips = make([]Point, n)
		}
		out[k] = walk(n, phase, lengths.At(k), tips).Norm()

		if tips != nil {
			shift(tips, o.Origin)
			o.Observe(k, tips)
		}
	}

	return out, nil
}

// Chain returns the n tips of a single chain with the given phase step and
// arrow length, starting at origin. It returns nil for n < 1.
func Chain(n int, phase, length float64, origin Point) []Point {
	if n < 1 {
		return nil
	}

	tips := make([]Point, n)
	walk(n, phase, length, tips)
	shift(tips, origin)

	return tips
}

// walk builds one chain from (0,0) and returns its final tip. If tips is
// non-nil it receives every intermediate tip (len(tips) must be n).
func walk(n int, phase, length float64, tips []Point) Point {
	var tip Point
	for i := 0; i < n; i++ {
		angle := float64(i) * phase
		tip.X += length * math.Cos(angle)
		tip.Y += length * math.Sin(angle)
		if tips != nil {
			tips[i] = tip
		}
	}

	return tip
}

// shift translates every tip by origin in place.
func shift(tips []Point, origin Point) {
	if origin == (Point{}) {
		return
	}
	for i := range tips {
		tips[i] = tips[i].Add(origin)
	}
}
