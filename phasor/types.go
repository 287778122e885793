// SPDX-License-Identifier: MIT
// Package: fraunhofer/phasor
//
// types.go - points, length profiles, options and sentinel errors.

package phasor

import (
	"errors"
	"math"
)

var (
	// ErrTooFewSources is returned when fewer than one arrow is requested.
	ErrTooFewSources = errors.New("phasor: source count must be at least 1")

	// ErrLengthMismatch is returned when a per-sample length profile does
	// not have one entry per phase sample.
	ErrLengthMismatch = errors.New("phasor: length profile does not match phase samples")

	// ErrNegativeLength is returned when any arrow length is negative or NaN.
	ErrNegativeLength = errors.New("phasor: arrow length must be non-negative")
)

// Point is a position in the plane of the phasor diagram.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Lengths is the arrow-length profile over the samples. Every arrow of a
// sample shares one length; the length may vary from sample to sample.
//
// Build one with Uniform or PerSample.
type Lengths struct {
	uniform   float64
	perSample []float64
}

// Uniform uses the same arrow length L for every sample.
func Uniform(L float64) Lengths {
	return Lengths{uniform: L}
}

// PerSample uses ls[k] as the arrow length of sample k.
// The slice is read, never modified.
func PerSample(ls []float64) Lengths {
	return Lengths{perSample: ls}
}

// At returns the arrow length used for sample k.
func (l Lengths) At(k int) float64 {
	if l.perSample != nil {
		return l.perSample[k]
	}

	return l.uniform
}

// validate checks the profile against the number of phase samples.
func (l Lengths) validate(samples int) error {
	if l.perSample == nil {
		if !(l.uniform >= 0) {
			return ErrNegativeLength
		}
		return nil
	}
	if len(l.perSample) != samples {
		return ErrLengthMismatch
	}
	for _, v := range l.perSample {
		if !(v >= 0) {
			return ErrNegativeLength
		}
	}

	return nil
}

// Observer receives the n tips of chain k, in arrow order. The slice is a
// fresh copy owned by the observer.
type Observer func(k int, tips []Point)

// Option configures Resultants via functional arguments.
type Option func(*Options)

// Options holds the knobs of one Resultants call.
type Options struct {
	// Origin is where every chain handed to the observer starts.
	// The resultants never depend on it.
	Origin Point

	// Observe, if non-nil, is invoked synchronously once per sample.
	Observe Observer
}

// DefaultOptions returns Options with the origin at (0,0) and no observer.
func DefaultOptions() Options {
	return Options{}
}

// WithOrigin moves the start of every chain to p.
func WithOrigin(p Point) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithObserver attaches a per-sample sink for the chain tips.
// A nil fn is ignored.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observe = fn
		}
	}
}
