// SPDX-License-Identifier: MIT
// Package: fraunhofer/diffraction
//
// types.go - results, frames and options.

package diffraction

import "github.com/katalvlaran/fraunhofer/phasor"

// Variable names the independent variable of a Result.
type Variable int

const (
	// Phase is the phase difference between adjacent sources, in radians.
	Phase Variable = iota

	// Angle is the diffraction angle θ, in radians.
	Angle
)

// String returns "phase" or "θ".
func (v Variable) String() string {
	if v == Angle {
		return "θ"
	}

	return "phase"
}

// Curve is a sampled function y(x).
type Curve struct {
	X []float64
	Y []float64
}

// Result is the output of one model run. All slices share the length of X,
// except Reference, which is sampled ten times more densely.
type Result struct {
	// Variable tells whether X holds phases or angles.
	Variable Variable

	// Sources is the number of arrows summed per sample.
	Sources int

	// ArrowLen is the unscaled arrow length L0 = 0.99/(2·Sources).
	ArrowLen float64

	// X holds the independent variable in radians, ascending.
	X []float64

	// Amplitude is the normalized electric-field amplitude at each X.
	Amplitude []float64

	// Intensity is Amplitude squared.
	Intensity []float64

	// Reference is the closed-form intensity (or envelope) curve.
	// Nil for Slits, whose phasor sum is already exact.
	Reference *Curve

	// Peak is the largest possible amplitude (N, a or N·a); presentation
	// uses it and Peak² as axis limits.
	Peak float64

	// Title describes the configuration, e.g. "4 slits; d = 2; a = 1".
	Title string
}

// Frame is one phasor chain handed to an observer.
type Frame struct {
	// Index is the sample index into Result.X.
	Index int

	// Variable and X identify the sample (phase or θ, radians).
	Variable Variable
	X        float64

	// Tips are the arrow tips, starting one arrow from the origin.
	Tips []phasor.Point
}

// Option configures a model run.
type Option func(*options)

type options struct {
	observe func(Frame)
	origin  phasor.Point
}

// WithObserver registers fn to receive every chain as it is summed.
// A nil fn is ignored.
func WithObserver(fn func(Frame)) Option {
	return func(o *options) {
		if fn != nil {
			o.observe = fn
		}
	}
}

// WithOrigin sets the point where observed chains start (default (0,0)).
func WithOrigin(p phasor.Point) Option {
	return func(o *options) {
		o.origin = p
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
