// SPDX-License-Identifier: MIT
// Package: fraunhofer/diffraction
//
// models.go - public model entry points. Each validates its parameters,
// derives the sampling resolution and arrow profile, and runs the shared
// pipeline.

package diffraction

import (
	"fmt"
	"math"
	"strconv"
)

const (
	minSources       = 2   // N-slit models need at least two slits
	minSingleSources = 5   // floor on point sources across one slit
	sourcesPerWidth  = 3.0 // point sources per wavelength of slit width
	phaseCycles      = 1   // M: full phase cycles swept by Slits
	maxSources       = 1 << 20
	maxSamples       = 1 << 24
	maxArrows        = 1 << 32 // sources × samples summed by one run
)

// Slits models N idealized zero-width slits. The phase between adjacent
// slits sweeps one cycle [0, 2π] with 10 samples per slit, so X has 10N+1
// values. Amplitude = resultant/L0 ranges over [0, N].
//
// To convert a phase φ to a diffraction angle use sin θ = λφ/(2πd).
//
// Errors: ErrInvalidParameter unless n is an integer in [2, 2^20], or if
// the N·(10N+1) arrow additions exceed 2^32.
func Slits(n float64, opts ...Option) (*Result, error) {
	if !isCount(n, minSources) || n > maxSources {
		return nil, invalidf("Slits", "N=%v must be an integer ≥ %d", n, minSources)
	}

	samples := math.Round(phaseCycles*n*perMaximum + 1)
	if tooMuchWork(n, samples) {
		return nil, invalidf("Slits", "N=%v needs more than %d arrow additions", n, uint64(maxArrows))
	}

	N := int(n)
	L0 := arrowLen(N)

	p := pipeline{
		variable: Phase,
		sources:  N,
		arrowLen: L0,
		domain:   phaseDomain(int(samples)),
		phase:    func(s sample) float64 { return s.X },
		scale:    1 / L0,
		peak:     float64(N),
		title:    strconv.Itoa(N) + " slits",
	}

	return p.run(opts)
}

// SingleSlit models one slit of width a wavelengths as N = max(5, ⌈3a⌉)
// evenly spaced point sources. floor(a) minima fall between θ = 0 and π/2.
//
// Arrow lengths carry the obliquity factor (1+cos θ)/2; the phase step is
// 2π(a/N)·sin θ. Amplitude = resultant·a/(N·L0), so it is a at θ = 0.
// Reference is a²·sinc²(πa·sin θ)·((1+cos θ)/2)², the N → ∞ limit.
//
// Errors: ErrInvalidParameter if a is not a positive finite number, or if
// a is so wide that the run would exceed 2^32 arrow additions.
func SingleSlit(a float64, opts ...Option) (*Result, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return nil, invalidf("SingleSlit", "a=%v must be positive", a)
	}

	if sourcesPerWidth*a > maxSources {
		return nil, invalidf("SingleSlit", "a=%v needs more than %d sources", a, maxSources)
	}

	N := int(math.Ceil(sourcesPerWidth * a))
	if N < minSingleSources {
		N = minSingleSources
	}
	res := resolution(a)
	if tooMuchWork(float64(N), res*a+1) {
		return nil, invalidf("SingleSlit", "a=%v needs more than %d arrow additions", a, uint64(maxArrows))
	}
	L0 := arrowLen(N)
	spacing := a / float64(N)

	envelope := func(s sample) float64 {
		f := sinc(math.Pi*a*s.Sin) * obliquity(s.X)
		return a * a * f * f
	}

	p := pipeline{
		variable: Angle,
		sources:  N,
		arrowLen: L0,
		domain:   angleDomain(1 / (res * a)),
		phase:    func(s sample) float64 { return tau * spacing * s.Sin },
		length:   func(s sample) float64 { return L0 * obliquity(s.X) },
		scale:    a / (float64(N) * L0),
		reference: &reference{
			domain: angleDomain(1 / (refDensity * res * a)),
			at0:    a * a,
			curve:  envelope,
		},
		peak:  a,
		title: "a = " + round4(a),
	}

	return p.run(opts)
}

// MultiSlit models N slits of width a spaced d apart (both in
// wavelengths). The phase step is 2π·d·sin θ; each slit's arrow is scaled
// by the magnitude of its single-slit envelope |sinc(πa·sin θ)|·(1+cos θ)/2.
// For a > 1 the envelope changes sign past sin θ = 1/a; a sign shared by
// every arrow of a sample only reverses the chain. Amplitude =
// resultant·a/L0, so it is N·a at θ = 0. Reference is the single-slit
// envelope (aN)²·sinc²(πa·sin θ)·((1+cos θ)/2)².
//
// Errors: ErrInvalidParameter unless N is an integer in [2, 2^20], d > 0
// and 0 < a < d, or if N·d is too large to sample (more than 2^24 angles
// or 2^32 arrow additions).
func MultiSlit(n, d, a float64, opts ...Option) (*Result, error) {
	switch {
	case !isCount(n, minSources) || n > maxSources:
		return nil, invalidf("MultiSlit", "N=%v must be an integer ≥ %d", n, minSources)
	case !(d > 0) || math.IsInf(d, 0):
		return nil, invalidf("MultiSlit", "d=%v must be positive", d)
	case !(a > 0) || !(a < d):
		return nil, invalidf("MultiSlit", "a=%v must satisfy 0 < a < d=%v", a, d)
	}

	res := resolution(n * d)
	if res*n*d > maxSamples {
		return nil, invalidf("MultiSlit", "N·d=%v needs more than %d samples", n*d, maxSamples)
	}
	if tooMuchWork(n, res*n*d+1) {
		return nil, invalidf("MultiSlit", "N=%v, d=%v needs more than %d arrow additions", n, d, uint64(maxArrows))
	}

	N := int(n)
	L0 := arrowLen(N)

	envelope := func(s sample) float64 {
		return sinc(math.Pi*a*s.Sin) * obliquity(s.X)
	}
	peak := a * n

	p := pipeline{
		variable: Angle,
		sources:  N,
		arrowLen: L0,
		domain:   angleDomain(1 / (res * n * d)),
		phase:    func(s sample) float64 { return tau * d * s.Sin },
		length: func(s sample) float64 {
			if s.X == 0 {
				return L0
			}
			return L0 * math.Abs(envelope(s))
		},
		scale: a / L0,
		reference: &reference{
			domain: angleDomain(1 / (refDensity * res * n * d)),
			at0:    peak * peak,
			curve: func(s sample) float64 {
				f := envelope(s)
				return peak * peak * f * f
			},
		},
		peak:  peak,
		title: fmt.Sprintf("%d slits; d = %s; a = %s", N, round4(d), round4(a)),
	}

	return p.run(opts)
}

// tooMuchWork reports whether summing sources arrows for each of samples
// samples exceeds maxArrows.
func tooMuchWork(sources, samples float64) bool {
	return sources*samples > maxArrows
}

// resolution returns the samples per intensity maximum for a pattern whose
// angular scale is width (a, or N·d): 10, raised so that at least 90
// samples span [0, π/2].
func resolution(width float64) float64 {
	if perMaximum*width < minAngleSteps {
		return math.Round(minAngleSteps / width)
	}

	return perMaximum
}

// round4 formats v rounded to four decimals, without trailing zeros.
func round4(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
