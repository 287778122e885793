// SPDX-License-Identifier: MIT
// Package: fraunhofer/diffraction
//
// pipeline.go - the sampling → summation → rescale → reference pipeline
// shared by every model.
//
// A model validates its inputs, then describes itself as a pipeline value:
//   - domain:    sampling strategy producing the samples;
//   - phase:     phase step between adjacent arrows for a sample;
//   - length:    arrow length for a sample (nil → constant arrowLen);
//   - scale:     resultant → physical amplitude factor;
//   - reference: optional closed-form curve on a denser domain.

package diffraction

import (
	"math"

	"github.com/katalvlaran/fraunhofer/phasor"
	"github.com/katalvlaran/fraunhofer/sampling"
)

// Shared constants of the phasor diagrams.
const (
	arrowSpan     = 0.99 // total chain length when fully constructive
	tau           = 2 * math.Pi
	halfPi        = math.Pi / 2
	refDensity    = 10.0 // reference curve samples per computed sample
	minAngleSteps = 90.0 // at least this many samples span the angle domain
	perMaximum    = 10.0 // default samples per intensity maximum
)

// arrowLen returns L0 = 0.99/(2N), so a fully constructive chain spans just
// under half the unit figure.
func arrowLen(n int) float64 {
	return arrowSpan / (2 * float64(n))
}

// sample is one point of the independent variable. X is the phase or θ;
// Sin is sin θ for angle domains and 0 for phase domains.
type sample struct {
	X   float64
	Sin float64
}

// domain produces the samples of a model.
type domain func() []sample

// phaseDomain samples the phase over [0, 2π] with n points.
func phaseDomain(n int) domain {
	return func() []sample {
		xs := sampling.Linspace(0, tau, n)
		out := make([]sample, len(xs))
		for i, x := range xs {
			out[i] = sample{X: x}
		}

		return out
	}
}

// angleDomain samples sin θ from 0 to sin(π/2) with the given step and
// maps each value back to θ = asin(sin θ).
func angleDomain(step float64) domain {
	return func() []sample {
		ss := sampling.Sequence(0, step, math.Sin(halfPi))
		out := make([]sample, len(ss))
		for i, s := range ss {
			// The accumulated last value may exceed 1 by an ulp.
			s = math.Min(s, 1)
			out[i] = sample{X: math.Asin(s), Sin: s}
		}

		return out
	}
}

// reference is a closed-form curve with a removable singularity at θ=0.
type reference struct {
	domain domain
	at0    float64                // limit value at θ = 0
	curve  func(s sample) float64 // evaluated for θ ≠ 0
}

// eval samples the reference, substituting at0 at θ = 0.
func (r *reference) eval() *Curve {
	ss := r.domain()
	c := &Curve{X: make([]float64, len(ss)), Y: make([]float64, len(ss))}
	for i, s := range ss {
		c.X[i] = s.X
		if s.X == 0 {
			c.Y[i] = r.at0
			continue
		}
		c.Y[i] = r.curve(s)
	}

	return c
}

// pipeline is one fully-parameterized model run.
type pipeline struct {
	variable  Variable
	sources   int
	arrowLen  float64
	domain    domain
	phase     func(s sample) float64
	length    func(s sample) float64
	scale     float64
	reference *reference
	peak      float64
	title     string
}

// run executes the pipeline. Inputs are already validated, so the engine
// cannot fail; an error here is a programming error in a model.
func (p pipeline) run(opts []Option) (*Result, error) {
	o := newOptions(opts)

	samples := p.domain()
	xs := make([]float64, len(samples))
	phases := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		phases[i] = p.phase(s)
	}

	lengths := phasor.Uniform(p.arrowLen)
	if p.length != nil {
		ls := make([]float64, len(samples))
		for i, s := range samples {
			ls[i] = p.length(s)
		}
		lengths = phasor.PerSample(ls)
	}

	var engineOpts []phasor.Option
	if o.observe != nil {
		engineOpts = append(engineOpts,
			phasor.WithOrigin(o.origin),
			phasor.WithObserver(func(k int, tips []phasor.Point) {
				o.observe(Frame{Index: k, Variable: p.variable, X: xs[k], Tips: tips})
			}))
	}

	resultants, err := phasor.Resultants(p.sources, phases, lengths, engineOpts...)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Variable:  p.variable,
		Sources:   p.sources,
		ArrowLen:  p.arrowLen,
		X:         xs,
		Amplitude: make([]float64, len(resultants)),
		Intensity: make([]float64, len(resultants)),
		Peak:      p.peak,
		Title:     p.title,
	}
	for i, r := range resultants {
		amp := r * p.scale
		res.Amplitude[i] = amp
		res.Intensity[i] = amp * amp
	}
	if p.reference != nil {
		res.Reference = p.reference.eval()
	}

	return res, nil
}

// obliquity is the Kirchhoff inclination factor (1+cos θ)/2.
func obliquity(theta float64) float64 {
	return (1 + math.Cos(theta)) / 2
}

// sinc returns sin(x)/x, with sinc(0) = 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(x) / x
}

// isCount reports whether v is a finite integer ≥ least.
func isCount(v float64, least int) bool {
	return v >= float64(least) && !math.IsInf(v, 0) && math.Round(v) == v
}
