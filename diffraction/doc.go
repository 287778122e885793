// SPDX-License-Identifier: MIT

// Package diffraction computes far-field (Fraunhofer) amplitude and
// intensity curves by summing phasors from coherent point sources.
//
// 🚀 Models
//
//	Slits(N)            — N idealized zero-width slits, swept over one
//	                      full cycle of the inter-slit phase.
//	SingleSlit(a)       — one slit of width a (in wavelengths), sampled by
//	                      max(5, ⌈3a⌉) point sources across θ ∈ [0, π/2].
//	MultiSlit(N, d, a)  — N slits of width a spaced d apart: inter-slit
//	                      interference under the single-slit envelope.
//
// Every model follows the same pipeline:
//
//	validate → sample → build phases & lengths → phasor.Resultants
//	         → rescale to physical amplitude → intensity = amplitude²
//	         → closed-form reference curve (angle models only)
//
// ✨ Units
//
//   - Slits amplitude is in units of one slit's field, so it peaks at N.
//   - SingleSlit amplitude peaks at a; MultiSlit amplitude peaks at N·a.
//   - Angle models include the Kirchhoff obliquity factor (1+cosθ)/2, which
//     shortens every arrow as θ grows.
//
// ⚙️ Usage
//
//	res, err := diffraction.MultiSlit(4, 2, 1)
//	if errors.Is(err, diffraction.ErrInvalidParameter) {
//	    // report and stop; nothing was computed
//	}
//	fmt.Println(res.Amplitude[0]) // 4
//
// Animation
//
//	WithObserver receives every phasor chain as it is summed, together with
//	its phase or angle, so a presentation layer can draw it. Results are
//	identical with or without an observer.
//
// All functions are pure: repeated calls with the same inputs return
// identical sequences, and nothing is shared between calls.
package diffraction
