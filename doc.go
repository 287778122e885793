// Package fraunhofer builds Fraunhofer diffraction patterns the way a
// physics lecture does: by adding phasors tip to tail and measuring how far
// the chain reaches.
//
// 🚀 What is fraunhofer?
//
//	A small numeric library plus a terminal viewer:
//		• Sampling: linspace and fixed-step sequences over the phase or sin θ
//		• Phasor engine: resultant lengths of N-arrow chains, with a per-sample
//		  hook that sees every arrow tip
//		• Models: N ideal slits, one finite slit, N finite slits
//		• Phase expressions: "pi/3", "2*π - 0.1" for the interactive slider
//		• View: ASCII phasor animation, amplitude/intensity plots, slider
//
// ✨ Why phasors?
//
//   - Every point of the pattern comes from the same chain construction, so
//     the animation and the curve can never disagree
//   - Closed-form references (sinc² envelopes) are plotted alongside, so the
//     discretization error is visible
//   - Pure numeric core – no cgo, no I/O below view/
//
// Packages:
//
//	sampling/    — Linspace, Sequence, Degrees
//	phasor/      — Resultants, Chain, observer hooks
//	diffraction/ — Slits, SingleSlit, MultiSlit → Result
//	phaseexpr/   — arithmetic phase expressions
//	view/        — canvas, tcell terminal, animator, plots, slider
//	cmd/phasorview — command-line launcher
//
// Quick ASCII example, three arrows at phase step 2π/3 closing into a
// triangle (a minimum of the 3-slit pattern):
//
//	      /\
//	     /  \
//	    ●────►
//
//	go run github.com/katalvlaran/fraunhofer/cmd/phasorview -model slits -n 3
package fraunhofer
