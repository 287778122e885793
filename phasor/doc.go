// SPDX-License-Identifier: MIT

// Package phasor sums chains of rotating arrows ("phasors") and reports the
// length of the resultant at every sample point.
//
// What
//
//   - A sample is one value of the independent variable (a phase or a
//     diffraction angle). For sample k the engine lays n arrows head to
//     tail, starting at a fixed origin: arrow i has length lengths[k] and
//     points along i*phases[k].
//   - The resultant magnitude is the distance from the last tip back to the
//     origin. Resultants returns one magnitude per sample.
//
// Why
//
//	Each arrow stands for the field of one coherent point source, so the
//	resultant is the far-field amplitude on a distant screen. Fully
//	constructive samples (phase 0) give n*length; two equal arrows half a
//	cycle apart cancel.
//
// Observers
//
//	WithObserver registers a sink that receives the tips of every chain as
//	it is built. The sink is for drawing only: the numeric output is the
//	same whether or not an observer is attached, and samples are independent
//	of each other.
//
// Complexity
//
//   - Time:   O(n * len(phases))
//   - Memory: O(len(phases)) for the output, plus O(n) per sample only
//     when an observer is attached.
package phasor
