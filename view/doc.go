// SPDX-License-Identifier: MIT

// Package view is the terminal presentation layer: it animates phasor
// chains while a model runs, plots amplitude and intensity curves, and hosts
// the interactive phase slider of the N-slit view.
//
// Everything is drawn into a Canvas, a plain rune grid addressed in figure
// units ([0,1]², origin bottom-left). A Screen shows finished canvases;
// Terminal is the tcell-backed Screen, and tests use their own.
//
// Pacing (Config.FrameDelay) lives only here. The numeric core never waits
// on the view, and skipping the animation does not change any result.
package view
