// SPDX-License-Identifier: MIT

package view

import (
	"time"

	"github.com/katalvlaran/fraunhofer/phasor"
)

// Config is the presentation configuration, passed explicitly to every
// component that needs it.
type Config struct {
	// FrameDelay is the pause after each animation frame.
	FrameDelay time.Duration

	// Animate turns the per-sample chain animation on or off.
	Animate bool

	// Origin is where chains start, in figure units.
	Origin phasor.Point

	// Radius of the circles marking the origin and the resultant tip.
	Radius float64
}

// DefaultConfig returns a 10ms frame delay, animation on, chains starting
// at the figure centre and circles of radius 0.025.
func DefaultConfig() Config {
	return Config{
		FrameDelay: 10 * time.Millisecond,
		Animate:    true,
		Origin:     phasor.Point{X: 0.5, Y: 0.5},
		Radius:     0.025,
	}
}
