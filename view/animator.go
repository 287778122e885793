// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/fraunhofer/diffraction"
	"github.com/katalvlaran/fraunhofer/phasor"
)

// Animator draws one frame per phasor chain. Its Observe method is the
// observer handed to a diffraction model.
type Animator struct {
	cfg    Config
	screen Screen
	keys   <-chan Key
	sleep  func(time.Duration)

	frames  int
	skipped bool
}

// NewAnimator returns an animator showing frames on screen. If keys is
// non-nil, a quit key (Esc or q) received between frames stops drawing for
// the rest of the run; the model still computes every sample.
func NewAnimator(cfg Config, screen Screen, keys <-chan Key) *Animator {
	return &Animator{cfg: cfg, screen: screen, keys: keys, sleep: time.Sleep}
}

// Frames returns how many frames were drawn.
func (a *Animator) Frames() int { return a.frames }

// Observe renders f and waits FrameDelay.
func (a *Animator) Observe(f diffraction.Frame) {
	if !a.cfg.Animate || a.skipped || a.interrupted() {
		return
	}

	w, h := a.screen.Size()
	c := NewCanvas(w, h)
	drawChain(c, a.cfg, f.Tips)
	if f.Variable == diffraction.Angle {
		c.Text(2, h-2, fmt.Sprintf("θ = %s°", trimFloat(f.X*180/math.Pi, 4)))
	}

	a.screen.Show(c)
	a.frames++
	a.sleep(a.cfg.FrameDelay)
}

// interrupted drains pending keys and reports whether one was a quit key.
func (a *Animator) interrupted() bool {
	if a.keys == nil {
		return false
	}
	for {
		select {
		case k, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return false
			}
			if isQuit(k) {
				a.skipped = true
				return true
			}
		default:
			return false
		}
	}
}

// drawChain draws the arrows of one chain plus the two circles: one fixed
// at the origin, one riding on the final tip.
func drawChain(c *Canvas, cfg Config, tips []phasor.Point) {
	c.Circle(cfg.Origin, cfg.Radius, 'o')
	from := cfg.Origin
	for _, tip := range tips {
		c.Arrow(from, tip)
		from = tip
	}
	c.Circle(from, cfg.Radius, 'o')
}

// trimFloat rounds v to the given decimals and drops trailing zeros.
func trimFloat(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	return fmt.Sprint(math.Round(v*p) / p)
}
