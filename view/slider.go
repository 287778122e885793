// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fraunhofer/phaseexpr"
	"github.com/katalvlaran/fraunhofer/phasor"
)

const (
	sliderSteps = 72 // left/right moves the phase by 2π/72 = 5°
	maxEntry    = 64 // runes accepted in the phase entry box
	tau         = 2 * math.Pi
)

// Slider is the interactive N-slit view: a phase slider over [0, 2π] and a
// text entry accepting expressions such as "2*pi/3".
type Slider struct {
	cfg      Config
	sources  int
	arrowLen float64

	phase  float64
	entry  []rune
	status string
}

// NewSlider returns a slider for n arrows of length arrowLen, at phase 0.
func NewSlider(cfg Config, n int, arrowLen float64) *Slider {
	return &Slider{cfg: cfg, sources: n, arrowLen: arrowLen}
}

// Phase returns the current phase in [0, 2π].
func (s *Slider) Phase() float64 { return s.phase }

// Status returns the last message shown under the entry box.
func (s *Slider) Status() string { return s.status }

// SetPhase moves the slider to v, clamped to [0, 2π].
func (s *Slider) SetPhase(v float64) {
	s.phase = math.Min(math.Max(v, 0), tau)
}

// Submit evaluates expr as a phase (mod 2π) and moves the slider there.
// Invalid input leaves the phase unchanged and is reported in Status.
func (s *Slider) Submit(expr string) error {
	v, err := phaseexpr.Phase(expr)
	if err != nil {
		s.status = err.Error()
		return err
	}
	s.SetPhase(v)
	s.status = ""

	return nil
}

// HandleKey applies one key press. It returns false when the view should
// close.
func (s *Slider) HandleKey(k Key) bool {
	switch k.Code {
	case KeyEscape:
		return false
	case KeyLeft:
		s.SetPhase(s.phase - tau/sliderSteps)
	case KeyRight:
		s.SetPhase(s.phase + tau/sliderSteps)
	case KeyBackspace:
		if n := len(s.entry); n > 0 {
			s.entry = s.entry[:n-1]
		}
	case KeyEnter:
		_ = s.Submit(string(s.entry))
		s.entry = s.entry[:0]
	case KeyRune:
		if len(s.entry) < maxEntry {
			s.entry = append(s.entry, k.Rune)
		}
	}

	return true
}

// Render draws the chain for the current phase, the slider and the entry.
func (s *Slider) Render(c *Canvas) {
	tips := phasor.Chain(s.sources, s.phase, s.arrowLen, s.cfg.Origin)
	drawChain(c, s.cfg, tips)

	// Slider track three rows above the bottom.
	row := c.H - 3
	left, right := c.W/5, c.W*4/5
	for x := left; x <= right; x++ {
		c.Set(x, row, '─')
	}
	knob := left + int(math.Round(s.phase/tau*float64(right-left)))
	c.Set(knob, row, '█')
	c.Text(right+2, row, fmt.Sprintf("%.4f", s.phase))

	c.Text(left, c.H-2, "phase> "+string(s.entry))
	c.Text(left+40, c.H-2, "set phase (from 0 to 2*pi)")
	if s.status != "" {
		c.Text(left, c.H-1, s.status)
	}
}
