// SPDX-License-Identifier: MIT

package view

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fraunhofer/diffraction"
	"github.com/katalvlaran/fraunhofer/phasor"
)

// memScreen records every canvas it is asked to show.
type memScreen struct {
	w, h  int
	shown []*Canvas
}

func (m *memScreen) Size() (int, int) { return m.w, m.h }
func (m *memScreen) Show(c *Canvas)   { m.shown = append(m.shown, c) }

func (m *memScreen) last() string {
	if len(m.shown) == 0 {
		return ""
	}
	return m.shown[len(m.shown)-1].String()
}

// ------------------------------
// Canvas
// ------------------------------

func TestCanvas_SetClips(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, 'a')
	c.Set(3, 1, 'b')
	c.Set(-1, 0, 'x')
	c.Set(4, 0, 'x')
	c.Set(0, 2, 'x')

	assert.Equal(t, 'a', c.At(0, 0))
	assert.Equal(t, 'b', c.At(3, 1))
	assert.Equal(t, ' ', c.At(9, 9))
	assert.Equal(t, []string{"a", "   b"}, c.Lines())
}

func TestCanvas_Empty(t *testing.T) {
	c := NewCanvas(-3, 0)
	c.Set(0, 0, 'x')
	assert.Empty(t, c.Lines())
}

func TestCanvas_Cell(t *testing.T) {
	c := NewCanvas(11, 11)
	x, y := c.Cell(phasor.Point{X: 0, Y: 0})
	assert.Equal(t, [2]int{0, 10}, [2]int{x, y}, "origin is bottom-left")
	x, y = c.Cell(phasor.Point{X: 1, Y: 1})
	assert.Equal(t, [2]int{10, 0}, [2]int{x, y})
	x, y = c.Cell(phasor.Point{X: 0.5, Y: 0.5})
	assert.Equal(t, [2]int{5, 5}, [2]int{x, y})
}

func TestCanvas_LineAndArrow(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Line(0, 1, 4, 1, '-')
	assert.Equal(t, "-----", c.Lines()[1])

	c = NewCanvas(5, 5)
	c.Arrow(phasor.Point{X: 0, Y: 0}, phasor.Point{X: 1, Y: 1})
	assert.Equal(t, '/', c.At(0, 4))
	assert.Equal(t, '/', c.At(2, 2))
	assert.Equal(t, '•', c.At(4, 0), "arrow head")
}

func TestStroke(t *testing.T) {
	assert.Equal(t, '─', stroke(phasor.Point{X: 1}))
	assert.Equal(t, '─', stroke(phasor.Point{X: -1}))
	assert.Equal(t, '│', stroke(phasor.Point{Y: 1}))
	assert.Equal(t, '│', stroke(phasor.Point{Y: -1}))
	assert.Equal(t, '/', stroke(phasor.Point{X: 1, Y: 1}))
	assert.Equal(t, '\\', stroke(phasor.Point{X: -1, Y: 1}))
}

// ------------------------------
// Animator
// ------------------------------

func newTestAnimator(cfg Config, s Screen, keys <-chan Key) (*Animator, *[]time.Duration) {
	var waits []time.Duration
	a := NewAnimator(cfg, s, keys)
	a.sleep = func(d time.Duration) { waits = append(waits, d) }
	return a, &waits
}

func TestAnimator_OneFramePerSample(t *testing.T) {
	screen := &memScreen{w: 60, h: 30}
	a, waits := newTestAnimator(DefaultConfig(), screen, nil)

	animated, err := diffraction.SingleSlit(1, diffraction.WithOrigin(DefaultConfig().Origin),
		diffraction.WithObserver(a.Observe))
	require.NoError(t, err)
	plain, err := diffraction.SingleSlit(1)
	require.NoError(t, err)

	assert.Equal(t, plain, animated, "animation must not change results")
	assert.Equal(t, len(plain.X), a.Frames())
	require.Len(t, *waits, len(plain.X))
	assert.Equal(t, 10*time.Millisecond, (*waits)[0])

	assert.Contains(t, screen.shown[0].String(), "θ = 0°")
	assert.Contains(t, screen.last(), "θ = 90°")
	assert.Contains(t, screen.shown[0].String(), "•", "arrow heads at θ=0")
}

func TestAnimator_PhaseModelHasNoAngleLabel(t *testing.T) {
	screen := &memScreen{w: 40, h: 20}
	a, _ := newTestAnimator(DefaultConfig(), screen, nil)

	_, err := diffraction.Slits(2, diffraction.WithObserver(a.Observe))
	require.NoError(t, err)
	for _, c := range screen.shown {
		assert.NotContains(t, c.String(), "θ")
	}
}

func TestAnimator_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animate = false
	screen := &memScreen{w: 40, h: 20}
	a, waits := newTestAnimator(cfg, screen, nil)

	_, err := diffraction.Slits(3, diffraction.WithObserver(a.Observe))
	require.NoError(t, err)
	assert.Zero(t, a.Frames())
	assert.Empty(t, *waits)
	assert.Empty(t, screen.shown)
}

// TestAnimator_QuitSkipsRemainingFrames: the model keeps computing after the
// user leaves the animation.
func TestAnimator_QuitSkipsRemainingFrames(t *testing.T) {
	keys := make(chan Key, 1)
	screen := &memScreen{w: 40, h: 20}
	a, _ := newTestAnimator(DefaultConfig(), screen, keys)

	res, err := diffraction.Slits(4, diffraction.WithObserver(func(f diffraction.Frame) {
		if f.Index == 3 {
			keys <- Key{Code: KeyEscape}
		}
		a.Observe(f)
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Frames())
	assert.Len(t, res.Amplitude, 41)
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "12.3457", trimFloat(12.345678, 4))
	assert.Equal(t, "90", trimFloat(90.00000001, 4))
	assert.Equal(t, "0", trimFloat(0, 4))
}

// ------------------------------
// Plot
// ------------------------------

func TestPlot_DrawsBothPanels(t *testing.T) {
	res, err := diffraction.MultiSlit(4, 2, 1)
	require.NoError(t, err)

	c := NewCanvas(80, 40)
	Plot(c, res)
	out := c.String()

	assert.Contains(t, out, "4 slits; d = 2; a = 1")
	assert.Contains(t, out, "electric field amplitude")
	assert.Contains(t, out, "intensity")
	assert.Contains(t, out, "θ (°)")
	assert.Contains(t, out, "16", "intensity axis limit (N·a)²")
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "·", "reference envelope")
	assert.Equal(t, 2, strings.Count(out, "└"))
}

func TestPlot_PhaseAxis(t *testing.T) {
	res, err := diffraction.Slits(3)
	require.NoError(t, err)

	c := NewCanvas(80, 40)
	Plot(c, res)
	out := c.String()
	assert.Contains(t, out, "phase (°)")
	assert.Contains(t, out, "360")
	assert.NotContains(t, out, "·", "no reference for N slits")
}

func TestPlot_TinyCanvas(t *testing.T) {
	res, err := diffraction.Slits(2)
	require.NoError(t, err)
	assert.NotPanics(t, func() { Plot(NewCanvas(3, 3), res) })
}

// ------------------------------
// Slider
// ------------------------------

func TestSlider_Keys(t *testing.T) {
	s := NewSlider(DefaultConfig(), 3, 0.99/6)

	assert.True(t, s.HandleKey(Key{Code: KeyRight}))
	assert.InDelta(t, 2*math.Pi/72, s.Phase(), 1e-12)
	s.HandleKey(Key{Code: KeyLeft})
	s.HandleKey(Key{Code: KeyLeft})
	assert.Equal(t, 0.0, s.Phase(), "clamped at 0")

	for _, r := range "pi/2x" {
		s.HandleKey(Key{Code: KeyRune, Rune: r})
	}
	s.HandleKey(Key{Code: KeyBackspace})
	s.HandleKey(Key{Code: KeyEnter})
	assert.InDelta(t, math.Pi/2, s.Phase(), 1e-12)
	assert.Empty(t, s.Status())

	assert.False(t, s.HandleKey(Key{Code: KeyEscape}))
}

func TestSlider_SubmitRejectsCode(t *testing.T) {
	s := NewSlider(DefaultConfig(), 3, 0.1)
	require.NoError(t, s.Submit("pi"))

	err := s.Submit("__import__('os').system('rm -rf /')")
	require.Error(t, err)
	assert.InDelta(t, math.Pi, s.Phase(), 1e-12, "phase unchanged on error")
	assert.Contains(t, s.Status(), "unknown identifier")

	require.NoError(t, s.Submit("2*pi + pi/2"))
	assert.InDelta(t, math.Pi/2, s.Phase(), 1e-12, "reduced modulo 2π")
}

func TestSlider_Render(t *testing.T) {
	s := NewSlider(DefaultConfig(), 4, 0.99/8)
	c := NewCanvas(80, 30)
	s.Render(c)
	out := c.String()
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "phase> ")
	assert.Contains(t, out, "0.0000")
}

func TestInteract(t *testing.T) {
	screen := &memScreen{w: 80, h: 30}
	keys := make(chan Key, 8)
	for _, r := range "pi" {
		keys <- Key{Code: KeyRune, Rune: r}
	}
	keys <- Key{Code: KeyEnter}
	keys <- Key{Code: KeyEscape}

	s := NewSlider(DefaultConfig(), 2, 0.2)
	Interact(screen, keys, s)

	assert.InDelta(t, math.Pi, s.Phase(), 1e-12)
	assert.Len(t, screen.shown, 4, "initial frame plus one per handled key")
}

func TestHold(t *testing.T) {
	screen := &memScreen{w: 80, h: 40}
	keys := make(chan Key, 3)
	keys <- Key{Code: KeyRune, Rune: 'x'}
	keys <- Key{Code: KeyResize}
	close(keys)

	calls := 0
	Hold(screen, keys, func(c *Canvas) { calls++ })
	assert.Equal(t, 2, calls, "initial draw plus resize")
	assert.Contains(t, screen.last(), "esc/q")
}
