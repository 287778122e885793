// SPDX-License-Identifier: MIT

package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fraunhofer/sampling"
)

const eps = 1e-12

// TestLinspace_Shape checks count, endpoints and uniform spacing.
func TestLinspace_Shape(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		n    int
	}{
		{"unit", 0, 1, 11},
		{"two points", -3, 5, 2},
		{"full cycle", 0, 2 * math.Pi, 41},
		{"descending", 4, -4, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xs := sampling.Linspace(tc.a, tc.b, tc.n)
			require.Len(t, xs, tc.n)
			assert.Equal(t, tc.a, xs[0], "first value must equal a exactly")
			assert.InDelta(t, tc.b, xs[len(xs)-1], eps, "last value must equal b")

			step := (tc.b - tc.a) / float64(tc.n-1)
			for i := 1; i < len(xs); i++ {
				assert.InDelta(t, step, xs[i]-xs[i-1], 1e-9, "spacing at %d", i)
			}
		})
	}
}

// TestLinspace_TooFew verifies that n < 2 yields nil instead of a panic.
func TestLinspace_TooFew(t *testing.T) {
	assert.Nil(t, sampling.Linspace(0, 1, 1))
	assert.Nil(t, sampling.Linspace(0, 1, 0))
	assert.Nil(t, sampling.Linspace(0, 1, -5))
}

// TestSequence_Integers covers the exact-step case 0:1:5.
func TestSequence_Integers(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, sampling.Sequence(0, 1, 5))
}

// TestSequence_RoundoffIncludesEnd guards the one-extra-point bias.
func TestSequence_RoundoffIncludesEnd(t *testing.T) {
	xs := sampling.Sequence(0.0, 0.1, 1.0)
	require.Len(t, xs, 11)
	assert.InDelta(t, 1.0, xs[10], eps)

	// 0.3/0.1 evaluates to 2.9999999999999996.
	xs = sampling.Sequence(0, 0.1, 0.3)
	require.Len(t, xs, 4)
	assert.InDelta(t, 0.3, xs[3], eps)

	// sin(pi/2) is exactly 1 but the step 1/(n*a) rarely divides it evenly.
	for _, n := range []float64{3, 7, 30, 90} {
		ys := sampling.Sequence(0, 1/n, math.Sin(math.Pi/2))
		assert.Len(t, ys, int(n)+1, "1/%v steps over [0,1]", n)
		assert.LessOrEqual(t, ys[len(ys)-1], 1.0+1e-12)
	}
}

// TestSequence_PartialLastStep stops before overshooting b.
func TestSequence_PartialLastStep(t *testing.T) {
	xs := sampling.Sequence(0, 0.3, 1)
	require.Len(t, xs, 4)
	assert.InDelta(t, 0.9, xs[3], eps)
}

// TestSequence_SinglePoint returns just a when b == a.
func TestSequence_SinglePoint(t *testing.T) {
	assert.Equal(t, []float64{2}, sampling.Sequence(2, 0.5, 2))
}

// TestSequence_BadInput verifies nil on broken preconditions.
func TestSequence_BadInput(t *testing.T) {
	assert.Nil(t, sampling.Sequence(0, 0, 1), "zero step")
	assert.Nil(t, sampling.Sequence(0, -1, 1), "negative step")
	assert.Nil(t, sampling.Sequence(1, 0.1, 0), "b < a")
	assert.Nil(t, sampling.Sequence(0, math.NaN(), 1), "NaN step")
	assert.Nil(t, sampling.Sequence(0, 1, math.Inf(1)), "infinite end")
	assert.Nil(t, sampling.Sequence(math.NaN(), 1, 2), "NaN start")
}

func TestDegrees(t *testing.T) {
	in := []float64{0, math.Pi / 2, math.Pi, 2 * math.Pi}
	out := sampling.Degrees(in)
	assert.InDeltaSlice(t, []float64{0, 90, 180, 360}, out, 1e-9)
	assert.Equal(t, math.Pi, in[2], "input must not be modified")
	assert.Empty(t, sampling.Degrees(nil))
}
