// SPDX-License-Identifier: MIT

package phasor_test

import (
	"testing"

	"github.com/katalvlaran/fraunhofer/phasor"
	"github.com/katalvlaran/fraunhofer/sampling"
)

// benchmarkResultants sums n arrows over samples phases in [0, 2π].
func benchmarkResultants(b *testing.B, n, samples int, opts ...phasor.Option) {
	phases := sampling.Linspace(0, 6.283185307179586, samples)
	L := phasor.Uniform(0.99 / (2 * float64(n)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := phasor.Resultants(n, phases, L, opts...); err != nil {
			b.Fatalf("Resultants failed: %v", err)
		}
	}
}

func BenchmarkResultants_Small(b *testing.B) { benchmarkResultants(b, 5, 51) }

func BenchmarkResultants_Large(b *testing.B) { benchmarkResultants(b, 100, 1001) }

// BenchmarkResultants_Observed measures the cost of copying tips out.
func BenchmarkResultants_Observed(b *testing.B) {
	benchmarkResultants(b, 100, 1001, phasor.WithObserver(func(int, []phasor.Point) {}))
}
