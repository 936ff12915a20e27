package sampler_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/randmst/sampler"
)

// BenchmarkFullTrial measures one complete spanning-tree extraction at the
// class speed-test size (2¹⁸ vertices).
func BenchmarkFullTrial(b *testing.B) {
	const n = 262_144
	for i := 0; i < b.N; i++ {
		s, err := sampler.New(n, rand.NewPCG(uint64(i), 9))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
		if err = s.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNext_Sparse measures per-edge cost in the early, unsaturated
// regime by recreating the sampler before saturation is reached.
func BenchmarkNext_Sparse(b *testing.B) {
	const n = 100_000
	s, err := sampler.New(n, rand.NewPCG(3, 5))
	if err != nil {
		b.Fatal(err)
	}
	emitted := uint32(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := s.Next(); !ok {
			b.Fatal("sampler exhausted mid-benchmark")
		}
		emitted++
		if emitted > n/2 {
			// Stay in the sparse regime: start over before saturation.
			b.StopTimer()
			s, err = sampler.New(n, rand.NewPCG(3, uint64(i)))
			if err != nil {
				b.Fatal(err)
			}
			emitted = 0
			b.StartTimer()
		}
	}
}
