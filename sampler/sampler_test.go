package sampler_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randmst/dsu"
	"github.com/katalvlaran/randmst/sampler"
)

// collect runs a sampler to exhaustion and returns every emitted edge.
func collect(t *testing.T, s *sampler.Sampler) []sampler.Edge {
	t.Helper()
	var edges []sampler.Edge
	for {
		edge, ok := s.Next()
		if !ok {
			break
		}
		edges = append(edges, edge)
	}
	require.NoError(t, s.Err())

	return edges
}

// TestNew_Validation verifies construction failures: invalid vertex counts
// propagate the dsu sentinels, and a nil source is rejected outright.
func TestNew_Validation(t *testing.T) {
	_, err := sampler.New(1, rand.NewPCG(1, 2))
	assert.ErrorIs(t, err, dsu.ErrTooFewPoints)

	_, err = sampler.New(dsu.MaxPoints+1, rand.NewPCG(1, 2))
	assert.ErrorIs(t, err, dsu.ErrTooManyPoints)

	_, err = sampler.New(16, nil)
	assert.ErrorIs(t, err, sampler.ErrNeedRandSource)
}

// TestNext_EmitsSpanningTree verifies the fundamental run contract across
// sizes: exactly n−1 accepted edges, all weights strictly inside (0,1) and
// nondecreasing, and nothing left free once the tree is complete.
func TestNext_EmitsSpanningTree(t *testing.T) {
	for _, n := range []uint32{2, 3, 4, 17, 256, 1000} {
		s, err := sampler.New(n, rand.NewPCG(uint64(n), 3))
		require.NoError(t, err)

		edges := collect(t, s)

		assert.Len(t, edges, int(n-1), "n=%d: a spanning tree has n-1 edges", n)
		assert.Equal(t, uint32(0), s.Remaining(), "n=%d", n)
		assert.Equal(t, uint64(0), s.FreeEdges(), "n=%d: complete tree leaves no free pair", n)

		prev := 0.0
		for i, e := range edges {
			assert.NotEqual(t, e.U, e.V, "n=%d edge %d: no self-loops", n, i)
			assert.Less(t, uint32(e.U), n, "n=%d edge %d: endpoint in range", n, i)
			assert.Less(t, uint32(e.V), n, "n=%d edge %d: endpoint in range", n, i)
			assert.Greater(t, e.W, prev, "n=%d edge %d: weights emitted in increasing order", n, i)
			assert.Less(t, e.W, 1.0, "n=%d edge %d: uniform order statistic below 1", n, i)
			prev = e.W
		}
	}
}

// TestNext_ExhaustedSamplerStaysDone verifies the terminal state is sticky:
// further Next calls keep returning false without error.
func TestNext_ExhaustedSamplerStaysDone(t *testing.T) {
	s, err := sampler.New(8, rand.NewPCG(5, 7))
	require.NoError(t, err)

	collect(t, s)
	for i := 0; i < 3; i++ {
		_, ok := s.Next()
		assert.False(t, ok)
	}
	assert.NoError(t, s.Err())
}

// TestNext_TrialWeightNearKnownConstant averages complete-graph MST weights
// over independent trials; for large n the expectation approaches
// ζ(3) ≈ 1.2020569 (Frieze), so the sample mean must land nearby. The
// tolerance is deliberately loose — this is a statistical smoke test, not a
// precision benchmark.
func TestNext_TrialWeightNearKnownConstant(t *testing.T) {
	const (
		n      = 1024
		trials = 30
		zeta3  = 1.2020569
	)

	sum := 0.0
	for trial := 0; trial < trials; trial++ {
		s, err := sampler.New(n, rand.NewPCG(uint64(trial), 997))
		require.NoError(t, err)

		total := 0.0
		for _, e := range collect(t, s) {
			total += e.W
		}
		sum += total
	}

	assert.InDelta(t, zeta3, sum/trials, 0.1,
		"mean MST weight over %d trials of n=%d must approach ζ(3)", trials, n)
}
