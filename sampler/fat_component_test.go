package sampler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randmst/dsu"
)

// saturatedSampler builds a sampler whose forest has been pre-merged with
// `merges` random union attempts, bypassing Next, so tracker behavior can be
// probed at a chosen saturation level.
func saturatedSampler(t testing.TB, n uint32, merges int, seed uint64) *Sampler {
	t.Helper()
	s, err := New(n, rand.NewPCG(seed, seed+1))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(seed+2, seed+3))
	for i := 0; i < merges; i++ {
		u := dsu.Point(rng.Uint32N(n))
		v := dsu.Point(rng.Uint32N(n))
		if s.set.Unite(u, v) {
			s.remaining--
		}
	}

	return s
}

// outsiders recomputes the true remainder set by a naive O(n) scan.
func outsiders(s *Sampler) map[dsu.Point]bool {
	out := make(map[dsu.Point]bool)
	for v := dsu.Point(0); v < dsu.Point(s.set.Len()); v++ {
		if s.set.Root(v) != s.fat.root {
			out[v] = true
		}
	}

	return out
}

// TestFindFat_LocatesGiantComponent reproduces the large-graph scenario:
// after 0.8·N random union attempts on N = 100000 vertices the giant
// component holds well over half the graph, and a single detection scan must
// find it and collect exactly the outside vertices.
func TestFindFat_LocatesGiantComponent(t *testing.T) {
	const n = 100_000
	s := saturatedSampler(t, n, int(0.8*n), 101)

	fat := s.findFat()
	require.NotNil(t, fat, "a component of size ≥ n/2 must exist at this saturation")
	assert.GreaterOrEqual(t, fat.size, uint32(n/2))
	assert.Equal(t, fat.root, s.set.Root(fat.root), "recorded root must be current")

	// The freshly collected remainder is exactly the set of outsiders.
	s.fat = fat
	out := outsiders(s)
	assert.Len(t, fat.remainder, len(out))
	for _, p := range fat.remainder {
		assert.True(t, out[p], "vertex %d listed as remainder but inside the fat component", p)
	}
}

// TestFindFat_NoGiantYet verifies that the detection scan reports nothing on
// a barely merged forest: no component reaches half the vertex count.
func TestFindFat_NoGiantYet(t *testing.T) {
	s := saturatedSampler(t, 1000, 50, 7)
	assert.Nil(t, s.findFat())
}

// TestRefreshFat_CompactsOnlyAbsorbed drives unions past detection and
// checks, after every refresh against a naive recomputation, that
//   - the remainder stays a superset of the true outsiders, and
//   - compaction never evicts a vertex that is still outside.
func TestRefreshFat_CompactsOnlyAbsorbed(t *testing.T) {
	const n = 500
	s := saturatedSampler(t, n, 2*n, 23)

	s.fat = s.findFat()
	require.NotNil(t, s.fat)

	rng := rand.New(rand.NewPCG(29, 31))
	for step := 0; step < 300; step++ {
		u := dsu.Point(rng.Uint32N(n))
		v := dsu.Point(rng.Uint32N(n))
		if !s.set.Unite(u, v) {
			continue
		}
		s.refreshFat()

		out := outsiders(s)
		seen := make(map[dsu.Point]bool, len(s.fat.remainder))
		for _, p := range s.fat.remainder {
			seen[p] = true
		}
		for p := range out {
			assert.True(t, seen[p], "step %d: outsider %d missing from remainder", step, p)
		}

		// Bound from the compaction rule: right after a refresh, stale
		// entries never outnumber live ones.
		assert.LessOrEqual(t, len(s.fat.remainder), compactionFactor*len(out),
			"step %d: remainder grew past the compaction bound", step)
	}
}

// TestDetection_TriggersAtMostOnce runs a full trial and asserts that the
// Sparse → FatTracked transition happens at most once: once a fat component
// is found, the same cache object is updated for the rest of the run.
func TestDetection_TriggersAtMostOnce(t *testing.T) {
	s, err := New(400, rand.NewPCG(37, 41))
	require.NoError(t, err)

	var first *fatComponent
	transitions := 0
	for {
		_, ok := s.Next()
		if !ok {
			break
		}
		if s.fat != nil && s.fat != first {
			transitions++
			first = s.fat
		}
	}

	require.NoError(t, s.Err())
	assert.NotNil(t, first, "a 400-vertex run must saturate and find a fat component")
	assert.Equal(t, 1, transitions, "detection must never re-trigger after the first success")
}

// TestRemainderBound_FullRun asserts the post-refresh length bound
// len(remainder) ≤ compactionFactor×(n − fatSize) throughout a full trial.
func TestRemainderBound_FullRun(t *testing.T) {
	const n = 2000
	s, err := New(n, rand.NewPCG(43, 47))
	require.NoError(t, err)

	for {
		_, ok := s.Next()
		if !ok {
			break
		}
		if s.fat == nil {
			continue
		}

		// A single merge can absorb a large outside component, so the bound
		// may be violated transiently between refreshes; a refresh must
		// always restore it.
		live := int(s.set.Len() - s.fat.size)
		if len(s.fat.remainder) > compactionFactor*live {
			s.refreshFat()
			live = int(s.set.Len() - s.fat.size)
			assert.LessOrEqual(t, len(s.fat.remainder), compactionFactor*live,
				"remainder must return within the compaction bound after a refresh")
		}
	}
	require.NoError(t, s.Err())
}
