// Package sampler implements the adaptive edge sampler. See doc.go for the
// state machine and the order-statistics background.
package sampler

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/randmst/dsu"
)

// Sampler emits the spanning-tree edges of one random complete graph in
// increasing weight order. It owns its union-find forest, its fat-component
// cache and its random stream; instances are single-goroutine and cheap
// enough to create one per trial.
//
// Usage follows the bufio.Scanner shape:
//
//	for edge, ok := s.Next(); ok; edge, ok = s.Next() { ... }
//	if err := s.Err(); err != nil { ... }
type Sampler struct {
	// set tracks components and the exact free/internal edge counters.
	set *dsu.DSU

	// fat is nil while in the Sparse state; once detection succeeds it is
	// only ever updated, never rediscovered.
	fat *fatComponent

	// remaining is the edge quota: N−1 down to 0.
	remaining uint32

	// acc carries the running order-statistic weight.
	acc WeightAccumulator

	// rng drives uniform vertex/index draws; exp draws the Exponential(1)
	// gaps. Both consume the same underlying source.
	rng *rand.Rand
	exp distuv.Exponential

	// err is set once when the bookkeeping desynchronizes; sticky.
	err error
}

// New constructs a sampler for a random complete graph on n vertices, drawing
// all randomness from src.
//
// Error Conditions:
//   - dsu.ErrTooFewPoints / dsu.ErrTooManyPoints : n outside [2, MaxPoints].
//   - ErrNeedRandSource : src is nil.
func New(n uint32, src rand.Source) (*Sampler, error) {
	if src == nil {
		return nil, fmt.Errorf("sampler: New(%d): %w", n, ErrNeedRandSource)
	}

	set, err := dsu.New(n)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		set:       set,
		remaining: n - 1,
		acc:       NewWeightAccumulator(),
		rng:       rand.New(src),
		exp:       distuv.Exponential{Rate: 1, Src: src},
	}, nil
}

// Remaining returns how many spanning-tree edges are still owed.
func (s *Sampler) Remaining() uint32 { return s.remaining }

// FreeEdges returns the number of vertex pairs still spanning two components.
func (s *Sampler) FreeEdges() uint64 { return s.set.FreeEdges() }

// Set exposes the underlying forest for read-only inspection. Mutating it
// mid-run desynchronizes the sampler.
func (s *Sampler) Set() *dsu.DSU { return s.set }

// Err returns the sticky bookkeeping error, or nil. Non-nil only after Next
// has returned false with the edge quota unexhausted; the trial's output
// must be discarded in that case.
func (s *Sampler) Err() error { return s.err }

// Next advances the sampler by one accepted edge.
//
// Steps per call:
//  1. Terminal check: quota exhausted → (zero, false); free edges exhausted
//     with quota left → sticky ErrStateDesync and (zero, false).
//  2. Advance the weight accumulator using the *current* free-edge count —
//     the memoryless gap belongs to "next of the remaining candidates",
//     whichever pair it turns out to be.
//  3. Maintain the fat component: refresh it if tracked, otherwise run
//     detection once the saturation threshold is met.
//  4. Draw candidate pairs (sparse or two-phase, by state) until Unite
//     accepts one; rejection retries are expected and O(1) amortized.
//  5. Decrement the quota and emit the pair with its running weight.
func (s *Sampler) Next() (Edge, bool) {
	// 1. Terminal conditions.
	if s.err != nil || s.remaining == 0 {
		return Edge{}, false
	}
	if s.set.FreeEdges() == 0 {
		s.err = fmt.Errorf("sampler: %d edges still owed with no free pair left: %w",
			s.remaining, ErrStateDesync)

		return Edge{}, false
	}

	// 2. Advance the order statistic before choosing the edge.
	s.acc.Advance(s.exp.Rand(), s.set.FreeEdges())

	// 3. Maintain the fat-component cache.
	if s.fat != nil {
		s.refreshFat()
	} else if s.set.FreeEdges()*saturationFactor < s.set.TotalEdges() {
		s.fat = s.findFat()
	}

	// 4. Draw until a pair actually merges. Acceptance is decided by
	//    Unite's result alone — the draw helpers pre-filter with component
	//    reads, but only a successful union counts.
	for {
		var u, v dsu.Point
		if s.fat != nil {
			u, v = s.fatEdge()
		} else {
			u, v = s.sparseEdge()
		}

		if !s.set.Unite(u, v) {
			continue
		}

		// 5. Bookkeeping and emission.
		s.remaining--

		return Edge{U: u, V: v, W: s.acc.Weight()}, true
	}
}

// sparseEdge draws a uniformly random free vertex pair by rejection: two
// independent uniform vertices, redrawn while they share a component. Below
// the saturation threshold the acceptance probability exceeds 1/2, so the
// expected number of attempts is O(1).
func (s *Sampler) sparseEdge() (dsu.Point, dsu.Point) {
	n := s.set.Len()
	for {
		u := dsu.Point(s.rng.Uint32N(n))
		v := dsu.Point(s.rng.Uint32N(n))
		if !s.set.SameSet(u, v) {
			return u, v
		}
	}
}

// fatEdge draws a uniformly random free vertex pair via the two-phase split.
// Exactly fatSize·restSize of the free pairs cross between the fat component
// and the remainder, so branching on that ratio reproduces the uniform
// distribution over free pairs while keeping rejection rates O(1).
func (s *Sampler) fatEdge() (dsu.Point, dsu.Point) {
	fatSize := uint64(s.fat.size)
	restSize := uint64(s.set.Len() - s.fat.size)
	free := s.set.FreeEdges()

	if s.rng.Float64() < float64(fatSize*restSize)/float64(free) {
		// Crossing edge: one endpoint inside the fat component, one outside.
		// Endpoints of a crossing pair can never share a component.
		return s.fromFat(), s.fromRemainder()
	}

	// Both endpoints outside the fat component, rejected while connected.
	for {
		u := s.fromRemainder()
		v := s.fromRemainder()
		if !s.set.SameSet(u, v) {
			return u, v
		}
	}
}

// fromFat draws a uniform member of the fat component by rejecting uniform
// vertices that resolve elsewhere. The fat component holds at least half of
// all vertices, so acceptance probability is ≥ 1/2.
func (s *Sampler) fromFat() dsu.Point {
	n := s.set.Len()
	for {
		u := dsu.Point(s.rng.Uint32N(n))
		if s.set.Root(u) == s.fat.root {
			return u
		}
	}
}

// fromRemainder draws a uniform vertex outside the fat component from the
// remainder list, skipping stale entries that have since been absorbed.
// Compaction keeps live entries at least half the list, so acceptance
// probability is ≥ 1/2.
func (s *Sampler) fromRemainder() dsu.Point {
	for {
		u := s.fat.remainder[s.rng.IntN(len(s.fat.remainder))]
		if s.set.Root(u) != s.fat.root {
			return u
		}
	}
}
