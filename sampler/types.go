// Package sampler defines the emitted edge type, shared constants and
// sentinel errors for the adaptive edge sampler.
package sampler

import (
	"errors"

	"github.com/katalvlaran/randmst/dsu"
)

// Edge is one accepted spanning-tree edge: the united vertex pair and the
// running order-statistic weight at the moment of acceptance.
type Edge struct {
	// U, V are the endpoints; their order carries no meaning.
	U, V dsu.Point

	// W is the Uniform(0,1) order statistic of this edge's weight — the
	// k-th smallest among all N(N-1)/2 candidate weights for the k-th
	// accepted edge. Strictly increasing across one run.
	W float64
}

// ApproxThreshold is the free-edge count above which the weight accumulator
// switches to its first-order additive update. With more than 2¹⁶ free
// candidates the exponential gap is small enough that the linearization
// error sits far below float64 noise, and skipping math.Exp per step is a
// measurable win on large graphs.
const ApproxThreshold uint64 = 1 << 16

// saturationFactor controls fat-component detection: the scan triggers once
// FreeEdges × saturationFactor < TotalEdges, i.e. when more than half of all
// vertex pairs have been internalized.
const saturationFactor = 2

// compactionFactor controls remainder cleanup: the list is filtered down to
// true non-members only when the true remainder × compactionFactor is
// smaller than the list length, i.e. when stale entries outnumber live ones.
const compactionFactor = 2

// ErrNeedRandSource indicates that New was called with a nil random source.
// A sampler without randomness cannot draw candidate edges.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a rand.Source */ }.
var ErrNeedRandSource = errors.New("sampler: random source is required")

// ErrStateDesync indicates that the free-edge bookkeeping reached zero while
// spanning-tree edges were still owed. This cannot happen while the
// counters are maintained correctly; it signals a logic error inside the
// run, and the trial that observes it must be discarded, not patched up.
// Usage: if errors.Is(err, ErrStateDesync) { /* drop this trial */ }.
var ErrStateDesync = errors.New("sampler: free-edge bookkeeping desynchronized")
