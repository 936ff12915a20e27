// Package sampler produces the edges of a minimum spanning tree of a random
// complete graph in increasing weight order — lazily, one edge per call,
// without materializing or sorting the O(N²) edge list.
//
// What & Why
//
//   - What does it sample?
//     A complete graph on N vertices with i.i.d. Uniform(0,1) edge weights.
//     Kruskal's algorithm only needs the edges in increasing weight order,
//     and for i.i.d. weights the *identity* of the k-th cheapest edge is a
//     uniformly random still-free vertex pair, while its *value* follows
//     from order statistics: with F free candidates remaining, the gap to
//     the next order statistic of the underlying Exponential(1) race is
//     itself Exponential(F) — the memoryless property. So the sampler draws
//     a gap, draws a uniformly random free pair, unites it, and emits the
//     pair together with the running weight.
//
//   - Why the fat component?
//     Late in the run most vertices sit in one giant ("fat") component, and
//     naive rejection sampling of a not-yet-connected pair degenerates:
//     almost every draw lands inside the giant and is rejected. Once more
//     than half of all vertex pairs are internal, the sampler locates the
//     unique component holding at least half the vertices and switches to a
//     two-phase draw. With probability fat·rest/free the next edge crosses
//     between the fat component and the remainder (one endpoint sampled
//     from each side); otherwise both endpoints come from the remainder
//     list. The split is exact — it reproduces the uniform distribution
//     over free pairs — while keeping the expected number of rejection
//     attempts O(1).
//
// State machine
//
//	Sparse ──(free×2 < total, scan finds a component ≥ N/2)──▶ FatTracked
//
// The transition happens at most once per run; there is no way back. While
// tracked, the component's root and size are re-resolved in O(1) on every
// accepted edge, and the remainder list is compacted only when stale entries
// (vertices that have since joined the fat component) would exceed half its
// length — amortizing cleanup against the shrinkage of the true remainder.
//
// Weight accumulation
//
// The running weight is carried as inv = e^(−S), where S is the sum of the
// exponential gaps so far; the emitted Uniform(0,1) order statistic is
// 1 − inv. Two numerically distinct update modes cover the two regimes:
// above ApproxThreshold free edges the gap is tiny and a first-order
// additive update suffices; below it the exact multiplicative update keeps
// tail precision. See WeightAccumulator.
//
// Error Conditions
//
//   - dsu.ErrTooFewPoints / dsu.ErrTooManyPoints : invalid N at construction.
//   - ErrNeedRandSource : New called with a nil random source.
//   - ErrStateDesync    : exposed via Err() after Next returns false even
//     though the edge quota was not exhausted — the free-edge bookkeeping
//     broke, which is a programming error, not a runtime condition.
//
// Complexity: one trial of N−1 edges runs in O(N α(N)) expected time and
// O(N) memory.
package sampler
