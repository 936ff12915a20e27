package sampler

import "math"

// WeightAccumulator converts "one more accepted edge" into the numeric value
// of the next order statistic of N(N-1)/2 i.i.d. Uniform(0,1) edge weights.
//
// Model: run an Exponential(1) race over all candidates. With F free
// candidates left, the gap to the next arrival is Exponential(F) by
// memorylessness, so the k-th arrival time is S_k = Σ X_i/F_i with X_i
// standard exponential draws. Mapping back through the inverse CDF, the
// k-th smallest Uniform(0,1) weight is 1 − e^(−S_k).
//
// Rather than carrying S directly, the accumulator maintains inv = e^(−S),
// which keeps the emitted weight 1 − inv well conditioned near the tail:
//
//   - additive mode (F > ApproxThreshold): inv -= x/F, the first-order
//     expansion of inv·e^(−x/F) — indistinguishable at float64 precision
//     while x/F ≲ 2⁻¹⁶, and saves a math.Exp per edge;
//   - multiplicative mode (F ≤ ApproxThreshold): inv *= e^(−x/F), exact.
//
// Both modes advance the same quantity; the threshold trades speed for
// precision and is not a correctness boundary.
type WeightAccumulator struct {
	// inv tracks e^(−S) for the running gap sum S; starts at 1 (S = 0).
	inv float64
}

// NewWeightAccumulator returns an accumulator positioned before the first
// order statistic: Weight() == 0.
func NewWeightAccumulator() WeightAccumulator {
	return WeightAccumulator{inv: 1}
}

// Advance consumes one standard Exponential(1) sample and the current
// free-candidate count, moving the accumulator to the next order statistic.
// Must be called with the free count *before* the corresponding edge is
// chosen — the gap is a property of "time until any of the F remaining
// candidates arrives", independent of which one it turns out to be.
func (a *WeightAccumulator) Advance(expSample float64, freeEdges uint64) {
	if freeEdges > ApproxThreshold {
		a.advanceAdditive(expSample, freeEdges)

		return
	}
	a.advanceMultiplicative(expSample, freeEdges)
}

// advanceAdditive applies the first-order update inv -= x/F.
func (a *WeightAccumulator) advanceAdditive(expSample float64, freeEdges uint64) {
	a.inv -= expSample / float64(freeEdges)
}

// advanceMultiplicative applies the exact update inv *= e^(−x/F).
func (a *WeightAccumulator) advanceMultiplicative(expSample float64, freeEdges uint64) {
	a.inv *= math.Exp(-expSample / float64(freeEdges))
}

// Weight returns the current order statistic 1 − e^(−S).
func (a *WeightAccumulator) Weight() float64 {
	return 1 - a.inv
}
