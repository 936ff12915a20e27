// Package randmst estimates the expected minimum-spanning-tree weight of a
// random complete graph — without ever touching the O(N²) edge list.
//
// 🚀 What is randmst?
//
//	A Monte-Carlo estimator that simulates Kruskal's algorithm lazily:
//		• dsu/      — sized union-find (Rem's unite, path splitting, bit-packed slots)
//		• sampler/  — adaptive edge sampler with fat-component tracking
//		• estimate/ — trial driver: parallel trials, mean ± standard error
//		• bitset/   — packed-word bit set utility (standalone)
//
// ✨ Why choose randmst?
//
//   - No edge materialization – the next-cheapest edge is drawn from the
//     order statistics of Exponential(1) weights, one gap at a time
//   - No saturation blow-up – once one component swallows half the graph,
//     sampling switches to a two-phase strategy that stays O(1) amortized
//   - Embarrassingly parallel – every trial owns its state; aggregation is
//     a running mean with standard error
//
// Quick sketch of one trial on N vertices:
//
//	weight ← 0; quota ← N−1
//	while quota > 0:
//	    advance the running order statistic by Exp(1)/free_edges
//	    draw a uniformly random still-free vertex pair, unite it
//	    emit the pair with its running weight; quota−−
//
// For N → ∞ with Uniform(0,1) edge weights the per-trial sum converges to
// ζ(3) ≈ 1.2020569, which doubles as the statistical regression anchor.
//
// Dive into the per-package doc.go files for contracts, invariants and
// complexity notes.
//
//	go get github.com/katalvlaran/randmst
package randmst
