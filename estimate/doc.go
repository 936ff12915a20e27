// Package estimate is the trial driver: it runs independent Monte-Carlo
// trials of the spanning-tree sampler and aggregates them into a mean with a
// standard error.
//
// One trial builds a fresh sampler over numPoints vertices, pulls all
// numPoints−1 edges, and returns the summed edge weights — a single sample
// of the random complete graph's MST weight. Trials share no mutable state,
// so Run fans them out across a bounded pool of worker goroutines and only
// the aggregate is observable; trial ordering is irrelevant.
//
// Only dimension 0 ("random complete graph") is supported here. Geometric
// dimensions would require a spatial sampler and are a different animal;
// RunTrial rejects them with ErrUnsupportedDimension so a future sibling can
// claim them.
//
// A trial that trips the sampler's internal consistency check is discarded
// and counted in Result.Failed; the remaining trials are unaffected. No
// partial per-trial results are ever folded into the mean.
//
// Aggregation uses gonum's stat package: Result.Mean is the sample mean,
// Result.StdErr the sample standard deviation divided by √trials.
//
// Reproducibility is not a goal — the default seed is time-derived and the
// estimate is meaningful only in distribution. WithSeed exists for tests.
package estimate
