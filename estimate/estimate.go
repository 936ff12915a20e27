// Package estimate implements the trial driver. See doc.go for the
// execution and aggregation model.
package estimate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/randmst/sampler"
)

// RunTrial runs one independent trial: a full spanning-tree extraction over
// numPoints vertices, returning the summed edge weights.
//
// Error Conditions:
//   - ErrUnsupportedDimension : dimension != DimensionComplete.
//   - dsu.ErrTooFewPoints / dsu.ErrTooManyPoints : invalid numPoints.
//   - sampler.ErrNeedRandSource : src is nil.
//   - sampler.ErrStateDesync : the sampler's bookkeeping broke mid-run; the
//     returned weight is meaningless and must be discarded.
//
// Complexity: O(numPoints·α(numPoints)) expected time, O(numPoints) memory.
func RunTrial(numPoints uint32, dimension int, src rand.Source) (float64, error) {
	// Geometric modes are a different sampler's job; refuse them here.
	if dimension != DimensionComplete {
		return 0, fmt.Errorf("estimate: RunTrial(dimension=%d): %w", dimension, ErrUnsupportedDimension)
	}

	s, err := sampler.New(numPoints, src)
	if err != nil {
		return 0, err
	}

	// Pull every edge; the per-edge weights are the Uniform(0,1) order
	// statistics, so their sum is this trial's MST weight.
	total := 0.0
	for {
		edge, ok := s.Next()
		if !ok {
			break
		}
		total += edge.W
	}
	if err = s.Err(); err != nil {
		return 0, err
	}

	return total, nil
}

// Run dispatches Options.Trials independent trials over a bounded worker
// pool and aggregates the completed ones into a Result. Each trial owns its
// random stream (a PCG keyed by the master seed and the trial index), its
// sampler and its forest — workers never share mutable state, so no locking
// is involved beyond the channels.
//
// Trials discarded by the sampler's consistency check are counted in
// Result.Failed and logged; they never contaminate the mean. Run fails only
// when misconfigured (ErrNoTrials) or when nothing completed
// (ErrAllTrialsFailed).
func Run(numPoints uint32, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Trials < 1 {
		return Result{}, fmt.Errorf("estimate: Run(trials=%d): %w", o.Trials, ErrNoTrials)
	}
	if o.Dimension != DimensionComplete {
		return Result{}, fmt.Errorf("estimate: Run(dimension=%d): %w", o.Dimension, ErrUnsupportedDimension)
	}
	workers := o.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > o.Trials {
		workers = o.Trials
	}
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	type outcome struct {
		weight float64
		err    error
	}

	jobs := make(chan uint64)
	outcomes := make(chan outcome)

	// Fan out: each worker pulls trial indices and runs them to completion
	// with a stream derived from (seed, index).
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				weight, err := RunTrial(numPoints, o.Dimension, rand.NewPCG(seed, idx))
				if err != nil {
					o.Logger.Warn().Uint64("trial", idx).Err(err).Msg("trial discarded")
				} else {
					o.Logger.Debug().Uint64("trial", idx).Float64("weight", weight).Msg("trial complete")
				}
				outcomes <- outcome{weight: weight, err: err}
			}
		}()
	}
	go func() {
		for idx := uint64(0); idx < uint64(o.Trials); idx++ {
			jobs <- idx
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Fan in: collect per-trial weights, keeping the first failure around
	// for the all-failed diagnosis.
	weights := make([]float64, 0, o.Trials)
	var failed int
	var firstErr error
	for out := range outcomes {
		if out.err != nil {
			failed++
			if firstErr == nil {
				firstErr = out.err
			}

			continue
		}
		weights = append(weights, out.weight)
	}

	if len(weights) == 0 {
		return Result{Failed: failed}, fmt.Errorf("estimate: %w: %w", ErrAllTrialsFailed, firstErr)
	}

	result := Result{
		Mean:   stat.Mean(weights, nil),
		Trials: len(weights),
		Failed: failed,
	}
	if len(weights) > 1 {
		result.StdErr = stat.StdDev(weights, nil) / math.Sqrt(float64(len(weights)))
	}

	o.Logger.Info().
		Float64("mean", result.Mean).
		Float64("stderr", result.StdErr).
		Int("trials", result.Trials).
		Int("failed", result.Failed).
		Msg("run complete")

	return result, nil
}
