// Package estimate defines configuration options, the aggregate result type
// and sentinel errors for the trial driver.
package estimate

import (
	"errors"
	"runtime"

	"github.com/rs/zerolog"
)

// DimensionComplete selects the random-complete-graph mode — the only
// dimension this driver supports. Geometric dimensions (1..4 in the wider
// design) belong to a spatial sampler that does not exist here.
const DimensionComplete = 0

// DefaultTrials is the trial count used when no WithTrials option is given.
const DefaultTrials = 1

// ErrUnsupportedDimension indicates a dimension other than DimensionComplete
// was requested. Usage: if errors.Is(err, ErrUnsupportedDimension) { ... }.
var ErrUnsupportedDimension = errors.New("estimate: unsupported dimension")

// ErrNoTrials indicates that Run was configured with fewer than one trial.
var ErrNoTrials = errors.New("estimate: at least one trial is required")

// ErrAllTrialsFailed indicates that every dispatched trial was discarded by
// the sampler's internal consistency check, leaving nothing to aggregate.
var ErrAllTrialsFailed = errors.New("estimate: all trials failed")

// Result is the aggregate of one Run.
type Result struct {
	// Mean is the sample mean of the per-trial MST weights.
	Mean float64

	// StdErr is the standard error of Mean: sample standard deviation over
	// √Trials. Zero when fewer than two trials completed.
	StdErr float64

	// Trials counts the trials folded into Mean.
	Trials int

	// Failed counts discarded trials (sampler consistency violations).
	Failed int
}

// Options configures a Run. Use DefaultOptions() and the WithX functions;
// zero values mean "pick a sensible default at run time".
type Options struct {
	// Trials is the number of independent trials to dispatch.
	Trials int

	// Workers bounds the worker-goroutine pool; ≤ 0 means GOMAXPROCS.
	Workers int

	// Seed derives the per-trial random streams; 0 means time-derived.
	Seed uint64

	// Dimension selects the graph model; only DimensionComplete is valid.
	Dimension int

	// Logger receives per-trial debug events and the run summary.
	Logger zerolog.Logger
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithTrials returns an Option that sets the number of independent trials.
func WithTrials(trials int) Option {
	return func(o *Options) { o.Trials = trials }
}

// WithWorkers returns an Option bounding the worker pool. Values ≤ 0 fall
// back to GOMAXPROCS; 1 forces serial execution (useful for debugging).
func WithWorkers(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithSeed returns an Option fixing the master seed for the per-trial
// random streams. Intended for tests; 0 keeps the time-derived default.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDimension returns an Option selecting the graph model. Anything other
// than DimensionComplete makes Run fail with ErrUnsupportedDimension.
func WithDimension(dimension int) Option {
	return func(o *Options) { o.Dimension = dimension }
}

// WithLogger returns an Option attaching a zerolog logger to the run.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// DefaultOptions returns Options initialized for a single serial-friendly
// trial of the complete-graph model with no logging:
//
//	– Trials    = DefaultTrials
//	– Workers   = GOMAXPROCS
//	– Seed      = 0 (time-derived)
//	– Dimension = DimensionComplete
//	– Logger    = zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		Trials:    DefaultTrials,
		Workers:   runtime.GOMAXPROCS(0),
		Dimension: DimensionComplete,
		Logger:    zerolog.Nop(),
	}
}
