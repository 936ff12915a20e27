// Command randmst estimates the expected minimum-spanning-tree weight of a
// random complete graph by Monte-Carlo trials.
//
// Usage:
//
//	randmst [flags] NUM_POINTS NUM_TRIALS DIMENSION
//
// NUM_POINTS is the vertex count, NUM_TRIALS the number of independent
// trials to average over, and DIMENSION the graph model — only 0 (complete
// graph with Uniform(0,1) edge weights) is supported.
//
// The result line is "MEAN NUM_POINTS NUM_TRIALS DIMENSION"; everything
// else goes to stderr.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/randmst/dsu"
	"github.com/katalvlaran/randmst/estimate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showTime bool
		serial   bool
		workers  int
		seed     uint64
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "randmst NUM_POINTS NUM_TRIALS DIMENSION",
		Short: "Monte-Carlo estimator of the expected MST weight of a random complete graph",
		Long: "randmst samples minimum spanning trees of random complete graphs with\n" +
			"Uniform(0,1) edge weights and prints the mean total weight over the\n" +
			"requested number of trials. For large graphs the mean approaches\n" +
			"Apéry's constant ζ(3) ≈ 1.2020569.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			numPoints, numTrials, dimension, err := parseArgs(args)
			if err != nil {
				return err
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger().Level(zerolog.InfoLevel)
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			opts := []estimate.Option{
				estimate.WithTrials(numTrials),
				estimate.WithDimension(dimension),
				estimate.WithSeed(seed),
				estimate.WithLogger(logger),
			}
			if serial {
				opts = append(opts, estimate.WithWorkers(1))
			} else if workers > 0 {
				opts = append(opts, estimate.WithWorkers(workers))
			}

			logger.Debug().
				Str("points", humanize.Comma(int64(numPoints))).
				Str("trials", humanize.Comma(int64(numTrials))).
				Int("dimension", dimension).
				Msg("starting run")

			start := time.Now()
			result, err := estimate.Run(numPoints, opts...)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "%.6f %d %d %d\n", result.Mean, numPoints, numTrials, dimension)
			if showTime {
				fmt.Fprintf(cmd.ErrOrStderr(), "elapsed: %v (%v per trial)\n",
					elapsed.Round(time.Millisecond),
					(elapsed / time.Duration(numTrials)).Round(time.Microsecond))
			}
			if result.Failed > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d trials discarded\n",
					result.Failed, result.Failed+result.Trials)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showTime, "time", false, "report wall-clock timing on stderr")
	cmd.Flags().BoolVar(&serial, "serial", false, "run trials one at a time (overrides --workers)")
	cmd.Flags().IntVar(&workers, "workers", 0, "bound the worker pool (0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "master random seed (0 = time-derived)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-trial progress")

	return cmd
}

// parseArgs validates the three positional arguments. Range errors are
// reported here rather than left to surface mid-run.
func parseArgs(args []string) (numPoints uint32, numTrials, dimension int, err error) {
	points, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("NUM_POINTS %q: %w", args[0], err)
	}
	if points < uint64(dsu.MinPoints) || points > uint64(dsu.MaxPoints) {
		return 0, 0, 0, fmt.Errorf("NUM_POINTS %s: must be between %d and %s",
			args[0], dsu.MinPoints, humanize.Comma(int64(dsu.MaxPoints)))
	}

	numTrials, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("NUM_TRIALS %q: %w", args[1], err)
	}
	if numTrials < 1 {
		return 0, 0, 0, fmt.Errorf("NUM_TRIALS %d: must be at least 1", numTrials)
	}

	dimension, err = strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("DIMENSION %q: %w", args[2], err)
	}
	if dimension != estimate.DimensionComplete {
		if dimension >= 1 && dimension <= 4 {
			return 0, 0, 0, fmt.Errorf("DIMENSION %d: geometric graphs are not supported, use 0", dimension)
		}

		return 0, 0, 0, fmt.Errorf("DIMENSION %d: must be 0", dimension)
	}

	return uint32(points), numTrials, dimension, nil
}
