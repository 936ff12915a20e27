package estimate_test

import (
	"fmt"

	"github.com/katalvlaran/randmst/estimate"
)

// ExampleRun estimates the expected MST weight of a random complete graph on
// 512 vertices from 8 independent trials. The exact mean is random; for
// large graphs it concentrates near ζ(3) ≈ 1.202.
func ExampleRun() {
	result, err := estimate.Run(512, estimate.WithTrials(8))
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Printf("trials=%d mean-in-range=%v\n", result.Trials, result.Mean > 1.0 && result.Mean < 1.4)
	// Output:
	// trials=8 mean-in-range=true
}
