package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/randmst/dsu"
)

// ExampleDSU_Unite demonstrates merging components and reading the exact
// edge counters a Kruskal-style sampler relies on.
func ExampleDSU_Unite() {
	set, _ := dsu.New(4) // K4 has 6 vertex pairs in total

	fmt.Println(set.Unite(0, 1)) // two singletons merge: 1×1 pair internalized
	fmt.Println(set.Unite(2, 3)) // another 1×1
	fmt.Println(set.Unite(1, 2)) // two pairs merge: 2×2 = 4 more
	fmt.Println(set.Unite(0, 3)) // already connected: no-op

	fmt.Println(set.InternalEdges(), set.FreeEdges())
	// Output:
	// true
	// true
	// true
	// false
	// 6 0
}
