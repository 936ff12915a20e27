// Package dsu defines the vertex identifier type, shared constants and
// sentinel errors for the sized union-find structure.
package dsu

import "errors"

// Point identifies a vertex: an integer in [0, n) fixed at construction.
// Points carry no attributes; they are pure indices into the forest.
type Point uint32

// rootTag is the high bit of a slot. When set, the slot belongs to a root
// and its low 31 bits hold the component size; when clear, the slot is the
// parent Point. Sharing one uint32 this way halves the memory footprint and
// keeps root checks branch-cheap.
const rootTag uint32 = 1 << 31

// MaxPoints is the largest vertex count New accepts. One bit of every slot
// is reserved for the root tag, so indices (and sizes) must fit in 31 bits.
const MaxPoints uint32 = rootTag - 1

// MinPoints is the smallest vertex count New accepts. A forest over fewer
// than 2 vertices has no pair to unite and no edge to count.
const MinPoints uint32 = 2

// ErrTooFewPoints indicates that New was called with n < MinPoints.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("dsu: too few points")

// ErrTooManyPoints indicates that New was called with n > MaxPoints, which
// would collide vertex indices with the reserved root tag bit.
// Usage: if errors.Is(err, ErrTooManyPoints) { /* shrink the vertex set */ }.
var ErrTooManyPoints = errors.New("dsu: point count exceeds representable range")
