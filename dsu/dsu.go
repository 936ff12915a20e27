// Package dsu implements the sized union-find forest. See doc.go for the
// full contract and representation notes.
package dsu

import "fmt"

// DSU is a disjoint-set forest over Points 0..n-1 with per-root component
// sizes and exact global edge counters. The zero value is not usable; always
// construct through New.
//
// Invariants (hold after every exported call):
//   - every parent chain terminates at its component's unique root;
//   - size values live only in root slots and equal the component cardinality;
//   - InternalEdges() + FreeEdges() == TotalEdges().
type DSU struct {
	// slots holds one packed entry per Point: rootTag|size for roots,
	// a plain parent Point otherwise.
	slots []uint32

	// n is the fixed vertex count.
	n uint32

	// totalEdges is n(n-1)/2, fixed at construction.
	totalEdges uint64

	// internalEdges accumulates size(a)·size(b) over accepted merges.
	internalEdges uint64
}

// New constructs a forest of n singleton components, each its own root with
// size 1.
//
// Error Conditions:
//   - ErrTooFewPoints  : n < MinPoints.
//   - ErrTooManyPoints : n > MaxPoints (tag bit reservation, see types.go).
//
// Complexity: O(n) time, O(n) memory.
func New(n uint32) (*DSU, error) {
	// 1. Validate the representable range before touching memory.
	if n < MinPoints {
		return nil, fmt.Errorf("dsu: New(%d): %w", n, ErrTooFewPoints)
	}
	if n > MaxPoints {
		return nil, fmt.Errorf("dsu: New(%d): %w", n, ErrTooManyPoints)
	}

	// 2. Every vertex starts as a root of size 1.
	slots := make([]uint32, n)
	for i := range slots {
		slots[i] = rootTag | 1
	}

	return &DSU{
		slots:      slots,
		n:          n,
		totalEdges: uint64(n) * uint64(n-1) / 2,
	}, nil
}

// Len returns the fixed number of Points in the forest.
func (d *DSU) Len() uint32 { return d.n }

// TotalEdges returns n(n-1)/2 — the number of vertex pairs overall.
func (d *DSU) TotalEdges() uint64 { return d.totalEdges }

// InternalEdges returns the number of vertex pairs already rendered "same
// component" by the merges performed so far.
func (d *DSU) InternalEdges() uint64 { return d.internalEdges }

// FreeEdges returns the number of vertex pairs still spanning two distinct
// components — the candidates for the next tree edge.
func (d *DSU) FreeEdges() uint64 { return d.totalEdges - d.internalEdges }

// Root returns u's component root, applying path splitting along the way.
func (d *DSU) Root(u Point) Point {
	r, _ := d.RootSize(u)

	return r
}

// Size returns the cardinality of u's component (one root lookup).
func (d *DSU) Size(u Point) uint32 {
	_, size := d.RootSize(u)

	return size
}

// RootSize resolves u's root and its component size in a single walk.
// Side effect: path splitting — every visited vertex is relinked to its
// grandparent before the walk steps to its parent, so repeated queries keep
// flattening the chain without a second pass.
func (d *DSU) RootSize(u Point) (Point, uint32) {
	for {
		s := d.slots[u]
		if s&rootTag != 0 {
			// u is a root; the low bits are the size.
			return u, s &^ rootTag
		}

		parent := Point(s)
		ps := d.slots[parent]
		if ps&rootTag != 0 {
			// The parent is the root; nothing above it to relink to.
			return parent, ps &^ rootTag
		}

		// Path splitting: u now points at its grandparent, but the walk
		// still visits the old parent next.
		d.slots[u] = ps
		u = parent
	}
}

// SameSet reports whether u and v currently share a component.
// Not a substitute for Unite's return value in a merge loop: call Unite and
// branch on its boolean instead of pairing SameSet with a later Unite.
func (d *DSU) SameSet(u, v Point) bool {
	return d.Root(u) == d.Root(v)
}

// Unite merges the components of u and v and reports whether a merge
// happened; uniting two Points of the same component is a no-op returning
// false and leaves the edge counters untouched.
//
// Algorithm (Rem's variant): walk both parent chains in lockstep, always
// operating on the side whose parent is numerically smaller so that roots
// collect toward the high end of the index range. Every step relinks the
// current vertex toward the other side's parent, so compression happens
// inside the union itself. When the walk reaches a root, that root is linked
// under the other side's chain, the surviving root's size is credited, and
// the product of the two component sizes is added to InternalEdges.
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Unite(u, v Point) bool {
	for d.parent(u) != d.parent(v) {
		// Keep u the side with the smaller parent pointer.
		if d.parent(u) > d.parent(v) {
			u, v = v, u
		}

		s := d.slots[u]
		if s&rootTag != 0 {
			// u is a root: hook it under v's parent, then credit the
			// surviving root with u's size.
			joining := s &^ rootTag
			d.slots[u] = uint32(d.parent(v))

			root, size := d.RootSize(v)
			d.slots[root] = rootTag | (size + joining)

			// Exactly joining·size vertex pairs became internal.
			d.internalEdges += uint64(joining) * uint64(size)

			return true
		}

		// Interleaved compression: point u at v's parent and climb.
		next := Point(s)
		d.slots[u] = uint32(d.parent(v))
		u = next
	}

	// Parents met: u and v were already in the same component.
	return false
}

// parent returns u's parent, or u itself when u is a root.
func (d *DSU) parent(u Point) Point {
	s := d.slots[u]
	if s&rootTag != 0 {
		return u
	}

	return Point(s)
}
