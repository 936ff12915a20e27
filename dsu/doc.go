// Package dsu provides a disjoint-set (union-find) forest over integer
// vertices that additionally tracks, per component, its cardinality and,
// globally, how many vertex pairs the merges performed so far have rendered
// "same component".
//
// What & Why
//
//   - What is a sized disjoint set?
//     A forest of parent pointers over vertices 0..n-1 in which every
//     connected component has exactly one root, and every root carries the
//     number of vertices in its component. Unite merges two components;
//     Root/Size/SameSet answer queries in amortized near-constant time.
//
//   - Why the edge counters?
//     Kruskal-style edge sampling over a complete graph needs to know, after
//     every merge, how many of the N(N-1)/2 vertex pairs are still "free"
//     (candidates for the next tree edge). Merging components of sizes a and
//     b internalizes exactly a·b pairs, so the package maintains
//     InternalEdges incrementally and derives FreeEdges by subtraction —
//     exact integers, never recomputed from scratch.
//
// Algorithm
//
//   - Unite uses Rem's variant: both parent chains are walked in lockstep,
//     always relinking the side whose parent is numerically smaller toward the
//     larger one, until one side reaches a root. Path compression is thus
//     interleaved with the union itself — there is no separate root-finding
//     pass, and roots accumulate toward the high end of the index range.
//
//   - Root/RootSize apply path splitting on the way up: every visited vertex
//     is relinked to its grandparent before stepping to its parent. Cheaper
//     per step than full compression, still amortized near-constant.
//
// Representation
//
//	Each vertex owns one uint32 slot. The high bit distinguishes the two
//	cases: set — the vertex is a root and the low 31 bits hold the component
//	size; clear — the slot is the parent Point. One array, one cache line
//	per probe. The tag bit caps n at MaxPoints (2³¹−1); New rejects anything
//	larger.
//
// Error Conditions
//
//   - ErrTooFewPoints  : New(n) with n < MinPoints (2); no edge can exist.
//   - ErrTooManyPoints : New(n) with n > MaxPoints; index would collide with
//     the root tag bit.
//
// Complexity
//
//	Unite / Root / Size / SameSet: O(α(n)) amortized. Memory: 4 bytes per
//	vertex plus two counters.
//
// SameSet is a read-side convenience; in a sampling hot path where the pair
// is about to be united anyway, derive "same component" from Unite's boolean
// result instead of calling SameSet first.
package dsu
