// Package bitset provides a dense bit set over non-negative integers,
// packed 64 elements per word.
//
// What & Why
//
//	One bit per element makes membership, insertion and removal O(1), and
//	turns whole-set operations (union, intersection, difference) into
//	straight word-wise AND/OR/XOR sweeps — useful anywhere a program keeps
//	"which of 0..n-1 are marked" and needs fast set algebra over it.
//
// Semantics
//
//   - New(n) sizes the set for elements 0..n-1; Insert past the current
//     capacity grows the word slice transparently.
//   - Whole-set operations come in two flavors: allocating (Union,
//     Intersect, Difference, SymmetricDifference return a fresh set, with
//     capacities reconciled) and in-place (UnionInPlace and friends modify
//     the receiver and require equal capacity — mismatches are programmer
//     errors and panic).
//   - Iter walks set elements in increasing order using trailing-zero
//     scans, skipping zero words whole; Elems collects them into a slice.
//
// Complexity: membership/insert/remove O(1); set operations O(capacity/64)
// words; iteration O(capacity/64 + |set|).
//
// The package is self-contained — nothing in the estimator depends on it.
package bitset
