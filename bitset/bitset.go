// Package bitset implements the packed bit set. See doc.go for semantics.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// wordBits is the number of elements packed into one storage word.
const wordBits = 64

// BitSet is a dense set of non-negative integers, one bit per element.
// The zero value is an empty set of capacity 0 and is ready to use.
type BitSet struct {
	words []uint64
}

// New returns an empty set sized for elements 0..n-1.
func New(n int) *BitSet {
	return &BitSet{words: make([]uint64, wordsFor(n))}
}

// Ones returns a set containing every element of 0..n-1. The last word
// carries no stray bits past n, so Len and Equal stay exact.
func Ones(n int) *BitSet {
	s := New(n)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	if rem := n % wordBits; rem != 0 && len(s.words) > 0 {
		s.words[len(s.words)-1] = ^uint64(0) >> (wordBits - rem)
	}

	return s
}

// Capacity returns the number of elements the current storage can hold.
func (s *BitSet) Capacity() int { return len(s.words) * wordBits }

// Len returns the number of elements in the set (population count).
func (s *BitSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// IsEmpty reports whether the set holds no elements. Cheaper on average
// than Len() == 0: it stops at the first non-zero word.
func (s *BitSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clear removes all elements, keeping the capacity.
func (s *BitSet) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Clone returns an independent copy of the set.
func (s *BitSet) Clone() *BitSet {
	out := &BitSet{words: make([]uint64, len(s.words))}
	copy(out.words, s.words)

	return out
}

// Contains reports whether i is in the set; out-of-capacity queries are
// simply false.
func (s *BitSet) Contains(i int) bool {
	word, mask := wordMask(i)
	if word >= len(s.words) {
		return false
	}

	return s.words[word]&mask != 0
}

// Insert adds i, growing the storage when i lies past the capacity.
// Returns true when i was newly inserted, false when already present.
func (s *BitSet) Insert(i int) bool {
	if i >= s.Capacity() {
		s.grow(i + 1)
	}
	word, mask := wordMask(i)
	old := s.words[word]
	s.words[word] = old | mask

	return old&mask == 0
}

// Remove deletes i. Returns true when i was present, false otherwise;
// out-of-capacity removals are no-ops.
func (s *BitSet) Remove(i int) bool {
	word, mask := wordMask(i)
	if word >= len(s.words) {
		return false
	}
	old := s.words[word]
	s.words[word] = old &^ mask

	return old&mask != 0
}

// InsertAll adds every element of other, growing as needed. Returns true
// when at least one new element appeared.
func (s *BitSet) InsertAll(other *BitSet) bool {
	if other.Capacity() > s.Capacity() {
		s.grow(other.Capacity())
	}
	changed := false
	for i, w := range other.words {
		old := s.words[i]
		s.words[i] = old | w
		if old|w != old {
			changed = true
		}
	}

	return changed
}

// Union returns a fresh set holding every element of s or other; the result
// takes the larger capacity.
func (s *BitSet) Union(other *BitSet) *BitSet {
	long, short := s.words, other.words
	if len(long) < len(short) {
		long, short = short, long
	}
	out := &BitSet{words: make([]uint64, len(long))}
	copy(out.words, long)
	for i, w := range short {
		out.words[i] |= w
	}

	return out
}

// Intersect returns a fresh set holding the elements present in both.
func (s *BitSet) Intersect(other *BitSet) *BitSet {
	n := min(len(s.words), len(other.words))
	out := &BitSet{words: make([]uint64, n)}
	for i := 0; i < n; i++ {
		out.words[i] = s.words[i] & other.words[i]
	}

	return out
}

// Difference returns a fresh set holding the elements of s absent from
// other.
func (s *BitSet) Difference(other *BitSet) *BitSet {
	out := &BitSet{words: make([]uint64, len(s.words))}
	for i, w := range s.words {
		if i < len(other.words) {
			w &^= other.words[i]
		}
		out.words[i] = w
	}

	return out
}

// SymmetricDifference returns a fresh set holding the elements in exactly
// one of the two sets; the result takes the larger capacity.
func (s *BitSet) SymmetricDifference(other *BitSet) *BitSet {
	long, short := s.words, other.words
	if len(long) < len(short) {
		long, short = short, long
	}
	out := &BitSet{words: make([]uint64, len(long))}
	copy(out.words, long)
	for i, w := range short {
		out.words[i] ^= w
	}

	return out
}

// UnionInPlace folds other into s without allocating.
// Panics when capacities differ.
func (s *BitSet) UnionInPlace(other *BitSet) *BitSet {
	s.checkCapacity("UnionInPlace", other)
	for i, w := range other.words {
		s.words[i] |= w
	}

	return s
}

// IntersectInPlace keeps only elements shared with other, without
// allocating. Panics when capacities differ.
func (s *BitSet) IntersectInPlace(other *BitSet) *BitSet {
	s.checkCapacity("IntersectInPlace", other)
	for i, w := range other.words {
		s.words[i] &= w
	}

	return s
}

// DifferenceInPlace drops every element of other from s, without
// allocating. Panics when capacities differ.
func (s *BitSet) DifferenceInPlace(other *BitSet) *BitSet {
	s.checkCapacity("DifferenceInPlace", other)
	for i, w := range other.words {
		s.words[i] &^= w
	}

	return s
}

// SymmetricDifferenceInPlace flips s to the symmetric difference with
// other, without allocating. Panics when capacities differ.
func (s *BitSet) SymmetricDifferenceInPlace(other *BitSet) *BitSet {
	s.checkCapacity("SymmetricDifferenceInPlace", other)
	for i, w := range other.words {
		s.words[i] ^= w
	}

	return s
}

// Filter removes, in place, every element for which keep returns false.
func (s *BitSet) Filter(keep func(int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			w &= w - 1 // clear lowest set bit
			elem := wi*wordBits + bit
			if !keep(elem) {
				s.words[wi] &^= 1 << uint(bit)
			}
		}
	}
}

// Equal reports whether the two sets hold exactly the same elements,
// capacity differences aside.
func (s *BitSet) Equal(other *BitSet) bool {
	long, short := s.words, other.words
	if len(long) < len(short) {
		long, short = short, long
	}
	for i, w := range long {
		var o uint64
		if i < len(short) {
			o = short[i]
		}
		if w != o {
			return false
		}
	}

	return true
}

// EqLeft reports whether the two sets agree on every element below n,
// i.e. s ∩ {0..n-1} == other ∩ {0..n-1}.
func (s *BitSet) EqLeft(other *BitSet, n int) bool {
	if n <= 0 {
		return true
	}
	full := (n - 1) / wordBits
	for i := 0; i < full; i++ {
		if s.word(i) != other.word(i) {
			return false
		}
	}
	// The last word counts only its low n%64 bits (all 64 when aligned).
	mask := ^uint64(0)
	if rem := n % wordBits; rem != 0 {
		mask >>= wordBits - rem
	}

	return s.word(full)&mask == other.word(full)&mask
}

// Elems returns the elements in increasing order.
func (s *BitSet) Elems() []int {
	out := make([]int, 0, s.Len())
	it := s.Iter()
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		out = append(out, elem)
	}

	return out
}

// String renders the set as its element list, e.g. "{1, 5, 9}".
func (s *BitSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, elem := range s.Elems() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", elem)
	}
	b.WriteByte('}')

	return b.String()
}

// Iter returns an iterator over the elements in increasing order. Mutating
// the set mid-iteration is unsupported.
func (s *BitSet) Iter() Iter {
	return Iter{set: s}
}

// Iter walks a BitSet word by word, emitting one element per Next call via
// trailing-zero scans; zero words are skipped whole.
type Iter struct {
	set     *BitSet
	wordIdx int
	current uint64
}

// Next returns the next element and true, or (0, false) once exhausted.
func (it *Iter) Next() (int, bool) {
	for it.current == 0 {
		if it.wordIdx >= len(it.set.words) {
			return 0, false
		}
		it.current = it.set.words[it.wordIdx]
		it.wordIdx++
	}
	bit := bits.TrailingZeros64(it.current)
	it.current &= it.current - 1 // clear lowest set bit

	return (it.wordIdx-1)*wordBits + bit, true
}

// word returns the i-th storage word, zero past the capacity.
func (s *BitSet) word(i int) uint64 {
	if i >= len(s.words) {
		return 0
	}

	return s.words[i]
}

// grow ensures capacity for elements 0..n-1.
func (s *BitSet) grow(n int) {
	need := wordsFor(n)
	if len(s.words) < need {
		s.words = append(s.words, make([]uint64, need-len(s.words))...)
	}
}

// checkCapacity guards the in-place operations: they are word-parallel
// sweeps and only make sense over equal storage.
func (s *BitSet) checkCapacity(op string, other *BitSet) {
	if len(s.words) != len(other.words) {
		panic(fmt.Sprintf("bitset: %s: capacity mismatch (%d vs %d)", op, s.Capacity(), other.Capacity()))
	}
}

// wordsFor returns the number of words needed for elements 0..n-1.
func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// wordMask splits an element into its word index and bit mask.
func wordMask(i int) (int, uint64) {
	return i / wordBits, 1 << uint(i%wordBits)
}
