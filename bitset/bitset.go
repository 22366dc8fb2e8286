// Package bitset implements machine-word bit sets as a single generic
// implementation over any fixed-width unsigned integer type, plus a
// roaring-backed Sparse set for universes beyond one word.
package bitset

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Containment classifies the relationship between two sets.
type Containment int

const (
	// Equal means the sets hold exactly the same members.
	Equal Containment = iota
	// Subset means the first set is a proper subset of the second.
	Subset
	// Superset means the first set is a proper superset of the second.
	Superset
	// Incomparable means neither set contains the other.
	Incomparable
)

// String returns the name of the containment class.
func (c Containment) String() string {
	switch c {
	case Equal:
		return "Equal"
	case Subset:
		return "Subset"
	case Superset:
		return "Superset"
	default:
		return "Incomparable"
	}
}

// All functions below treat an unsigned integer value as a set of the bit
// positions 0..width. Sets are values: operations return the updated set
// instead of mutating in place. Bit positions at or beyond the width of T
// are a caller contract violation (the shift silently wraps or zeroes,
// per Go shift semantics).

// Add returns s with bit i set.
func Add[T constraints.Unsigned](s T, i uint) T {
	return s | 1<<i
}

// Remove returns s with bit i cleared.
func Remove[T constraints.Unsigned](s T, i uint) T {
	return s &^ (1 << i)
}

// Has reports whether bit i is set in s.
func Has[T constraints.Unsigned](s T, i uint) bool {
	return s&(1<<i) != 0
}

// Fill returns the set with every bit of T set.
func Fill[T constraints.Unsigned]() T {
	return ^T(0)
}

// Card returns the number of members (set bits) of s.
func Card[T constraints.Unsigned](s T) int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether s has no members.
func Empty[T constraints.Unsigned](s T) bool {
	return s == 0
}

// Diff returns the members of a that are not in b.
func Diff[T constraints.Unsigned](a, b T) T {
	return a &^ b
}

// SymDiff returns the members in exactly one of a and b.
func SymDiff[T constraints.Unsigned](a, b T) T {
	return a ^ b
}

// Inter returns the members common to a and b.
func Inter[T constraints.Unsigned](a, b T) T {
	return a & b
}

// Union returns the members of a or b.
func Union[T constraints.Unsigned](a, b T) T {
	return a | b
}

// Disjoint reports whether a and b share no members.
func Disjoint[T constraints.Unsigned](a, b T) bool {
	return a&b == 0
}

// SubsetOf reports whether every member of a is in b.
func SubsetOf[T constraints.Unsigned](a, b T) bool {
	return a&b == a
}

// SupersetOf reports whether every member of b is in a.
func SupersetOf[T constraints.Unsigned](a, b T) bool {
	return a&b == b
}

// Compare classifies the containment of a relative to b.
func Compare[T constraints.Unsigned](a, b T) Containment {
	switch {
	case a == b:
		return Equal
	case SubsetOf(a, b):
		return Subset
	case SupersetOf(a, b):
		return Superset
	default:
		return Incomparable
	}
}

// PopSmallest returns the smallest member of s, the set without it, and
// true; or zeros and false when s is empty.
func PopSmallest[T constraints.Unsigned](s T) (uint, T, bool) {
	if s == 0 {
		return 0, 0, false
	}
	i := uint(bits.TrailingZeros64(uint64(s)))

	return i, s &^ (1 << i), true
}

// Elements returns the members of s in ascending order, ready to feed
// maxtrie.Trie.InsertIfMax.
func Elements[T constraints.Unsigned](s T) []uint {
	out := make([]uint, 0, Card(s))
	for s != 0 {
		i, rest, _ := PopSmallest(s)
		out = append(out, i)
		s = rest
	}

	return out
}
