// Package indexer defines the Indexer and KeyIndexer contracts plus
// ready-made indexers for common key domains (integer ranges, grid
// coordinates, directed coordinates, composite pairs).
package indexer

// Indexer maps keys of some domain K onto dense integer slots.
//
// Contract (caller-facing, not runtime-enforced):
//
//   - Len is stable for the lifetime of any structure built on the Indexer.
//   - IndexOf is pure and deterministic; containers call it on every access.
//   - For every key in the declared domain, 0 <= IndexOf(key) < Len().
//   - Distinct declared keys map to distinct indices: the Indexer describes
//     a subset of K of exactly Len() elements, bijective with 0..Len().
//
// Passing a key outside the declared domain is a contract violation;
// containers backed by the Indexer fail fast on the resulting bounds check.
type Indexer[K any] interface {
	// Len returns the total number of dense slots, i.e. the size of the
	// declared key domain.
	Len() int

	// IndexOf returns the dense slot of key, guaranteed in [0, Len())
	// for every key in the declared domain.
	IndexOf(key K) int
}

// KeyIndexer extends Indexer with the inverse mapping, enabling
// enumeration of the key domain.
type KeyIndexer[K any] interface {
	Indexer[K]

	// KeyAt returns the key whose dense slot is i, for 0 <= i < Len().
	// It is the inverse of IndexOf.
	KeyAt(i int) K
}

// Keys enumerates the declared domain of ki by mapping each slot
// 0..Len() through KeyAt, in slot order.
func Keys[K any](ki KeyIndexer[K]) []K {
	keys := make([]K, ki.Len())
	for i := range keys {
		keys[i] = ki.KeyAt(i)
	}

	return keys
}

// Range is the identity Indexer over the integers 0..N.
type Range struct {
	// N is the exclusive upper bound of the domain.
	N int
}

// NewRange returns a Range over 0..n.
func NewRange(n int) Range { return Range{N: n} }

// Len returns n.
func (r Range) Len() int { return r.N }

// IndexOf returns the key itself.
func (r Range) IndexOf(key int) int { return key }

// KeyAt returns the slot itself.
func (r Range) KeyAt(i int) int { return i }
