package indexer

// Pair is a composite key built from two sub-keys.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairIndexer composes two Indexers into an Indexer over Pair keys,
// first-major: all Second values of one First key occupy adjacent slots.
//
// Len is the product of the component lengths; both components must keep
// their usual Indexer contract for the composition to stay bijective.
type PairIndexer[A, B any] struct {
	First  Indexer[A]
	Second Indexer[B]
}

// NewPairIndexer composes first and second into a PairIndexer.
func NewPairIndexer[A, B any](first Indexer[A], second Indexer[B]) PairIndexer[A, B] {
	return PairIndexer[A, B]{First: first, Second: second}
}

// Len returns First.Len() * Second.Len().
func (pi PairIndexer[A, B]) Len() int {
	return pi.First.Len() * pi.Second.Len()
}

// IndexOf returns the slot of key.
func (pi PairIndexer[A, B]) IndexOf(key Pair[A, B]) int {
	return pi.First.IndexOf(key.First)*pi.Second.Len() + pi.Second.IndexOf(key.Second)
}

// KeyPairIndexer is a PairIndexer over two KeyIndexers, adding the
// inverse mapping.
type KeyPairIndexer[A, B any] struct {
	First  KeyIndexer[A]
	Second KeyIndexer[B]
}

// NewKeyPairIndexer composes first and second into a KeyPairIndexer.
func NewKeyPairIndexer[A, B any](first KeyIndexer[A], second KeyIndexer[B]) KeyPairIndexer[A, B] {
	return KeyPairIndexer[A, B]{First: first, Second: second}
}

// Len returns First.Len() * Second.Len().
func (pi KeyPairIndexer[A, B]) Len() int {
	return pi.First.Len() * pi.Second.Len()
}

// IndexOf returns the slot of key.
func (pi KeyPairIndexer[A, B]) IndexOf(key Pair[A, B]) int {
	return pi.First.IndexOf(key.First)*pi.Second.Len() + pi.Second.IndexOf(key.Second)
}

// KeyAt returns the Pair stored at slot i.
func (pi KeyPairIndexer[A, B]) KeyAt(i int) Pair[A, B] {
	n := pi.Second.Len()

	return Pair[A, B]{
		First:  pi.First.KeyAt(i / n),
		Second: pi.Second.KeyAt(i % n),
	}
}
