package dense

import (
	"github.com/katalvlaran/densekit/indexer"
)

// Table is a fixed-length dense array of V addressed through an
// indexer.Indexer over K. It owns exactly Indexer.Len() slots from
// construction to destruction; there is no resizing, because the
// Indexer's domain is fixed for the table's lifetime.
//
// Access cost is one IndexOf call plus one slice access. Keys outside the
// Indexer's declared domain violate the Indexer contract and fail fast on
// the slice bounds check.
type Table[K, V any] struct {
	data []V
	ix   indexer.Indexer[K]
}

// NewTable creates a Table with every slot set to the zero value of V.
// Panics with ErrNilIndexer if ix is nil.
func NewTable[K, V any](ix indexer.Indexer[K]) *Table[K, V] {
	if ix == nil {
		panic(ErrNilIndexer)
	}

	return &Table[K, V]{
		data: make([]V, ix.Len()),
		ix:   ix,
	}
}

// NewTableFilled creates a Table with every slot set to def.
// Panics with ErrNilIndexer if ix is nil.
func NewTableFilled[K, V any](def V, ix indexer.Indexer[K]) *Table[K, V] {
	if ix == nil {
		panic(ErrNilIndexer)
	}

	data := make([]V, ix.Len())
	for i := range data {
		data[i] = def
	}

	return &Table[K, V]{data: data, ix: ix}
}

// FromSlice creates a Table over pre-built backing data, taking ownership
// of the slice. Returns ErrLengthMismatch when len(data) != ix.Len().
// Panics with ErrNilIndexer if ix is nil.
func FromSlice[K, V any](data []V, ix indexer.Indexer[K]) (*Table[K, V], error) {
	if ix == nil {
		panic(ErrNilIndexer)
	}
	if len(data) != ix.Len() {
		return nil, ErrLengthMismatch
	}

	return &Table[K, V]{data: data, ix: ix}, nil
}

// At returns the value stored at key.
func (t *Table[K, V]) At(key K) V {
	return t.data[t.ix.IndexOf(key)]
}

// Ref returns a pointer to the slot of key, for in-place mutation.
func (t *Table[K, V]) Ref(key K) *V {
	return &t.data[t.ix.IndexOf(key)]
}

// Put stores value at key and returns the previous value.
func (t *Table[K, V]) Put(key K, value V) V {
	slot := t.Ref(key)
	prev := *slot
	*slot = value

	return prev
}

// Values returns the backing array in slot order (not key order, though
// for most indexers the two coincide). The slice aliases the table's
// storage; mutations through it are visible to the table.
func (t *Table[K, V]) Values() []V {
	return t.data
}

// Indexer returns the injected indexing strategy.
func (t *Table[K, V]) Indexer() indexer.Indexer[K] {
	return t.ix
}

// Keys returns the key domain in slot order when the table was built over
// a KeyIndexer; ok reports whether the indexer supports enumeration.
func (t *Table[K, V]) Keys() (keys []K, ok bool) {
	ki, ok := t.ix.(indexer.KeyIndexer[K])
	if !ok {
		return nil, false
	}

	return indexer.Keys(ki), true
}
