package dense

import (
	"fmt"

	"github.com/katalvlaran/densekit/indexer"
)

// slot is an optional value: present distinguishes "stored zero value"
// from "absent".
type slot[V any] struct {
	value   V
	present bool
}

// Map is a dense map from K to V: a Table of optional slots. Lookups,
// inserts and deletes are one IndexOf call plus one array access; Len is
// an O(n) presence scan (no cached counter).
type Map[K, V any] struct {
	table *Table[K, slot[V]]
}

// NewMap creates an empty Map over the domain declared by ix.
// Panics with ErrNilIndexer if ix is nil.
func NewMap[K, V any](ix indexer.Indexer[K]) *Map[K, V] {
	return &Map[K, V]{table: NewTable[K, slot[V]](ix)}
}

// Get returns the value stored at key and whether one is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.table.At(key)

	return s.value, s.present
}

// Ref returns a pointer to the value stored at key for in-place mutation,
// or nil and false when the key is absent.
func (m *Map[K, V]) Ref(key K) (*V, bool) {
	s := m.table.Ref(key)
	if !s.present {
		return nil, false
	}

	return &s.value, true
}

// Put stores value at key and returns the previously stored value, if any.
func (m *Map[K, V]) Put(key K, value V) (prev V, had bool) {
	s := m.table.Ref(key)
	prev, had = s.value, s.present
	s.value, s.present = value, true

	return prev, had
}

// Delete removes and returns the value stored at key, if any.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	s := m.table.Ref(key)
	if !s.present {
		var zero V

		return zero, false
	}

	prev := s.value
	*s = slot[V]{}

	return prev, true
}

// Len returns the number of present entries. O(n) over the slot count.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.table.data {
		if m.table.data[i].present {
			n++
		}
	}

	return n
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	for i := range m.table.data {
		if m.table.data[i].present {
			return false
		}
	}

	return true
}

// Indexer returns the injected indexing strategy.
func (m *Map[K, V]) Indexer() indexer.Indexer[K] {
	return m.table.Indexer()
}

// Entry returns a handle over the slot of key, allowing scoped mutation
// without a second lookup.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{s: m.table.Ref(key)}
}

// Entry is a handle over a single Map slot. The zero Entry is invalid;
// obtain one via Map.Entry. An Entry must not outlive mutations of the
// map through other handles to the same slot.
type Entry[K, V any] struct {
	s *slot[V]
}

// Present reports whether the slot currently holds a value.
func (e Entry[K, V]) Present() bool {
	return e.s.present
}

// OrInsert stores value when the slot is absent, then returns a pointer
// to the (possibly pre-existing) stored value.
func (e Entry[K, V]) OrInsert(value V) *V {
	if !e.s.present {
		e.s.value, e.s.present = value, true
	}

	return &e.s.value
}

// OrInsertWith is the lazy variant of OrInsert: f runs only when the slot
// is absent.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if !e.s.present {
		e.s.value, e.s.present = f(), true
	}

	return &e.s.value
}

// AndModify applies f to the stored value only when one is present, and
// returns the entry for chaining (typically with OrInsert).
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.s.present {
		f(&e.s.value)
	}

	return e
}

// MustRef returns a pointer to the stored value, panicking when the slot
// is absent. Chaining AndModify into MustRef without a prior insert is a
// logic error; the panic surfaces it immediately instead of handing out a
// stale pointer.
func (e Entry[K, V]) MustRef() *V {
	if !e.s.present {
		panic(fmt.Errorf("dense: MustRef on absent entry"))
	}

	return &e.s.value
}

// Ref returns a pointer to the stored value and whether one is present.
func (e Entry[K, V]) Ref() (*V, bool) {
	if !e.s.present {
		return nil, false
	}

	return &e.s.value, true
}
