// Package dense_test: Map and Entry behavior, including the round-trip
// properties insert/get/remove and the guarded absent-entry access.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/dense"
	"github.com/katalvlaran/densekit/indexer"
)

// TestMap_RoundTrip verifies insert/get/remove round-trips and the O(n)
// Len scan over present slots.
func TestMap_RoundTrip(t *testing.T) {
	ci := indexer.NewCoordIndexer(3, 3)
	m := dense.NewMap[indexer.Coord, string](ci)

	assert.True(t, m.Empty())
	assert.Zero(t, m.Len())

	_, had := m.Put(indexer.C(1, 2), "a")
	assert.False(t, had, "first insert has no prior value")

	got, ok := m.Get(indexer.C(1, 2))
	require.True(t, ok)
	assert.Equal(t, "a", got)
	assert.Equal(t, 1, m.Len())

	prev, had := m.Put(indexer.C(1, 2), "b")
	assert.True(t, had)
	assert.Equal(t, "a", prev)
	assert.Equal(t, 1, m.Len(), "overwrite must not change Len")

	removed, ok := m.Delete(indexer.C(1, 2))
	require.True(t, ok)
	assert.Equal(t, "b", removed)

	_, ok = m.Get(indexer.C(1, 2))
	assert.False(t, ok, "removed key must read as absent")
	assert.True(t, m.Empty())

	_, ok = m.Delete(indexer.C(1, 2))
	assert.False(t, ok, "double delete reports absence")
}

// TestMap_ZeroValuePresence verifies that a stored zero value is distinct
// from absence.
func TestMap_ZeroValuePresence(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(4))

	m.Put(2, 0)
	got, ok := m.Get(2)
	require.True(t, ok, "stored zero value must be present")
	assert.Zero(t, got)
	assert.Equal(t, 1, m.Len())
}

// TestMap_LenCountsPresent verifies Len equals the number of present keys.
func TestMap_LenCountsPresent(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(10))
	for _, k := range []int{0, 3, 7, 9} {
		m.Put(k, k*k)
	}
	assert.Equal(t, 4, m.Len())

	m.Delete(3)
	m.Delete(4) // absent, no effect
	assert.Equal(t, 3, m.Len())
}

// TestMap_RefMutation verifies in-place mutation through Ref and its
// absence signalling.
func TestMap_RefMutation(t *testing.T) {
	m := dense.NewMap[int, []int](indexer.NewRange(2))

	_, ok := m.Ref(0)
	assert.False(t, ok)

	m.Put(0, []int{1})
	ref, ok := m.Ref(0)
	require.True(t, ok)
	*ref = append(*ref, 2)

	got, _ := m.Get(0)
	assert.Equal(t, []int{1, 2}, got)
}

// TestEntry_OrInsert verifies insert-if-absent plus mutable access either
// way, without a second lookup.
func TestEntry_OrInsert(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(3))

	ref := m.Entry(1).OrInsert(10)
	assert.Equal(t, 10, *ref)
	*ref = 11

	// Present slot: OrInsert must not overwrite.
	ref = m.Entry(1).OrInsert(99)
	assert.Equal(t, 11, *ref)
}

// TestEntry_OrInsertWith verifies the thunk runs only on absent slots.
func TestEntry_OrInsertWith(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(3))

	calls := 0
	thunk := func() int { calls++; return 7 }

	assert.Equal(t, 7, *m.Entry(2).OrInsertWith(thunk))
	assert.Equal(t, 7, *m.Entry(2).OrInsertWith(thunk))
	assert.Equal(t, 1, calls, "thunk must run exactly once")
}

// TestEntry_AndModify verifies present-only mutation and chaining.
func TestEntry_AndModify(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(3))

	// Absent: AndModify is a no-op, OrInsert seeds the slot.
	got := *m.Entry(0).AndModify(func(v *int) { *v *= 2 }).OrInsert(5)
	assert.Equal(t, 5, got)

	// Present: AndModify applies before OrInsert returns the reference.
	got = *m.Entry(0).AndModify(func(v *int) { *v *= 2 }).OrInsert(5)
	assert.Equal(t, 10, got)
}

// TestEntry_MustRefGuardsAbsence verifies the explicit guard for the
// and_modify-without-insert logic error.
func TestEntry_MustRefGuardsAbsence(t *testing.T) {
	m := dense.NewMap[int, int](indexer.NewRange(2))

	assert.Panics(t, func() {
		m.Entry(0).AndModify(func(v *int) { *v++ }).MustRef()
	}, "MustRef on an absent slot must panic")

	m.Put(0, 1)
	ref := m.Entry(0).AndModify(func(v *int) { *v++ }).MustRef()
	assert.Equal(t, 2, *ref)
}
