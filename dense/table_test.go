// Package dense_test contains unit tests for the Table container:
// construction variants, round-trips through the indexer, and the
// FromSlice length contract.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/dense"
	"github.com/katalvlaran/densekit/indexer"
)

// TestTable_NewZeroFilled verifies that NewTable fills every slot with the
// zero value of V.
func TestTable_NewZeroFilled(t *testing.T) {
	ci := indexer.NewCoordIndexer(4, 3)
	tbl := dense.NewTable[indexer.Coord, int](ci)

	require.Len(t, tbl.Values(), ci.Len())
	for _, c := range indexer.Keys[indexer.Coord](ci) {
		assert.Zero(t, tbl.At(c))
	}
}

// TestTable_NewTableFilled verifies that every slot receives the default.
func TestTable_NewTableFilled(t *testing.T) {
	tbl := dense.NewTableFilled[int](-1, indexer.NewRange(5))

	for i := 0; i < 5; i++ {
		assert.Equal(t, -1, tbl.At(i))
	}
}

// TestTable_FromSlice_LengthContract verifies that FromSlice fails exactly
// when len(data) != Indexer.Len(), and round-trips values otherwise.
func TestTable_FromSlice_LengthContract(t *testing.T) {
	ci := indexer.NewCoordIndexer(2, 2)

	_, err := dense.FromSlice[indexer.Coord]([]string{"a", "b", "c"}, ci)
	require.ErrorIs(t, err, dense.ErrLengthMismatch, "short slice must be rejected")

	_, err = dense.FromSlice[indexer.Coord](make([]string, 5), ci)
	require.ErrorIs(t, err, dense.ErrLengthMismatch, "long slice must be rejected")

	data := []string{"a", "b", "c", "d"}
	tbl, err := dense.FromSlice[indexer.Coord](data, ci)
	require.NoError(t, err)
	for _, c := range indexer.Keys[indexer.Coord](ci) {
		assert.Equal(t, data[ci.IndexOf(c)], tbl.At(c), "At must read data[IndexOf(key)]")
	}
}

// TestTable_PutReturnsPrevious verifies the swap semantics of Put.
func TestTable_PutReturnsPrevious(t *testing.T) {
	tbl := dense.NewTable[int, string](indexer.NewRange(3))

	assert.Equal(t, "", tbl.Put(1, "first"))
	assert.Equal(t, "first", tbl.Put(1, "second"))
	assert.Equal(t, "second", tbl.At(1))
}

// TestTable_RefMutatesInPlace verifies in-place mutation through Ref.
func TestTable_RefMutatesInPlace(t *testing.T) {
	ci := indexer.NewCoordIndexer(2, 2)
	tbl := dense.NewTable[indexer.Coord, int](ci)

	*tbl.Ref(indexer.C(1, 1)) = 42
	assert.Equal(t, 42, tbl.At(indexer.C(1, 1)))

	*tbl.Ref(indexer.C(1, 1)) += 8
	assert.Equal(t, 50, tbl.At(indexer.C(1, 1)))
}

// TestTable_ValuesAliasStorage verifies that Values exposes slots in index
// order and aliases the backing array.
func TestTable_ValuesAliasStorage(t *testing.T) {
	tbl := dense.NewTable[int, int](indexer.NewRange(4))
	tbl.Put(2, 7)

	vals := tbl.Values()
	require.Equal(t, []int{0, 0, 7, 0}, vals)

	vals[0] = 9
	assert.Equal(t, 9, tbl.At(0), "Values must alias the table storage")
}

// TestTable_Keys verifies enumeration through a KeyIndexer and its absence
// for a plain Indexer.
func TestTable_Keys(t *testing.T) {
	tbl := dense.NewTable[indexer.Coord, int](indexer.NewCoordIndexer(2, 1))
	keys, ok := tbl.Keys()
	require.True(t, ok)
	assert.Equal(t, []indexer.Coord{indexer.C(0, 0), indexer.C(1, 0)}, keys)

	plain := dense.NewTable[indexer.Pair[int, int], int](
		indexer.NewPairIndexer[int, int](indexer.NewRange(2), indexer.NewRange(2)),
	)
	_, ok = plain.Keys()
	assert.False(t, ok, "PairIndexer does not enumerate")
}

// TestTable_OutOfDomainFailsFast verifies the documented fail-fast bounds
// behavior for keys outside the declared domain.
func TestTable_OutOfDomainFailsFast(t *testing.T) {
	tbl := dense.NewTable[int, int](indexer.NewRange(3))

	assert.Panics(t, func() { tbl.At(3) })
	assert.Panics(t, func() { tbl.At(-1) })
}

// TestTable_NilIndexerPanics verifies the constructor contract.
func TestTable_NilIndexerPanics(t *testing.T) {
	assert.PanicsWithValue(t, dense.ErrNilIndexer, func() {
		dense.NewTable[int, int](nil)
	})
}
