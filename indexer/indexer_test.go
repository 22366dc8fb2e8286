// Package indexer_test validates the Indexer contract (dense, in-bounds,
// bijective) for every ready-made indexer, plus coordinate stepping.
package indexer_test

import (
	"testing"

	"github.com/katalvlaran/densekit/indexer"
)

// checkBijection verifies the core Indexer contract over an enumerable
// domain: every key lands in [0, Len()), no two keys share a slot, and
// KeyAt inverts IndexOf.
func checkBijection[K comparable](t *testing.T, ki indexer.KeyIndexer[K]) {
	t.Helper()

	n := ki.Len()
	seen := make(map[int]K, n)
	for _, key := range indexer.Keys(ki) {
		i := ki.IndexOf(key)
		if i < 0 || i >= n {
			t.Fatalf("IndexOf(%v) = %d, out of range [0,%d)", key, i, n)
		}
		if prev, dup := seen[i]; dup {
			t.Fatalf("keys %v and %v both map to slot %d", prev, key, i)
		}
		seen[i] = key
		if got := ki.KeyAt(i); got != key {
			t.Fatalf("KeyAt(IndexOf(%v)) = %v, want identity", key, got)
		}
	}
	if len(seen) != n {
		t.Fatalf("enumerated %d distinct slots, want %d", len(seen), n)
	}
}

func TestRange_Bijection(t *testing.T) {
	checkBijection[int](t, indexer.NewRange(17))
}

func TestCoordIndexer_Bijection(t *testing.T) {
	checkBijection[indexer.Coord](t, indexer.NewCoordIndexer(7, 5))
}

func TestDirectedCoordIndexer_Bijection(t *testing.T) {
	checkBijection[indexer.DirectedCoord](t, indexer.NewDirectedCoordIndexer(4, 3))
}

func TestKeyPairIndexer_Bijection(t *testing.T) {
	pi := indexer.NewKeyPairIndexer[int, indexer.Coord](
		indexer.NewRange(3),
		indexer.NewCoordIndexer(2, 4),
	)
	checkBijection[indexer.Pair[int, indexer.Coord]](t, pi)
}

func TestCoordIndexer_RowMajorOrder(t *testing.T) {
	ci := indexer.NewCoordIndexer(3, 2)

	// Row-major: (0,0) (1,0) (2,0) (0,1) (1,1) (2,1).
	want := []indexer.Coord{
		indexer.C(0, 0), indexer.C(1, 0), indexer.C(2, 0),
		indexer.C(0, 1), indexer.C(1, 1), indexer.C(2, 1),
	}
	got := indexer.Keys[indexer.Coord](ci)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoordIndexer_Step(t *testing.T) {
	ci := indexer.NewCoordIndexer(3, 3)

	// Inner cell steps in all four directions.
	mid := indexer.C(1, 1)
	type step struct {
		dir  indexer.Direction
		want indexer.Coord
	}
	for _, s := range []step{
		{indexer.Up, indexer.C(1, 0)},
		{indexer.Right, indexer.C(2, 1)},
		{indexer.Down, indexer.C(1, 2)},
		{indexer.Left, indexer.C(0, 1)},
	} {
		got, ok := ci.Step(mid, s.dir)
		if !ok || got != s.want {
			t.Errorf("Step(%v, %v) = %v,%v; want %v,true", mid, s.dir, got, ok, s.want)
		}
	}

	// Corner cell cannot leave the grid.
	if _, ok := ci.Step(indexer.C(0, 0), indexer.Up); ok {
		t.Error("Step up from (0,0) should be out of bounds")
	}
	if _, ok := ci.Step(indexer.C(2, 2), indexer.Right); ok {
		t.Error("Step right from (2,2) should be out of bounds")
	}
}

func TestDirection_Opposite(t *testing.T) {
	pairs := map[indexer.Direction]indexer.Direction{
		indexer.Up:    indexer.Down,
		indexer.Right: indexer.Left,
		indexer.Down:  indexer.Up,
		indexer.Left:  indexer.Right,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestCoordIndexer_Contains(t *testing.T) {
	ci := indexer.NewCoordIndexer(2, 2)
	if !ci.Contains(indexer.C(1, 1)) {
		t.Error("Contains(1,1) = false, want true")
	}
	for _, c := range []indexer.Coord{
		indexer.C(-1, 0), indexer.C(0, -1), indexer.C(2, 0), indexer.C(0, 2),
	} {
		if ci.Contains(c) {
			t.Errorf("Contains(%v) = true, want false", c)
		}
	}
}
