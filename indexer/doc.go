// Package indexer provides the key-to-slot mapping strategies that power
// the dense containers in github.com/katalvlaran/densekit/dense.
//
// Overview:
//
//   - An Indexer describes a finite key domain of exactly Len() elements and
//     maps each key onto a unique dense slot in 0..Len().
//   - A KeyIndexer additionally inverts the mapping (slot → key), enabling
//     enumeration of the whole domain via Keys.
//   - Containers treat the Indexer as an injected strategy: the same Table
//     code serves grid coordinates, enums and composite tuples without
//     hashing.
//
// Ready-made indexers:
//
//   - Range:                identity over 0..N.
//   - CoordIndexer:         row-major Width×Height grid coordinates, with
//     bounds-checked Step movement in the four orthogonal Directions.
//   - DirectedCoordIndexer: (Coord, Direction) states, coordinate-major.
//   - PairIndexer:          product of two Indexers for composite keys
//     (KeyPairIndexer when both components invert).
//
// Contract:
//
//   - Len must be stable for the lifetime of any structure built on the
//     Indexer; IndexOf must be pure and deterministic.
//   - IndexOf(key) < Len() for every declared key, and distinct declared
//     keys yield distinct slots. Violations are caller bugs, surfaced by
//     the bounds check of the backing container, not by this package.
//
// Complexity: every mapping here is O(1) arithmetic; Keys is O(Len).
//
// See also:
//
//   - dense.Table / dense.Map / dense.Set: containers addressed through an
//     Indexer.
//   - search.AStar: keys its best-cost table by a caller-supplied Indexer
//     over the state domain.
package indexer
