// Package densekit is a toolkit for dense-index data structures and
// best-first search — the in-memory machinery behind state-space solvers.
//
// 🚀 What is densekit?
//
//	A small, focused library that brings together:
//		• Indexers: strategies mapping arbitrary keys (coordinates, enums,
//		  tuples) onto compact 0..n slots
//		• Dense containers: Table, Map and Set backed by flat arrays instead
//		  of hash maps
//		• Bit sets: one generic implementation over any unsigned width,
//		  plus a roaring-backed sparse variant
//		• Best-first search: a generic A* engine with pluggable open sets
//		  (binary heap, bucket queue)
//		• Dominance trie: keeps only Pareto-maximal (subset, value) pairs
//		  under subset dominance — a branch-and-bound memo structure
//
// ✨ Why choose densekit?
//
//   - Predictable layout – every container is a flat slice addressed through
//     an injected Indexer; no hashing, no rehash pauses
//   - Explicit contracts – preconditions are documented and fail fast;
//     absence ("no path", "not present") is a value, never an error
//   - Generic, not reflective – type parameters end-to-end, zero interface
//     boxing on the hot paths
//
// Everything is organized under five subpackages:
//
//	indexer/ — Indexer/KeyIndexer contracts, grid & composite indexers
//	dense/   — Table, Map (with Entry handles) and Set containers
//	bitset/  — word-sized generic bit sets + sparse roaring sets
//	search/  — A* solver, open-set implementations, bidirectional extension
//	maxtrie/ — subset-dominance trie with InsertIfMax
//
// Quick ASCII example:
//
//	    (0,0)──(1,0)
//	      │      │
//	    (0,1)──(1,1)
//
//	a 2×2 grid whose coordinates a CoordIndexer maps to slots 0..3,
//	giving Table/Map/Set array-speed access keyed by Coord.
//
// Dive into the package docs for complexity notes, contracts and examples.
//
//	go get github.com/katalvlaran/densekit
package densekit
