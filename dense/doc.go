// Package dense provides array-backed Table, Map and Set containers
// addressed through an injected indexer.Indexer instead of a hash
// function.
//
// Overview:
//
//   - Table is a fixed-length flat array of exactly Indexer.Len() values;
//     every access computes IndexOf(key) and touches one slot.
//   - Map layers optionality on Table: a slot is absent or holds a value,
//     giving insert/remove/lookup plus an Entry handle for scoped mutation
//     without double lookups.
//   - Set layers membership on Map with empty-struct values.
//
// When to use:
//
//   - State spaces enumerable up front (grid cells, enum tuples, small
//     composite keys), where hashing overhead and cache misses of a
//     map[K]V dominate.
//   - Best-cost tables in graph search: see search.AStar, which keys its
//     bookkeeping by a caller-supplied Indexer through this package.
//
// Contracts and errors:
//
//   - FromSlice returns ErrLengthMismatch when the supplied data does not
//     contain exactly Indexer.Len() values.
//   - Constructors panic with ErrNilIndexer on a nil strategy.
//   - Keys outside the Indexer's declared domain fail fast on the slice
//     bounds check; there is no unchecked access path.
//   - Map.Len and Set.Len scan all slots: O(domain), not O(entries).
//
// Concurrency:
//
//   - No internal synchronization. Concurrent readers are safe only while
//     no writer is active; synchronize externally otherwise.
package dense
