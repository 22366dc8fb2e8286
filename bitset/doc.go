// Package bitset provides two bit-set flavors for the subset bookkeeping
// used across densekit:
//
//   - Word sets: any fixed-width unsigned integer (uint8 … uint64) treated
//     as a set of its bit positions, through one generic implementation
//     instead of per-width duplicates. Operations are pure value
//     functions: Add/Remove/Has, algebra (Union, Inter, Diff, SymDiff),
//     containment classification (Compare → Equal/Subset/Superset/
//     Incomparable), and ascending extraction (PopSmallest, Elements).
//   - Sparse: a roaring-bitmap-backed set for universes beyond 64
//     elements, with the same vocabulary but in-place mutation.
//
// The Elements dumps of both flavors produce strictly ascending member
// sequences, the exact input shape maxtrie.Trie.InsertIfMax requires.
//
// Complexity: word operations are O(1) machine instructions; Sparse
// operations follow roaring's compressed-container costs.
package bitset
