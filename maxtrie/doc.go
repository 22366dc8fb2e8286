// Package maxtrie provides a trie that retains, over a stream of
// (subset, value) insertions, only the Pareto-maximal pairs under subset
// dominance: a stored subset with an equal-or-greater value dominates
// every superset, which is then never worth storing.
//
// Overview:
//
//   - Subsets are strictly ascending key sequences (sort and dedupe
//     before calling; the bitset package's Elements dumps produce the
//     right shape directly).
//   - InsertIfMax is the sole mutator. It first queries for a stored
//     dominating subset by walking, merge-style, every child branch whose
//     key is bounded by the next key of the probe, so a dominating subset
//     is found even when its key path diverges from the probe's early.
//     Only if no dominator exists is the exact terminal created or, when
//     a strictly smaller value sits there, overwritten.
//
// When to use:
//
//   - Branch-and-bound memoization in combinatorial search: "the best
//     value achievable having already used resource set S". A candidate
//     whose (set, value) is dominated cannot lead to a better outcome
//     and can be pruned.
//
// Complexity:
//
//   - Each insertion visits the stored entries whose key paths stay
//     within the probe set: O(n) worst case over n stored pairs, but the
//     ascending-key filter prunes aggressively for the intended small
//     universes (at most one machine word of keys).
//   - Recursion depth is bounded by the subset cardinality.
//
// Concurrency: none built in; the trie assumes exclusive mutable access,
// like the other densekit containers.
package maxtrie
