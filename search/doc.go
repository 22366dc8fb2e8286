// Package search provides a generic best-first (A*) solver over implicit
// graphs, decoupled from any specific state representation.
//
// Overview:
//
//   - The caller supplies a Problem: source states, target predicate,
//     successor enumeration with edge costs, and a heuristic. The solver
//     supplies the loop: a best-cost table keyed by an injected
//     indexer.Indexer over the state domain, a closed set, and a
//     priority-queue frontier with lazy decrease-key.
//   - The frontier is pluggable through the OpenSet interface: BinaryHeap
//     (any Cost type) or BucketQueue (O(1) buckets for small integer
//     priorities).
//   - Cost is any integer or float type; zero value, addition and the
//     total order are all the solver needs.
//
// When to use:
//
//   - State-space searches whose domains enumerate densely (grid cells,
//     position×heading tuples): the dense best-cost table avoids hashing
//     on every relaxation.
//   - With a zero heuristic, AStar is exactly Dijkstra.
//
// Guarantees and caveats:
//
//   - First target pop returns the optimal cost, provided the heuristic
//     is admissible and consistent.
//   - "No path" is reported as ok=false, never as an error.
//   - Tie order between equal priorities is implementation-defined per
//     OpenSet: the heap by layout, the bucket queue LIFO within a bucket.
//     Fold a secondary key into the cost when determinism across ties
//     matters.
//   - Negative successor edges are rejected at relaxation time with
//     ErrNegativeCost.
//
// BiDirAStar is an isolated extension searching from both ends at once;
// see its documentation for the termination rule. Nothing else in the
// library composes with it.
//
// Thread safety: a solver run owns its bookkeeping exclusively; run
// concurrent searches with separate calls, not a shared one.
package search
