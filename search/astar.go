package search

import (
	"github.com/katalvlaran/densekit/dense"
	"github.com/katalvlaran/densekit/indexer"
)

// AStar computes the minimum total cost from any source state of p to the
// nearest target state, keying its bookkeeping by the caller-supplied
// Indexer over the state domain.
//
// Returns:
//
//   - cost: the optimal cost when a target was reached.
//   - ok:   false when the open set drained without reaching a target
//     ("unreachable" is an ordinary outcome, not an error).
//   - err:  a sentinel error for invalid inputs (ErrNilProblem,
//     ErrNilIndexer, ErrNoSources) or a negative successor edge
//     (ErrNegativeCost).
//
// Correctness requires an admissible, consistent Heuristic: the first
// time a target is popped, its recorded cost is optimal, and the solver
// returns immediately.
//
// Options customization:
//
//   - WithOpenSet(q): plug a frontier implementation (default BinaryHeap).
//   - WithMaxCost(c): skip relaxations whose tentative cost exceeds c.
//
// Complexity: O((V + E) log V) time with the binary heap, O(Indexer.Len())
// space for the best-cost table and closed set.
func AStar[S any, C Cost](p Problem[S, C], ix indexer.Indexer[S], opts ...Option[S, C]) (C, bool, error) {
	var zero C

	// 1) Build and validate Options.
	cfg := DefaultOptions[S, C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs with sentinel errors, fail fast.
	if p == nil {
		return zero, false, ErrNilProblem
	}
	if ix == nil {
		return zero, false, ErrNilIndexer
	}
	sources := p.Sources()
	if len(sources) == 0 {
		return zero, false, ErrNoSources
	}

	// 3) Default open set: a fresh binary heap.
	open := cfg.Open
	if open == nil {
		open = NewBinaryHeap[S, C]()
	}

	// 4) Seed the runner: every source at cost zero, priority = heuristic.
	r := &runner[S, C]{
		problem: p,
		options: cfg,
		open:    open,
		best:    dense.NewMap[S, C](ix),
		closed:  dense.NewSet[S](ix),
	}
	for _, s := range sources {
		r.best.Put(s, zero)
		r.open.Push(s, p.Heuristic(s))
	}

	// 5) Run the main loop.
	return r.process()
}

// runner holds the mutable state for a single AStar execution.
type runner[S any, C Cost] struct {
	problem Problem[S, C]    // Caller's transition/heuristic capability.
	options Options[S, C]    // Configuration for this run.
	open    OpenSet[S, C]    // Frontier of states awaiting expansion.
	best    *dense.Map[S, C] // State → best known path cost.
	closed  *dense.Set[S]    // States whose best cost is finalized.
}

// process pops minimum-priority states, discards stale entries, and
// relaxes successors until a target is popped or the frontier drains.
func (r *runner[S, C]) process() (C, bool, error) {
	var zero C

	for {
		// 1) Pop the minimum-priority state.
		state, _, ok := r.open.Pop()
		if !ok {
			// Frontier drained: no target reachable.
			return zero, false, nil
		}

		// 2) Skip stale entries (lazy decrease-key pushes duplicates).
		if !r.closed.Add(state) {
			continue
		}

		// 3) The popped priority may be stale; the recorded best cost is
		//    authoritative.
		cost, _ := r.best.Get(state)

		// 4) First target pop is optimal under an admissible, consistent
		//    heuristic.
		if r.problem.IsTarget(state) {
			return cost, true, nil
		}

		// 5) Relax all successor edges.
		if err := r.relax(state, cost); err != nil {
			return zero, false, err
		}
	}
}

// relax attempts to improve the recorded cost of every successor of
// state, pushing improved states back onto the frontier with priority
// tentative + heuristic.
func (r *runner[S, C]) relax(state S, cost C) error {
	var relaxErr error

	r.problem.Successors(state, func(next S, edge C) bool {
		if edge < 0 {
			relaxErr = ErrNegativeCost

			return false
		}

		tentative := cost + edge

		// Respect the optional exploration cap.
		if r.options.HasMaxCost && tentative > r.options.MaxCost {
			return true
		}

		// Keep only strict improvements; equal-cost rediscoveries would
		// just push duplicates.
		entry := r.best.Entry(next)
		if ref, present := entry.Ref(); present && *ref <= tentative {
			return true
		}
		*entry.OrInsert(tentative) = tentative

		r.open.Push(next, tentative+r.problem.Heuristic(next))

		return true
	})

	return relaxErr
}
