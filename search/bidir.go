package search

import (
	"github.com/katalvlaran/densekit/dense"
	"github.com/katalvlaran/densekit/indexer"
)

// BiDirAStar is an isolated extension of AStar that searches from the
// sources forward and from the targets backward at the same time,
// meeting in the middle. Nothing else in this library calls it.
//
// Termination rule: the two frontiers alternate expansions; once a state
// has been finalized by both directions, the best known meeting cost mu
// is a valid path cost, and the search stops as soon as the minimum
// priority popped from either frontier is >= mu. With admissible,
// consistent forward and reverse heuristics, mu is then optimal.
//
// Options apply as in AStar, with one exception: WithOpenSet is ignored.
// Each direction needs its own queue, so a single caller-supplied open
// set cannot serve both frontiers; they always use internal binary heaps.
//
// Returns the same (cost, ok, err) shape as AStar; ok=false means no
// path connects sources to targets.
func BiDirAStar[S any, C Cost](p BiDirProblem[S, C], ix indexer.Indexer[S], opts ...Option[S, C]) (C, bool, error) {
	var zero C

	cfg := DefaultOptions[S, C]()
	for _, opt := range opts {
		opt(&cfg)
	}

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
	targets := p.Targets()
	if len(targets) == 0 {
		return zero, false, ErrNoTargets
	}

	fwd := newFrontier[S, C](ix)
	bwd := newFrontier[S, C](ix)
	for _, s := range sources {
		fwd.seed(s, p.Heuristic(s))
	}
	for _, t := range targets {
		bwd.seed(t, p.RevHeuristic(t))
	}

	var (
		mu    C    // best meeting cost found so far
		found bool // whether any meeting happened
	)

	// Alternate single expansions until both frontiers drain or the
	// popped priorities prove mu optimal.
	for fwd.open.Len() > 0 || bwd.open.Len() > 0 {
		for _, dir := range [2]*frontier[S, C]{fwd, bwd} {
			other := bwd
			if dir == bwd {
				other = fwd
			}

			state, pri, ok := dir.open.Pop()
			if !ok {
				continue
			}
			if found && pri >= mu {
				// Nothing cheaper than the meeting cost remains.
				return mu, true, nil
			}
			if !dir.closed.Add(state) {
				continue
			}
			cost, _ := dir.best.Get(state)

			// A state finalized by one direction and costed by the other
			// closes a candidate path.
			if otherCost, met := other.best.Get(state); met {
				total := cost + otherCost
				if !found || total < mu {
					mu, found = total, true
				}
			}

			var relaxErr error
			expand := func(next S, edge C) bool {
				if edge < 0 {
					relaxErr = ErrNegativeCost

					return false
				}
				tentative := cost + edge
				if cfg.HasMaxCost && tentative > cfg.MaxCost {
					return true
				}
				entry := dir.best.Entry(next)
				if ref, present := entry.Ref(); present && *ref <= tentative {
					return true
				}
				*entry.OrInsert(tentative) = tentative
				if dir == fwd {
					dir.open.Push(next, tentative+p.Heuristic(next))
				} else {
					dir.open.Push(next, tentative+p.RevHeuristic(next))
				}

				return true
			}
			if dir == fwd {
				p.Successors(state, expand)
			} else {
				p.RevSuccessors(state, expand)
			}
			if relaxErr != nil {
				return zero, false, relaxErr
			}
		}
	}

	if found {
		return mu, true, nil
	}

	return zero, false, nil
}

// frontier bundles the per-direction bookkeeping of the bidirectional
// search.
type frontier[S any, C Cost] struct {
	open   *BinaryHeap[S, C]
	best   *dense.Map[S, C]
	closed *dense.Set[S]
}

func newFrontier[S any, C Cost](ix indexer.Indexer[S]) *frontier[S, C] {
	return &frontier[S, C]{
		open:   NewBinaryHeap[S, C](),
		best:   dense.NewMap[S, C](ix),
		closed: dense.NewSet[S](ix),
	}
}

func (f *frontier[S, C]) seed(s S, h C) {
	var zero C
	f.best.Put(s, zero)
	f.open.Push(s, h)
}
