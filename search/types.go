// Package search defines the Problem contracts, configuration options
// and sentinel errors for the best-first solver.
//
// AStar computes the minimum total cost from any source state to the
// nearest target state of an implicit graph described by a Problem. The
// solver maintains a priority-queue frontier ("open set") of states to
// explore and relaxes successor edges in increasing order of estimated
// total cost, the same lazy-decrease-key discipline as a textbook A*.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary-heap open set, where
//     V = states touched and E = successor edges relaxed; the bucket
//     queue replaces the log factor with O(1) per operation for small
//     integer priorities.
//   - Space: O(Indexer.Len()) for the best-cost table and closed set,
//     plus O(E) worst-case open-set entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilProblem   if the provided Problem is nil.
//   - ErrNilIndexer   if the provided state Indexer is nil.
//   - ErrNoSources    if the Problem declares no source states.
//   - ErrNoTargets    if a BiDirProblem declares no target states.
//   - ErrNegativeCost if a successor edge reports a negative cost.
//   - ErrBadMaxCost   if WithMaxCost is given a negative bound.
package search

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilProblem indicates that a nil Problem was passed to a solver.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilIndexer indicates that a nil state Indexer was passed to a solver.
	ErrNilIndexer = errors.New("search: state indexer is nil")

	// ErrNoSources indicates that the Problem declared no source states.
	ErrNoSources = errors.New("search: problem has no source states")

	// ErrNoTargets indicates that a BiDirProblem declared no target states.
	ErrNoTargets = errors.New("search: problem has no target states")

	// ErrNegativeCost indicates that a successor edge carried a negative
	// cost, which breaks the non-negative-weight assumption of best-first
	// search.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative bound.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Cost is the minimal numeric bound the solver needs: a zero value,
// addition, and a total order. Integers keep tie-breaking exact; floating
// costs trade that for range.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Problem describes an implicit search graph. Implementations are
// supplied by the caller per search instance.
//
// Heuristic must be admissible (never overestimate the true remaining
// cost to a target) and consistent (obey the triangle inequality along
// every edge) for the first-target-pop to be optimal. A constant zero
// heuristic is always valid and degrades AStar to Dijkstra.
type Problem[S any, C Cost] interface {
	// Sources returns the start states. At least one is required.
	Sources() []S

	// IsTarget reports whether state is a goal.
	IsTarget(state S) bool

	// Successors calls yield for every (next state, edge cost) pair
	// reachable from state in one step, stopping early if yield returns
	// false. Edge costs must be non-negative.
	Successors(state S, yield func(next S, edge C) bool)

	// Heuristic estimates the remaining cost from state to the nearest
	// target.
	Heuristic(state S) C
}

// BiDirProblem extends Problem with the reverse view needed to search
// from the targets backward. It is exercised only by BiDirAStar; the
// unidirectional solver ignores it.
type BiDirProblem[S any, C Cost] interface {
	Problem[S, C]

	// Targets returns the goal states, i.e. the sources of the reverse
	// search.
	Targets() []S

	// IsSource reports whether state is a start state of the forward
	// search (a target of the reverse one).
	IsSource(state S) bool

	// RevSuccessors enumerates the reverse edges: every (prev, edge)
	// such that the forward graph has an edge prev→state with that cost.
	RevSuccessors(state S, yield func(prev S, edge C) bool)

	// RevHeuristic estimates the remaining cost from state back to the
	// nearest source.
	RevHeuristic(state S) C
}

// Options configures a solver run.
//
// Open    – the open-set (frontier) implementation; nil selects a fresh
// BinaryHeap.
// MaxCost – optional cap on tentative path costs; relaxations beyond it
// are skipped. Honored only when HasMaxCost is set (via WithMaxCost).
type Options[S any, C Cost] struct {
	Open       OpenSet[S, C] // Pluggable frontier implementation
	MaxCost    C             // Maximum path cost to explore
	HasMaxCost bool          // Whether MaxCost is in effect
}

// Option is a functional option for configuring a solver run.
type Option[S any, C Cost] func(*Options[S, C])

// WithOpenSet injects a frontier implementation, e.g. a BucketQueue for
// small integer costs. The solver drains and reuses it as-is; pass a
// fresh or Reset queue.
func WithOpenSet[S any, C Cost](open OpenSet[S, C]) Option[S, C] {
	return func(o *Options[S, C]) {
		o.Open = open
	}
}

// WithMaxCost caps exploration: states whose tentative path cost exceeds
// max are never pushed. Must be non-negative; a negative value panics with
// ErrBadMaxCost when the option is applied by a solver.
func WithMaxCost[S any, C Cost](max C) Option[S, C] {
	return func(o *Options[S, C]) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
		o.HasMaxCost = true
	}
}

// DefaultOptions returns the zero configuration: binary-heap open set,
// no cost cap.
func DefaultOptions[S any, C Cost]() Options[S, C] {
	return Options[S, C]{}
}
