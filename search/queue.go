package search

import (
	"container/heap"
)

// OpenSet is the priority-queue frontier of best-first search: states
// awaiting expansion, ordered by estimated total cost.
//
// Tie order between equal priorities is implementation-defined and must
// not be assumed stable across implementations. Callers that need
// deterministic ties should fold a secondary key into the cost.
type OpenSet[S any, C Cost] interface {
	// Push adds state with the given priority. Duplicate pushes of the
	// same state with different priorities are expected (lazy
	// decrease-key); the solver discards stale pops.
	Push(state S, priority C)

	// Pop removes and returns a minimum-priority state, or ok=false when
	// the set is empty.
	Pop() (state S, priority C, ok bool)

	// Len returns the number of queued entries (duplicates included).
	Len() int
}

// Compile-time checks that both frontiers satisfy OpenSet.
var (
	_ OpenSet[int, int]     = (*BinaryHeap[int, int])(nil)
	_ OpenSet[int, float64] = (*BinaryHeap[int, float64])(nil)
	_ OpenSet[int, int]     = (*BucketQueue[int, int])(nil)
)

// heapItem is one open-set entry: a state and its priority at push time.
type heapItem[S any, C Cost] struct {
	state S
	pri   C
}

// heapItems implements heap.Interface as a min-heap on pri.
type heapItems[S any, C Cost] []heapItem[S, C]

// Len returns the number of items in the heap.
func (h heapItems[S, C]) Len() int { return len(h) }

// Less orders by priority ascending; ties are broken by heap layout.
func (h heapItems[S, C]) Less(i, j int) bool { return h[i].pri < h[j].pri }

// Swap swaps two heap slots.
func (h heapItems[S, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *heapItems[S, C]) Push(x any) { *h = append(*h, x.(heapItem[S, C])) }

// Pop removes and returns the last slot; called by heap.Pop.
func (h *heapItems[S, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// BinaryHeap is the general-purpose OpenSet: a container/heap min-heap
// with lazy decrease-key. Works for any Cost type.
type BinaryHeap[S any, C Cost] struct {
	items heapItems[S, C]
}

// NewBinaryHeap creates an empty BinaryHeap.
func NewBinaryHeap[S any, C Cost]() *BinaryHeap[S, C] {
	return &BinaryHeap[S, C]{}
}

// Push adds state with the given priority.
func (b *BinaryHeap[S, C]) Push(state S, priority C) {
	heap.Push(&b.items, heapItem[S, C]{state: state, pri: priority})
}

// Pop removes and returns a minimum-priority state.
func (b *BinaryHeap[S, C]) Pop() (S, C, bool) {
	if len(b.items) == 0 {
		var zeroS S
		var zeroC C

		return zeroS, zeroC, false
	}
	item := heap.Pop(&b.items).(heapItem[S, C])

	return item.state, item.pri, true
}

// Len returns the number of queued entries.
func (b *BinaryHeap[S, C]) Len() int { return len(b.items) }

// Reset empties the heap, retaining its capacity.
func (b *BinaryHeap[S, C]) Reset() { b.items = b.items[:0] }
