package search

// BucketQueue is an OpenSet specialized for small integer priorities:
// entries live in per-priority buckets, making Push and Pop O(1) with no
// comparison heap. Within one bucket, Pop is LIFO.
//
// The caller supplies costIndex mapping a priority to its bucket slot;
// for plain integer costs this is the identity. costIndex must be
// monotone (order-preserving) and non-negative for the pop order to be
// globally minimum-first.
type BucketQueue[S any, C Cost] struct {
	costIndex func(C) int
	buckets   [][]heapItem[S, C]
	cur       int // lowest bucket that may be non-empty
	size      int
}

// NewBucketQueue creates an empty BucketQueue with the given
// priority-to-bucket mapping. Panics if costIndex is nil.
func NewBucketQueue[S any, C Cost](costIndex func(C) int) *BucketQueue[S, C] {
	if costIndex == nil {
		panic("search: BucketQueue costIndex is nil")
	}

	return &BucketQueue[S, C]{costIndex: costIndex}
}

// Push adds state with the given priority.
func (q *BucketQueue[S, C]) Push(state S, priority C) {
	i := q.costIndex(priority)
	if i < 0 {
		panic("search: BucketQueue bucket index is negative")
	}
	for i >= len(q.buckets) {
		q.buckets = append(q.buckets, nil)
	}
	q.buckets[i] = append(q.buckets[i], heapItem[S, C]{state: state, pri: priority})
	if q.size == 0 || i < q.cur {
		q.cur = i
	}
	q.size++
}

// Pop removes and returns a minimum-priority state, LIFO within its
// bucket.
func (q *BucketQueue[S, C]) Pop() (S, C, bool) {
	if q.size == 0 {
		var zeroS S
		var zeroC C

		return zeroS, zeroC, false
	}
	for len(q.buckets[q.cur]) == 0 {
		q.cur++
	}

	bucket := q.buckets[q.cur]
	item := bucket[len(bucket)-1]
	q.buckets[q.cur] = bucket[:len(bucket)-1]
	q.size--

	return item.state, item.pri, true
}

// Len returns the number of queued entries.
func (q *BucketQueue[S, C]) Len() int { return q.size }

// Reset empties the queue, retaining bucket capacity.
func (q *BucketQueue[S, C]) Reset() {
	for i := range q.buckets {
		q.buckets[i] = q.buckets[i][:0]
	}
	q.cur = 0
	q.size = 0
}
