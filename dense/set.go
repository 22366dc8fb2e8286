package dense

import (
	"github.com/katalvlaran/densekit/indexer"
)

// Set is a dense membership set over the domain declared by an Indexer:
// a Map whose values are the empty struct.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set over the domain declared by ix.
// Panics with ErrNilIndexer if ix is nil.
func NewSet[K any](ix indexer.Indexer[K]) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](ix)}
}

// Add inserts key and reports whether it was newly inserted.
func (s *Set[K]) Add(key K) bool {
	_, had := s.m.Put(key, struct{}{})

	return !had
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, had := s.m.Delete(key)

	return had
}

// Has reports whether key is a member.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m.Get(key)

	return ok
}

// Len returns the number of members. O(n) over the slot count.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Empty reports whether the set has no members.
func (s *Set[K]) Empty() bool {
	return s.m.Empty()
}
