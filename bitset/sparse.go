package bitset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse is a bit set over universes too large for one machine word,
// backed by a 32-bit roaring bitmap. It mirrors the vocabulary of the
// generic word operations (Add/Has/Card/Union/Inter/Compare/Elements).
//
// Unlike the word functions, Sparse has reference semantics: mutators
// update the receiver in place. Use Clone before destructive operations
// when the original must survive.
type Sparse struct {
	rb *roaring.Bitmap
}

// NewSparse creates an empty Sparse set holding the given members.
func NewSparse(members ...uint32) *Sparse {
	s := &Sparse{rb: roaring.New()}
	s.rb.AddMany(members)

	return s
}

// Add inserts member i.
func (s *Sparse) Add(i uint32) {
	s.rb.Add(i)
}

// Remove deletes member i.
func (s *Sparse) Remove(i uint32) {
	s.rb.Remove(i)
}

// Has reports whether i is a member.
func (s *Sparse) Has(i uint32) bool {
	return s.rb.Contains(i)
}

// Card returns the number of members.
func (s *Sparse) Card() int {
	return int(s.rb.GetCardinality())
}

// Empty reports whether the set has no members.
func (s *Sparse) Empty() bool {
	return s.rb.IsEmpty()
}

// Clone returns a deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{rb: s.rb.Clone()}
}

// Union adds every member of other to s.
func (s *Sparse) Union(other *Sparse) {
	s.rb.Or(other.rb)
}

// Inter keeps only the members s shares with other.
func (s *Sparse) Inter(other *Sparse) {
	s.rb.And(other.rb)
}

// Diff removes every member of other from s.
func (s *Sparse) Diff(other *Sparse) {
	s.rb.AndNot(other.rb)
}

// Disjoint reports whether s and other share no members.
func (s *Sparse) Disjoint(other *Sparse) bool {
	return !s.rb.Intersects(other.rb)
}

// SubsetOf reports whether every member of s is in other.
func (s *Sparse) SubsetOf(other *Sparse) bool {
	return s.rb.AndCardinality(other.rb) == s.rb.GetCardinality()
}

// Compare classifies the containment of s relative to other.
func (s *Sparse) Compare(other *Sparse) Containment {
	shared := s.rb.AndCardinality(other.rb)
	sub := shared == s.rb.GetCardinality()
	sup := shared == other.rb.GetCardinality()
	switch {
	case sub && sup:
		return Equal
	case sub:
		return Subset
	case sup:
		return Superset
	default:
		return Incomparable
	}
}

// Elements returns the members in ascending order, ready to feed
// maxtrie.Trie.InsertIfMax.
func (s *Sparse) Elements() []uint32 {
	return s.rb.ToArray()
}

// String formats the set in roaring's brace notation.
func (s *Sparse) String() string {
	return s.rb.String()
}
