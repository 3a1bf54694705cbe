package filter

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSet is a boolean row-selection vector of a fixed length, backed by a
// Roaring Bitmap. It is the output of filter evaluation and the input to
// row-subset table construction.
type RowSet struct {
	rb *roaring.Bitmap
	n  int
}

// NewRowSet creates an empty selection over n rows.
func NewRowSet(n int) *RowSet {
	return &RowSet{rb: roaring.New(), n: n}
}

// FullRowSet creates a selection over n rows with every row selected.
func FullRowSet(n int) *RowSet {
	s := NewRowSet(n)
	if n > 0 {
		s.rb.AddRange(0, uint64(n))
	}
	return s
}

// RowSetFromMask creates a selection from a boolean vector.
func RowSetFromMask(mask []bool) *RowSet {
	s := NewRowSet(len(mask))
	for i, b := range mask {
		if b {
			s.rb.Add(uint32(i))
		}
	}
	return s
}

// Len returns the length of the selection vector (the table's row count).
func (s *RowSet) Len() int { return s.n }

// Add selects row i.
func (s *RowSet) Add(i int) { s.rb.Add(uint32(i)) }

// Contains reports whether row i is selected.
func (s *RowSet) Contains(i int) bool { return s.rb.Contains(uint32(i)) }

// Cardinality returns the number of selected rows.
func (s *RowSet) Cardinality() int { return int(s.rb.GetCardinality()) }

// And folds another selection in with element-wise conjunction.
func (s *RowSet) And(other *RowSet) { s.rb.And(other.rb) }

// Or folds another selection in with element-wise disjunction.
func (s *RowSet) Or(other *RowSet) { s.rb.Or(other.rb) }

// Negate inverts the selection in place.
func (s *RowSet) Negate() {
	s.rb.Flip(0, uint64(s.n))
}

// Clone returns a deep copy of the selection.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{rb: s.rb.Clone(), n: s.n}
}

// Equal reports whether two selections have the same length and rows.
func (s *RowSet) Equal(other *RowSet) bool {
	return s.n == other.n && s.rb.Equals(other.rb)
}

// Indices returns the selected row indices in ascending order.
func (s *RowSet) Indices() []int {
	out := make([]int, 0, s.Cardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Mask returns the selection as a boolean vector.
func (s *RowSet) Mask() []bool {
	mask := make([]bool, s.n)
	it := s.rb.Iterator()
	for it.HasNext() {
		mask[it.Next()] = true
	}
	return mask
}

// All returns an iterator over the selected row indices.
func (s *RowSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
