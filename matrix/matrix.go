package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOwned is returned when an operation that reshapes storage is
	// attempted on a matrix that aliases another matrix's columns.
	ErrNotOwned = errors.New("matrix does not own its storage")
)

// ErrShapeMismatch indicates that supplied data does not match the expected
// dimensions.
type ErrShapeMismatch struct {
	Got  int
	Want int
	What string
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %s is %d, expected %d", e.What, e.Got, e.Want)
}

// Dense is a column-major matrix with explicit storage ownership.
//
// A Dense is either owned (its column slices are exclusive to it) or a view
// (its column slices alias another matrix). Views come in two flavors: a
// contiguous row range shares subslices of the source columns directly, and
// an arbitrary row subset shares the full source columns through a row-index
// indirection. In both cases writes through the view land in the aliased
// storage; callers that need isolation must call EnsureOwned first.
type Dense[T any] struct {
	cols   [][]T
	rows   int
	rowIdx []int // non-nil for index views; maps logical row to physical row
	owned  bool
}

// New creates an owned, zero-filled matrix of the given dimensions.
func New[T any](rows, cols int) *Dense[T] {
	m := &Dense[T]{
		cols:  make([][]T, cols),
		rows:  rows,
		owned: true,
	}
	for c := range m.cols {
		m.cols[c] = make([]T, rows)
	}
	return m
}

// FromColumns creates an owned matrix that takes ownership of the given
// column slices. All columns must have equal length.
func FromColumns[T any](cols [][]T) (*Dense[T], error) {
	m := &Dense[T]{cols: cols, owned: true}
	if len(cols) == 0 {
		return m, nil
	}
	m.rows = len(cols[0])
	for c := 1; c < len(cols); c++ {
		if len(cols[c]) != m.rows {
			return nil, &ErrShapeMismatch{Got: len(cols[c]), Want: m.rows, What: fmt.Sprintf("column %d length", c)}
		}
	}
	return m, nil
}

// FromRowMajor creates an owned matrix from row-major data. Every row must
// have exactly cols entries.
func FromRowMajor[T any](rows [][]T, cols int) (*Dense[T], error) {
	m := New[T](len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, &ErrShapeMismatch{Got: len(row), Want: cols, What: fmt.Sprintf("row %d length", r)}
		}
		for c, v := range row {
			m.cols[c][r] = v
		}
	}
	return m, nil
}

// Rows returns the logical row count.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return len(m.cols) }

// IsView reports whether the matrix aliases another matrix's storage.
func (m *Dense[T]) IsView() bool { return !m.owned }

func (m *Dense[T]) physical(r int) int {
	if m.rowIdx != nil {
		return m.rowIdx[r]
	}
	return r
}

// At returns the element at (r, c).
func (m *Dense[T]) At(r, c int) T {
	return m.cols[c][m.physical(r)]
}

// Set writes the element at (r, c). Writes through a view land in the
// aliased storage.
func (m *Dense[T]) Set(r, c int, v T) {
	m.cols[c][m.physical(r)] = v
}

// Column returns column c over all logical rows. The returned slice is a
// view into the matrix storage when no row indirection is active (the
// second return is true); otherwise it is a freshly gathered copy.
func (m *Dense[T]) Column(c int) ([]T, bool) {
	if m.rowIdx == nil {
		return m.cols[c], true
	}
	out := make([]T, m.rows)
	col := m.cols[c]
	for i, p := range m.rowIdx {
		out[i] = col[p]
	}
	return out, false
}

// Row returns a copy of logical row r.
func (m *Dense[T]) Row(r int) []T {
	out := make([]T, len(m.cols))
	p := m.physical(r)
	for c := range m.cols {
		out[c] = m.cols[c][p]
	}
	return out
}

// SetRow writes all cells of logical row r.
func (m *Dense[T]) SetRow(r int, row []T) error {
	if len(row) != len(m.cols) {
		return &ErrShapeMismatch{Got: len(row), Want: len(m.cols), What: "row length"}
	}
	p := m.physical(r)
	for c, v := range row {
		m.cols[c][p] = v
	}
	return nil
}

// Fill writes v into every logical cell.
func (m *Dense[T]) Fill(v T) {
	if m.rowIdx != nil {
		for _, p := range m.rowIdx {
			for c := range m.cols {
				m.cols[c][p] = v
			}
		}
		return
	}
	for c := range m.cols {
		col := m.cols[c]
		for i := range col {
			col[i] = v
		}
	}
}

// SelectRange returns a view over the half-open logical row range
// [start, stop). The view shares storage with m.
func (m *Dense[T]) SelectRange(start, stop int) *Dense[T] {
	if start < 0 {
		start = 0
	}
	if stop > m.rows {
		stop = m.rows
	}
	if stop < start {
		stop = start
	}
	v := &Dense[T]{rows: stop - start, owned: false}
	if m.rowIdx != nil {
		v.cols = m.cols
		v.rowIdx = m.rowIdx[start:stop]
		return v
	}
	v.cols = make([][]T, len(m.cols))
	for c := range m.cols {
		v.cols[c] = m.cols[c][start:stop]
	}
	return v
}

// SelectIndices returns a view over the given logical rows, in order. The
// view shares storage with m through a row-index indirection.
func (m *Dense[T]) SelectIndices(idx []int) *Dense[T] {
	phys := make([]int, len(idx))
	for i, r := range idx {
		phys[i] = m.physical(r)
	}
	return &Dense[T]{
		cols:   m.cols,
		rows:   len(idx),
		rowIdx: phys,
		owned:  false,
	}
}

// Clone returns an owned deep copy of the logical contents.
func (m *Dense[T]) Clone() *Dense[T] {
	out := New[T](m.rows, len(m.cols))
	for c := range m.cols {
		col, _ := m.Column(c)
		copy(out.cols[c], col)
	}
	return out
}

// EnsureOwned replaces aliased storage with an exclusive copy of the same
// logical values. Owned matrices are left untouched.
func (m *Dense[T]) EnsureOwned() {
	if m.owned {
		return
	}
	fresh := make([][]T, len(m.cols))
	for c := range m.cols {
		col := make([]T, m.rows)
		if m.rowIdx != nil {
			src := m.cols[c]
			for i, p := range m.rowIdx {
				col[i] = src[p]
			}
		} else {
			copy(col, m.cols[c])
		}
		fresh[c] = col
	}
	m.cols = fresh
	m.rowIdx = nil
	m.owned = true
}

// Resize grows (zero-filled) or truncates the matrix to n rows. The matrix
// must own its storage.
func (m *Dense[T]) Resize(n int) error {
	if !m.owned {
		return ErrNotOwned
	}
	if n == m.rows {
		return nil
	}
	for c := range m.cols {
		col := m.cols[c]
		if n < len(col) {
			m.cols[c] = col[:n]
			continue
		}
		grown := make([]T, n)
		copy(grown, col)
		m.cols[c] = grown
	}
	m.rows = n
	return nil
}

// InsertRow grows the matrix by one row and shifts rows at and after `at`
// one position down, leaving a zero-filled gap at `at`.
func (m *Dense[T]) InsertRow(at int) error {
	if !m.owned {
		return ErrNotOwned
	}
	var zero T
	n := m.rows + 1
	for c := range m.cols {
		grown := make([]T, n)
		copy(grown, m.cols[c][:at])
		grown[at] = zero
		copy(grown[at+1:], m.cols[c][at:])
		m.cols[c] = grown
	}
	m.rows = n
	return nil
}

// RemoveRow removes logical row `at`, shifting the tail back up. The matrix
// must own its storage. This is the exact inverse of InsertRow.
func (m *Dense[T]) RemoveRow(at int) error {
	if !m.owned {
		return ErrNotOwned
	}
	for c := range m.cols {
		col := m.cols[c]
		copy(col[at:], col[at+1:])
		m.cols[c] = col[:m.rows-1]
	}
	m.rows--
	return nil
}

// DeleteRows removes the given logical rows. The result always owns its
// storage; the aliased source of a view is left untouched.
func (m *Dense[T]) DeleteRows(idx []int) {
	drop := make(map[int]bool, len(idx))
	for _, r := range idx {
		drop[r] = true
	}
	kept := make([]int, 0, m.rows-len(drop))
	for r := 0; r < m.rows; r++ {
		if !drop[r] {
			kept = append(kept, m.physical(r))
		}
	}
	fresh := make([][]T, len(m.cols))
	for c := range m.cols {
		col := make([]T, len(kept))
		src := m.cols[c]
		for i, p := range kept {
			col[i] = src[p]
		}
		fresh[c] = col
	}
	m.cols = fresh
	m.rows = len(kept)
	m.rowIdx = nil
	m.owned = true
}

// BlitFrom copies all logical rows of src into m starting at logical row
// `start`. Column counts must match and the rows must fit.
func (m *Dense[T]) BlitFrom(start int, src *Dense[T]) error {
	if src.Cols() != len(m.cols) {
		return &ErrShapeMismatch{Got: src.Cols(), Want: len(m.cols), What: "column count"}
	}
	if start+src.rows > m.rows {
		return &ErrShapeMismatch{Got: start + src.rows, Want: m.rows, What: "row count"}
	}
	for c := range m.cols {
		dst := m.cols[c]
		for i := 0; i < src.rows; i++ {
			dst[m.physical(start+i)] = src.cols[c][src.physical(i)]
		}
	}
	return nil
}

// Permute reorders rows in place so that new row i holds old row perm[i].
// The matrix must own its storage.
func (m *Dense[T]) Permute(perm []int) error {
	if !m.owned {
		return ErrNotOwned
	}
	if len(perm) != m.rows {
		return &ErrShapeMismatch{Got: len(perm), Want: m.rows, What: "permutation length"}
	}
	for c := range m.cols {
		col := m.cols[c]
		out := make([]T, len(col))
		for i, p := range perm {
			out[i] = col[p]
		}
		m.cols[c] = out
	}
	return nil
}
