package tabgo

import (
	"github.com/hupe1980/tabgo/domain"
)

// Row is a lazily materialized accessor bound to one table row. It holds
// no storage of its own: reads and writes go through the owning table's
// containers under the unified column addressing. A Row is invalidated
// when the table's row count changes after binding.
//
// Row implements domain.SourceRow, so compute functions can derive
// variable values from rows of foreign domains.
type Row struct {
	t     *Table
	index int
	n     int // table length at binding time
}

// Row returns an accessor for row i.
func (t *Table) Row(i int) (*Row, error) {
	if i < 0 || i >= t.Len() {
		return nil, &ErrIndexOutOfRange{Index: i, Length: t.Len()}
	}
	return &Row{t: t, index: i, n: t.Len()}, nil
}

func (r *Row) valid() error {
	if r.t.Len() != r.n {
		return ErrRowInvalidated
	}
	return nil
}

// Index returns the bound row index.
func (r *Row) Index() int { return r.index }

// Table returns the owning table.
func (r *Row) Table() *Table { return r.t }

// Domain returns the domain the row is expressed in.
func (r *Row) Domain() *domain.Domain { return r.t.domain }

// Float returns the numeric value of one column in this row.
func (r *Row) Float(col any) (float64, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	return r.t.Float(r.index, col)
}

// Value returns one column of this row as an opaque value.
func (r *Row) Value(col any) (any, error) {
	if err := r.valid(); err != nil {
		return nil, err
	}
	return r.t.Value(r.index, col)
}

// Set writes one column of this row, encoding raw external values through
// the variable's contract first.
func (r *Row) Set(col any, value any) error {
	if err := r.valid(); err != nil {
		return err
	}
	return r.t.SetValue(r.index, col, value)
}

// Floats returns the feature and target values of the row as one slice,
// features first.
func (r *Row) Floats() ([]float64, error) {
	if err := r.valid(); err != nil {
		return nil, err
	}
	out := make([]float64, 0, r.t.x.Cols()+r.t.y.Cols())
	out = append(out, r.t.x.Row(r.index)...)
	return append(out, r.t.y.Row(r.index)...), nil
}

// Metas returns the metadata values of the row.
func (r *Row) Metas() ([]any, error) {
	if err := r.valid(); err != nil {
		return nil, err
	}
	return r.t.metas.Row(r.index), nil
}

// Class returns the value of the single class variable.
func (r *Row) Class() (float64, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	v := r.t.domain.ClassVar()
	if v == nil {
		return 0, &domain.ErrUnknownColumn{Identifier: "class"}
	}
	return r.t.y.At(r.index, 0), nil
}

// SetClass writes the value of the single class variable.
func (r *Row) SetClass(value any) error {
	if err := r.valid(); err != nil {
		return err
	}
	v := r.t.domain.ClassVar()
	if v == nil {
		return &domain.ErrUnknownColumn{Identifier: "class"}
	}
	return r.t.SetValue(r.index, v, value)
}

// Weight returns the instance weight. Fails when the table is unweighted.
func (r *Row) Weight() (float64, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	if !r.t.HasWeights() {
		return 0, ErrNoWeights
	}
	return r.t.w.At(r.index, 0), nil
}

// SetWeight sets the instance weight, creating the table's weight
// container if necessary.
func (r *Row) SetWeight(weight float64) error {
	if err := r.valid(); err != nil {
		return err
	}
	if !r.t.HasWeights() {
		r.t.SetWeights(1)
	}
	r.t.w.Set(r.index, 0, weight)
	return nil
}
