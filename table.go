package tabgo

import (
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/tabgo/domain"
	"github.com/hupe1980/tabgo/matrix"
	"github.com/hupe1980/tabgo/util"
)

// Table stores data instances as a set of co-indexed columnar containers:
// features (X), targets (Y), weights (W) and metadata. All containers hold
// the same number of rows at every observable point. Feature and target
// cells are float64 codes; metadata cells are arbitrary values; the weight
// container has zero width when the table is unweighted.
//
// Containers either own their storage or alias another table's storage
// (see IsView, IsCopy, EnsureOwned). Mutating a view without EnsureOwned
// writes through to the aliased table; that is the documented sharing
// contract, not a defect.
type Table struct {
	id     uuid.UUID
	name   string
	domain *domain.Domain

	x     *matrix.Dense[float64]
	y     *matrix.Dense[float64]
	metas *matrix.Dense[any]
	w     *matrix.Dense[float64]

	logger *Logger
	rng    *util.RNG
}

func newTable(d *domain.Domain, opts ...Option) *Table {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	t := &Table{
		id:     uuid.New(),
		name:   o.name,
		domain: d,
		logger: o.logger,
	}
	if o.seeded {
		t.rng = util.NewRNG(o.seed)
	}
	return t
}

func (t *Table) rand() *util.RNG {
	if t.rng == nil {
		t.rng = util.NewRNG(time.Now().UnixNano())
	}
	return t.rng
}

func (t *Table) log() *Logger {
	if t.logger == nil {
		return noop
	}
	return t.logger
}

var noop = NoopLogger()

// ID returns the table's identity, assigned at construction.
func (t *Table) ID() uuid.UUID { return t.id }

// Name returns the table's human-readable name, if any.
func (t *Table) Name() string { return t.name }

// Domain returns the description of the table's columns.
func (t *Table) Domain() *domain.Domain { return t.domain }

// Len returns the number of rows.
func (t *Table) Len() int { return t.x.Rows() }

// X returns the feature container.
func (t *Table) X() *matrix.Dense[float64] { return t.x }

// Y returns the target container.
func (t *Table) Y() *matrix.Dense[float64] { return t.y }

// Metas returns the metadata container.
func (t *Table) Metas() *matrix.Dense[any] { return t.metas }

// W returns the weight container.
func (t *Table) W() *matrix.Dense[float64] { return t.w }

// IsView returns true if all non-empty containers alias another table's
// storage.
func (t *Table) IsView() bool {
	return (t.x.Cols() == 0 || t.x.IsView()) &&
		(t.y.Cols() == 0 || t.y.IsView()) &&
		(t.metas.Cols() == 0 || t.metas.IsView()) &&
		(t.w.Cols() == 0 || t.w.IsView())
}

// IsCopy returns true if every container, including zero-width ones, owns
// its storage.
func (t *Table) IsCopy() bool {
	return !t.x.IsView() && !t.y.IsView() && !t.metas.IsView() && !t.w.IsView()
}

// EnsureOwned replaces every aliased container with an exclusive copy of
// the same values. Must be called before in-place element mutation on a
// table that might be a view.
func (t *Table) EnsureOwned() {
	t.x.EnsureOwned()
	t.y.EnsureOwned()
	t.metas.EnsureOwned()
	t.w.EnsureOwned()
}

// HasWeights returns true if the data instances are weighed.
func (t *Table) HasWeights() bool { return t.w.Cols() != 0 }

// SetWeights sets the weight of every instance, creating the weight
// container if necessary.
func (t *Table) SetWeights(weight float64) {
	if t.w.Cols() == 0 {
		t.w = matrix.New[float64](t.Len(), 1)
	}
	t.w.Fill(weight)
}

// Weights returns the weight vector, or nil when the table is unweighted.
// The returned slice aliases table storage when possible.
func (t *Table) Weights() []float64 {
	if t.w.Cols() == 0 {
		return nil
	}
	col, _ := t.w.Column(0)
	return col
}

// TotalWeight returns the sum of instance weights, or the row count when
// the table is unweighted.
func (t *Table) TotalWeight() float64 {
	if t.w.Cols() == 0 {
		return float64(t.Len())
	}
	col, _ := t.w.Column(0)
	total := 0.0
	for _, w := range col {
		total += w
	}
	return total
}

// ColumnFloat returns the numeric values of one logical column over all
// rows. The second return is true when the slice is a view over table
// storage (a contiguous column of a numeric container with no row
// indirection); otherwise the slice is freshly assembled. Fails for
// non-primitive variables.
func (t *Table) ColumnFloat(id any) ([]float64, bool, error) {
	a, err := t.domain.Resolve(id)
	if err != nil {
		return nil, false, err
	}
	v, err := t.domain.Var(a)
	if err != nil {
		return nil, false, err
	}
	if !v.IsPrimitive() {
		return nil, false, &ErrColumnType{Variable: v.Name(), Want: "numeric"}
	}
	switch a.Place {
	case domain.PlaceFeature:
		col, view := t.x.Column(a.Index)
		return col, view, nil
	case domain.PlaceClass:
		col, view := t.y.Column(a.Index)
		return col, view, nil
	default:
		// Primitive values stored in the metadata container are boxed
		// float64 codes; anything else reads as missing.
		out := make([]float64, t.Len())
		for i := range out {
			if f, ok := t.metas.At(i, a.Index).(float64); ok {
				out[i] = f
			} else {
				out[i] = domain.Unknown
			}
		}
		return out, false, nil
	}
}

// ColumnValues returns one logical column as opaque values. Numeric
// columns are boxed; metadata columns are returned as stored. The second
// return is true when the slice is a view over table storage.
func (t *Table) ColumnValues(id any) ([]any, bool, error) {
	a, err := t.domain.Resolve(id)
	if err != nil {
		return nil, false, err
	}
	if a.Place == domain.PlaceMeta {
		col, view := t.metas.Column(a.Index)
		return col, view, nil
	}
	floats, _, err := t.ColumnFloat(a)
	if err != nil {
		return nil, false, err
	}
	out := make([]any, len(floats))
	for i, f := range floats {
		out[i] = f
	}
	return out, false, nil
}

// Float returns the numeric value of one cell, resolved through the
// unified column addressing.
func (t *Table) Float(row int, col any) (float64, error) {
	if row < 0 || row >= t.Len() {
		return 0, &ErrIndexOutOfRange{Index: row, Length: t.Len()}
	}
	a, err := t.domain.Resolve(col)
	if err != nil {
		return 0, err
	}
	v, err := t.domain.Var(a)
	if err != nil {
		return 0, err
	}
	if !v.IsPrimitive() {
		return 0, &ErrColumnType{Variable: v.Name(), Want: "numeric"}
	}
	switch a.Place {
	case domain.PlaceFeature:
		return t.x.At(row, a.Index), nil
	case domain.PlaceClass:
		return t.y.At(row, a.Index), nil
	default:
		if f, ok := t.metas.At(row, a.Index).(float64); ok {
			return f, nil
		}
		return domain.Unknown, nil
	}
}

// Value returns one cell as an opaque value.
func (t *Table) Value(row int, col any) (any, error) {
	a, err := t.domain.Resolve(col)
	if err != nil {
		return nil, err
	}
	if a.Place == domain.PlaceMeta {
		if row < 0 || row >= t.Len() {
			return nil, &ErrIndexOutOfRange{Index: row, Length: t.Len()}
		}
		return t.metas.At(row, a.Index), nil
	}
	return t.Float(row, a)
}

// SetValue writes one cell, encoding raw external values through the
// variable's contract first. Writes land in the physical container
// selected by the column address.
func (t *Table) SetValue(row int, col any, value any) error {
	if row < 0 || row >= t.Len() {
		return &ErrIndexOutOfRange{Index: row, Length: t.Len()}
	}
	a, err := t.domain.Resolve(col)
	if err != nil {
		return err
	}
	v, err := t.domain.Var(a)
	if err != nil {
		return err
	}
	encoded, err := v.ToVal(value)
	if err != nil {
		return err
	}
	if a.Place == domain.PlaceMeta {
		t.metas.Set(row, a.Index, encoded)
		return nil
	}
	f, ok := encoded.(float64)
	if !ok {
		return &ErrColumnType{Variable: v.Name(), Want: "numeric"}
	}
	if a.Place == domain.PlaceFeature {
		t.x.Set(row, a.Index, f)
	} else {
		t.y.Set(row, a.Index, f)
	}
	return nil
}

// HasMissing returns true if any feature or target cell holds the
// missing-value sentinel.
func (t *Table) HasMissing() bool {
	return anyUnknown(t.x) || anyUnknown(t.y)
}

// HasMissingClass returns true if any target cell holds the missing-value
// sentinel.
func (t *Table) HasMissingClass() bool {
	return anyUnknown(t.y)
}

func anyUnknown(m *matrix.Dense[float64]) bool {
	for c := 0; c < m.Cols(); c++ {
		col, _ := m.Column(c)
		for _, v := range col {
			if domain.IsUnknown(v) {
				return true
			}
		}
	}
	return false
}

// Shuffle randomly reorders the rows in place. The table is forced to own
// its storage first, since permuting a view would scramble the aliased
// table.
func (t *Table) Shuffle() {
	t.EnsureOwned()
	perm := t.rand().Perm(t.Len())
	_ = t.x.Permute(perm)
	_ = t.y.Permute(perm)
	_ = t.metas.Permute(perm)
	_ = t.w.Permute(perm)
}

// RandomRow returns an accessor for a uniformly chosen row. Fails on an
// empty table.
func (t *Table) RandomRow() (*Row, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	return t.Row(t.rand().Intn(t.Len()))
}
