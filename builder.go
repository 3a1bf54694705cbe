package tabgo

import (
	"fmt"

	"github.com/hupe1980/tabgo/domain"
	"github.com/hupe1980/tabgo/matrix"
)

// RowSelectorKind enumerates the closed set of row selector shapes.
type RowSelectorKind uint8

const (
	// RowsAll selects every row.
	RowsAll RowSelectorKind = iota
	// RowsRange selects a contiguous half-open row range.
	RowsRange
	// RowsIndices selects explicit row indices, in order.
	RowsIndices
	// RowsMask selects rows by a boolean vector of the table's length.
	RowsMask
)

// RowSelector denotes a subset of a table's rows. The zero value selects
// every row.
type RowSelector struct {
	kind       RowSelectorKind
	start, end int
	idx        []int
	mask       []bool
}

// AllRows selects every row.
func AllRows() RowSelector { return RowSelector{kind: RowsAll} }

// RowRange selects the half-open row range [start, stop).
func RowRange(start, stop int) RowSelector {
	return RowSelector{kind: RowsRange, start: start, end: stop}
}

// RowIndices selects the given rows, in order.
func RowIndices(idx ...int) RowSelector {
	return RowSelector{kind: RowsIndices, idx: idx}
}

// RowMask selects the rows whose mask entry is true. The mask length must
// equal the table's row count.
func RowMask(mask []bool) RowSelector {
	return RowSelector{kind: RowsMask, mask: mask}
}

// resolve validates the selector against a table of n rows and returns
// either a contiguous range (idx nil) or explicit indices.
func (s RowSelector) resolve(n int) (start, stop int, idx []int, err error) {
	switch s.kind {
	case RowsAll:
		return 0, n, nil, nil
	case RowsRange:
		start, stop = s.start, s.end
		if start < 0 {
			start = 0
		}
		if stop > n {
			stop = n
		}
		if stop < start {
			stop = start
		}
		return start, stop, nil, nil
	case RowsIndices:
		for _, r := range s.idx {
			if r < 0 || r >= n {
				return 0, 0, nil, &ErrIndexOutOfRange{Index: r, Length: n}
			}
		}
		return 0, 0, s.idx, nil
	default: // RowsMask
		if len(s.mask) != n {
			return 0, 0, nil, &ErrRowCountMismatch{Part: "row mask", Got: len(s.mask), Want: n}
		}
		idx = make([]int, 0, n)
		for i, keep := range s.mask {
			if keep {
				idx = append(idx, i)
			}
		}
		return 0, 0, idx, nil
	}
}

func (s RowSelector) count(n int) (int, error) {
	start, stop, idx, err := s.resolve(n)
	if err != nil {
		return 0, err
	}
	if idx != nil {
		return len(idx), nil
	}
	return stop - start, nil
}

// FromDomain constructs a table with the given number of rows for the
// given domain. Feature and target containers are zero-filled, metadata
// cells hold the missing sentinel, and the weight container is all ones
// when WithWeights is given and zero-width otherwise.
func FromDomain(d *domain.Domain, nRows int, opts ...Option) *Table {
	t := newTable(d, opts...)
	t.x = matrix.New[float64](nRows, d.NAttrs())
	t.y = matrix.New[float64](nRows, d.NClasses())
	t.metas = matrix.New[any](nRows, d.NMetas())
	if optsHaveWeights(opts) {
		t.w = matrix.New[float64](nRows, 1)
		t.w.Fill(1)
	} else {
		t.w = matrix.New[float64](nRows, 0)
	}
	return t
}

func optsHaveWeights(opts []Option) bool {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	return o.weighted
}

// FromArrays constructs a table from row-major arrays under the given
// domain. Column counts must equal the domain's variable counts and all
// arrays must share one row count; any mismatch fails construction with no
// partial table.
//
// A nil y is split off the tail of x's rows when the domain declares class
// variables; a nil metas or w defaults to a zero-width container.
func FromArrays(d *domain.Domain, x, y [][]float64, metas [][]any, w []float64, opts ...Option) (*Table, error) {
	nRows := len(x)

	if y == nil && d.NClasses() > 0 {
		split := make([][]float64, nRows)
		rest := make([][]float64, nRows)
		for i, row := range x {
			if len(row) != d.NAttrs()+d.NClasses() {
				return nil, &ErrShapeMismatch{Part: "variable", Got: len(row), Want: d.NAttrs() + d.NClasses()}
			}
			split[i] = row[:d.NAttrs()]
			rest[i] = row[d.NAttrs():]
		}
		x, y = split, rest
	}

	xm, err := matrix.FromRowMajor(x, d.NAttrs())
	if err != nil {
		return nil, &ErrShapeMismatch{Part: "variable", Got: widthOf(x), Want: d.NAttrs()}
	}
	if y == nil {
		y = make([][]float64, nRows)
	}
	ym, err := matrix.FromRowMajor(y, d.NClasses())
	if err != nil {
		return nil, &ErrShapeMismatch{Part: "class", Got: widthOf(y), Want: d.NClasses()}
	}
	if metas == nil {
		metas = make([][]any, nRows)
	}
	mm, err := matrix.FromRowMajor(metas, d.NMetas())
	if err != nil {
		return nil, &ErrShapeMismatch{Part: "meta attribute", Got: widthOf(metas), Want: d.NMetas()}
	}

	if len(y) != nRows {
		return nil, &ErrRowCountMismatch{Part: "class array", Got: len(y), Want: nRows}
	}
	if len(metas) != nRows {
		return nil, &ErrRowCountMismatch{Part: "meta array", Got: len(metas), Want: nRows}
	}

	var wm *matrix.Dense[float64]
	if w == nil {
		wm = matrix.New[float64](nRows, 0)
	} else {
		if len(w) != nRows {
			return nil, &ErrRowCountMismatch{Part: "weight array", Got: len(w), Want: nRows}
		}
		wm, _ = matrix.FromColumns([][]float64{w})
	}

	t := newTable(d, opts...)
	t.x, t.y, t.metas, t.w = xm, ym, mm, wm
	return t, nil
}

func widthOf[T any](rows [][]T) int {
	for _, r := range rows {
		return len(r)
	}
	return 0
}

// InferDomain builds an anonymous domain matching the shape of the given
// raw arrays. Features become continuous variables named positionally; a
// target column is discrete with ordinal value names iff all its values
// are whole numbers in [0, 19], else continuous; metadata columns become
// string variables. Tables under any anonymous domain of matching shape
// are mutually convertible without per-variable mapping.
func InferDomain(x, y [][]float64, metas [][]any) (*domain.Domain, error) {
	attrs := make([]domain.Variable, widthOf(x))
	for i := range attrs {
		attrs[i] = domain.NewContinuous(fmt.Sprintf("Feature %d", i+1))
	}

	var classVars []domain.Variable
	for c := 0; c < widthOf(y); c++ {
		classVars = append(classVars, inferClassVar(y, c))
	}

	var metaVars []domain.Variable
	for m := 0; m < widthOf(metas); m++ {
		metaVars = append(metaVars, domain.NewString(fmt.Sprintf("Meta %d", m)))
	}

	d, err := domain.New(attrs, classVars, metaVars)
	if err != nil {
		return nil, err
	}
	d.MarkAnonymous()
	return d, nil
}

func inferClassVar(y [][]float64, c int) domain.Variable {
	max := 0.0
	discrete := len(y) > 0
	for _, row := range y {
		v := row[c]
		if v != float64(int(v)) || v < 0 || v > 19 {
			discrete = false
			break
		}
		if v > max {
			max = v
		}
	}
	if discrete {
		mx := int(max)
		places := 1
		if mx >= 10 {
			places = 2
		}
		values := make([]string, mx+1)
		for i := range values {
			values[i] = fmt.Sprintf("v%*d", places, i+1)
		}
		return domain.NewDiscrete(fmt.Sprintf("Class %d", c+1), values)
	}
	return domain.NewContinuous(fmt.Sprintf("Target %d", c+1))
}

// FromRows constructs a table from raw row-major arrays with no domain
// supplied, inferring an anonymous domain from the arrays' shapes and
// values.
func FromRows(x, y [][]float64, metas [][]any, opts ...Option) (*Table, error) {
	d, err := InferDomain(x, y, metas)
	if err != nil {
		return nil, err
	}
	if y == nil {
		y = make([][]float64, len(x))
	}
	return FromArrays(d, x, y, metas, nil, opts...)
}

// FromTableRows constructs a table by selecting rows from the source
// table under the same domain. This is the pure aliasing path: every
// container of the result is a view over the source's storage, and no
// column remap or value computation happens.
func FromTableRows(src *Table, rows RowSelector) (*Table, error) {
	start, stop, idx, err := rows.resolve(src.Len())
	if err != nil {
		return nil, err
	}
	t := newTable(src.domain)
	t.logger = src.logger
	if idx == nil {
		t.x = src.x.SelectRange(start, stop)
		t.y = src.y.SelectRange(start, stop)
		t.metas = src.metas.SelectRange(start, stop)
		t.w = src.w.SelectRange(start, stop)
	} else {
		t.x = src.x.SelectIndices(idx)
		t.y = src.y.SelectIndices(idx)
		t.metas = src.metas.SelectIndices(idx)
		t.w = src.w.SelectIndices(idx)
	}
	return t, nil
}

// FromTable constructs a table under a destination domain from a source
// table under a different domain, converting columns per the domains'
// conversion mapping: direct copies for variables that exist verbatim in
// the source, computed values where a variable can derive itself from a
// full source row, and the missing sentinel otherwise. The same-domain
// case falls through to the pure row-selection path.
func FromTable(d *domain.Domain, src *Table, rows RowSelector) (*Table, error) {
	if d == src.domain {
		return FromTableRows(src, rows)
	}

	start, _, idx, err := rows.resolve(src.Len())
	if err != nil {
		return nil, err
	}
	n, err := rows.count(src.Len())
	if err != nil {
		return nil, err
	}
	srcRow := func(i int) int {
		if idx != nil {
			return idx[i]
		}
		return start + i
	}

	conv := d.ConversionFrom(src.domain)

	t := newTable(d)
	t.logger = src.logger
	t.x = gatherFloat(src, n, srcRow, conv.Attributes)
	t.y = gatherFloat(src, n, srcRow, conv.ClassVars)
	t.metas = gatherValues(src, n, srcRow, conv.Metas)

	// Weights are copied, never aliased, on the conversion path.
	t.w = matrix.New[float64](n, src.w.Cols())
	for c := 0; c < src.w.Cols(); c++ {
		for i := 0; i < n; i++ {
			t.w.Set(i, c, src.w.At(srcRow(i), c))
		}
	}

	src.log().LogConvert(n, nil)
	return t, nil
}

// gatherFloat assembles a numeric destination group. When every source
// column is a direct copy out of one physical container the gather is one
// bulk indexed read per column; otherwise it scatters element by element
// across containers and compute functions.
func gatherFloat(src *Table, n int, srcRow func(int) int, group []domain.SourceColumn) *matrix.Dense[float64] {
	out := matrix.New[float64](n, len(group))
	if len(group) == 0 {
		return out
	}

	if place, ok := domain.SamePlace(group); ok && place != domain.PlaceMeta {
		container := src.x
		if place == domain.PlaceClass {
			container = src.y
		}
		for c, sc := range group {
			for i := 0; i < n; i++ {
				out.Set(i, c, container.At(srcRow(i), sc.Source.Index))
			}
		}
		return out
	}

	for c, sc := range group {
		for i := 0; i < n; i++ {
			out.Set(i, c, sourceFloat(src, srcRow(i), sc))
		}
	}
	return out
}

func sourceFloat(src *Table, row int, sc domain.SourceColumn) float64 {
	if sc.Direct {
		switch sc.Source.Place {
		case domain.PlaceFeature:
			return src.x.At(row, sc.Source.Index)
		case domain.PlaceClass:
			return src.y.At(row, sc.Source.Index)
		default:
			if f, ok := src.metas.At(row, sc.Source.Index).(float64); ok {
				return f
			}
			return domain.Unknown
		}
	}
	if sc.Compute != nil {
		r := &Row{t: src, index: row, n: src.Len()}
		if v, ok := sc.Compute(r); ok {
			return v
		}
	}
	return domain.Unknown
}

// gatherValues assembles a metadata destination group, preserving stored
// values for direct in-container copies and boxing numeric codes gathered
// from the numeric containers.
func gatherValues(src *Table, n int, srcRow func(int) int, group []domain.SourceColumn) *matrix.Dense[any] {
	out := matrix.New[any](n, len(group))
	if len(group) == 0 {
		return out
	}

	if place, ok := domain.SamePlace(group); ok && place == domain.PlaceMeta {
		for c, sc := range group {
			for i := 0; i < n; i++ {
				out.Set(i, c, src.metas.At(srcRow(i), sc.Source.Index))
			}
		}
		return out
	}

	for c, sc := range group {
		for i := 0; i < n; i++ {
			out.Set(i, c, sourceValue(src, srcRow(i), sc))
		}
	}
	return out
}

func sourceValue(src *Table, row int, sc domain.SourceColumn) any {
	if sc.Direct {
		if sc.Source.Place == domain.PlaceMeta {
			return src.metas.At(row, sc.Source.Index)
		}
		return sourceFloat(src, row, sc)
	}
	if sc.Compute != nil {
		r := &Row{t: src, index: row, n: src.Len()}
		if v, ok := sc.Compute(r); ok {
			return v
		}
	}
	return nil
}

// Select constructs a table over a column subset and row subset of t. When
// the column selector denotes exactly the existing attributes in their
// existing order, no new domain is built and the result is a pure row
// selection.
func (t *Table) Select(sel domain.Selector, rows RowSelector) (*Table, error) {
	refs, same, err := t.domain.Columns(sel)
	if err != nil {
		return nil, err
	}
	if same {
		return FromTableRows(t, rows)
	}

	var attrs, classVars, metaVars []domain.Variable
	for _, ref := range refs {
		switch ref.Addr.Place {
		case domain.PlaceFeature:
			attrs = append(attrs, ref.Var)
		case domain.PlaceClass:
			classVars = append(classVars, ref.Var)
		default:
			metaVars = append(metaVars, ref.Var)
		}
	}
	d, err := domain.New(attrs, classVars, metaVars)
	if err != nil {
		return nil, err
	}
	return FromTable(d, t, rows)
}
