package tabgo

import (
	"strings"

	"github.com/hupe1980/tabgo/domain"
	"github.com/hupe1980/tabgo/filter"
)

// EvalFilter evaluates a predicate tree against the table and returns the
// row selection it denotes. The table is never mutated; evaluation is
// purely functional. Every child of a composite node is evaluated — the
// fold is mask arithmetic, not short-circuit boolean logic.
func (t *Table) EvalFilter(cond filter.Condition) (*filter.RowSet, error) {
	n := t.Len()
	switch f := cond.(type) {
	case *filter.Values:
		sel := filter.NewRowSet(n)
		if f.Conjunction {
			sel = filter.FullRowSet(n)
		}
		for _, child := range f.Conditions {
			s, err := t.EvalFilter(child)
			if err != nil {
				return nil, err
			}
			if f.Conjunction {
				sel.And(s)
			} else {
				sel.Or(s)
			}
		}
		return sel, nil

	case *filter.Discrete:
		return t.evalDiscrete(f)

	case *filter.StringList:
		return t.evalStringList(f)

	case *filter.Continuous:
		return t.evalContinuous(f)

	case *filter.String:
		return t.evalString(f)

	case *filter.SameValue:
		return t.evalSameValue(f)

	case *filter.IsDefined:
		sel := filter.NewRowSet(n)
		for i := 0; i < n; i++ {
			if !rowHasUnknown(t.x, i) {
				sel.Add(i)
			}
		}
		if f.Negate {
			sel.Negate()
		}
		return sel, nil

	case *filter.HasClass:
		sel := filter.NewRowSet(n)
		for i := 0; i < n; i++ {
			if !rowHasUnknown(t.y, i) {
				sel.Add(i)
			}
		}
		if f.Negate {
			sel.Negate()
		}
		return sel, nil

	case *filter.Random:
		k := int(f.Prob)
		if f.Prob < 1 {
			k = int(f.Prob * float64(n))
		}
		if k > n {
			k = n
		}
		sel := filter.RowSetFromMask(t.rand().RandomMask(n, k))
		if f.Negate {
			sel.Negate()
		}
		return sel, nil

	default:
		return nil, ErrUnsupportedSelector
	}
}

func rowHasUnknown(m interface {
	Cols() int
	At(int, int) float64
}, row int) bool {
	for c := 0; c < m.Cols(); c++ {
		if domain.IsUnknown(m.At(row, c)) {
			return true
		}
	}
	return false
}

func (t *Table) evalDiscrete(f *filter.Discrete) (*filter.RowSet, error) {
	col, _, err := t.ColumnFloat(f.Column)
	if err != nil {
		return nil, err
	}
	v, err := t.columnVar(f.Column)
	if err != nil {
		return nil, err
	}

	codes := make([]float64, 0, len(f.Values))
	for _, val := range f.Values {
		code, err := coerceCode(v, val)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	// Membership across the value set is a logical OR within the condition.
	sel := filter.NewRowSet(len(col))
	for i, c := range col {
		for _, code := range codes {
			if c == code { // false for the missing sentinel
				sel.Add(i)
				break
			}
		}
	}
	return sel, nil
}

func coerceCode(v domain.Variable, val any) (float64, error) {
	if f, ok := val.(float64); ok {
		return f, nil
	}
	if i, ok := val.(int); ok {
		return float64(i), nil
	}
	encoded, err := v.ToVal(val)
	if err != nil {
		return 0, err
	}
	f, ok := encoded.(float64)
	if !ok {
		return 0, &ErrColumnType{Variable: v.Name(), Want: "numeric"}
	}
	return f, nil
}

func (t *Table) evalStringList(f *filter.StringList) (*filter.RowSet, error) {
	col, err := t.stringColumn(f.Column)
	if err != nil {
		return nil, err
	}
	vals := f.Values
	if !f.CaseSensitive {
		vals = make([]string, len(f.Values))
		for i, v := range f.Values {
			vals[i] = filter.Fold(v)
		}
	}
	sel := filter.NewRowSet(len(col))
	for i, cell := range col {
		if cell == nil {
			continue
		}
		s := *cell
		if !f.CaseSensitive {
			s = filter.Fold(s)
		}
		for _, v := range vals {
			if s == v {
				sel.Add(i)
				break
			}
		}
	}
	return sel, nil
}

func (t *Table) evalContinuous(f *filter.Continuous) (*filter.RowSet, error) {
	if f.Oper.IsPattern() {
		return nil, &filter.ErrInvalidOperator{Oper: f.Oper, Kind: "continuous"}
	}
	col, _, err := t.ColumnFloat(f.Column)
	if err != nil {
		return nil, err
	}
	sel := filter.NewRowSet(len(col))
	for i, v := range col {
		// Comparisons against the missing sentinel are false, never true.
		if domain.IsUnknown(v) {
			continue
		}
		match := false
		switch f.Oper {
		case filter.OpEqual:
			match = v == f.Min
		case filter.OpNotEqual:
			match = v != f.Min
		case filter.OpLess:
			match = v < f.Min
		case filter.OpLessEqual:
			match = v <= f.Min
		case filter.OpGreater:
			match = v > f.Min
		case filter.OpGreaterEqual:
			match = v >= f.Min
		case filter.OpBetween:
			match = v >= f.Min && v <= f.Max
		case filter.OpOutside:
			match = v < f.Min || v > f.Max
		default:
			return nil, &filter.ErrInvalidOperator{Oper: f.Oper, Kind: "continuous"}
		}
		if match {
			sel.Add(i)
		}
	}
	return sel, nil
}

func (t *Table) evalString(f *filter.String) (*filter.RowSet, error) {
	col, err := t.stringColumn(f.Column)
	if err != nil {
		return nil, err
	}
	fmin, fmax := f.Min, f.Max
	if !f.CaseSensitive {
		fmin = filter.Fold(fmin)
		if f.Oper.Binary() {
			fmax = filter.Fold(fmax)
		}
	}
	sel := filter.NewRowSet(len(col))
	for i, cell := range col {
		if cell == nil {
			continue
		}
		s := *cell
		if !f.CaseSensitive {
			s = filter.Fold(s)
		}
		match := false
		switch f.Oper {
		case filter.OpEqual:
			match = s == fmin
		case filter.OpNotEqual:
			match = s != fmin
		case filter.OpLess:
			match = s < fmin
		case filter.OpLessEqual:
			match = s <= fmin
		case filter.OpGreater:
			match = s > fmin
		case filter.OpGreaterEqual:
			match = s >= fmin
		case filter.OpBetween:
			match = s >= fmin && s <= fmax
		case filter.OpOutside:
			match = s < fmin || s > fmax
		case filter.OpContains:
			match = strings.Contains(s, fmin)
		case filter.OpBeginsWith:
			match = strings.HasPrefix(s, fmin)
		case filter.OpEndsWith:
			match = strings.HasSuffix(s, fmin)
		default:
			return nil, &filter.ErrInvalidOperator{Oper: f.Oper, Kind: "string"}
		}
		if match {
			sel.Add(i)
		}
	}
	return sel, nil
}

func (t *Table) evalSameValue(f *filter.SameValue) (*filter.RowSet, error) {
	v, err := t.columnVar(f.Column)
	if err != nil {
		return nil, err
	}
	var sel *filter.RowSet
	if v.IsPrimitive() {
		code, err := coerceCode(v, f.Value)
		if err != nil {
			return nil, err
		}
		col, _, err := t.ColumnFloat(f.Column)
		if err != nil {
			return nil, err
		}
		sel = filter.NewRowSet(len(col))
		for i, c := range col {
			if c == code {
				sel.Add(i)
			}
		}
	} else {
		col, err := t.stringColumn(f.Column)
		if err != nil {
			return nil, err
		}
		want, ok := f.Value.(string)
		if !ok {
			return nil, &ErrColumnType{Variable: v.Name(), Want: "text"}
		}
		sel = filter.NewRowSet(len(col))
		for i, cell := range col {
			if cell != nil && *cell == want {
				sel.Add(i)
			}
		}
	}
	if f.Negate {
		sel.Negate()
	}
	return sel, nil
}

func (t *Table) columnVar(id any) (domain.Variable, error) {
	a, err := t.domain.Resolve(id)
	if err != nil {
		return nil, err
	}
	return t.domain.Var(a)
}

// stringColumn gathers a text column; nil marks a missing cell. Fails for
// columns whose variable is not text-valued or whose cells hold non-text
// values.
func (t *Table) stringColumn(id any) ([]*string, error) {
	a, err := t.domain.Resolve(id)
	if err != nil {
		return nil, err
	}
	v, err := t.domain.Var(a)
	if err != nil {
		return nil, err
	}
	if v.IsPrimitive() || a.Place != domain.PlaceMeta {
		return nil, &ErrColumnType{Variable: v.Name(), Want: "text"}
	}
	out := make([]*string, t.Len())
	for i := range out {
		cell := t.metas.At(i, a.Index)
		if cell == nil {
			continue
		}
		s, ok := cell.(string)
		if !ok {
			return nil, &ErrColumnType{Variable: v.Name(), Want: "text"}
		}
		out[i] = &s
	}
	return out, nil
}

// FilterValues returns a table of the rows matching the predicate tree,
// built by row selection over this table's storage.
func (t *Table) FilterValues(cond filter.Condition) (*Table, error) {
	sel, err := t.EvalFilter(cond)
	if err != nil {
		t.log().LogFilter(0, t.Len(), err)
		return nil, err
	}
	t.log().LogFilter(sel.Cardinality(), t.Len(), nil)
	return FromTableRows(t, RowMask(sel.Mask()))
}

// FilterIsDefined returns the rows with no missing value across the
// feature columns (or their complement when negate is true).
func (t *Table) FilterIsDefined(negate bool) (*Table, error) {
	return t.FilterValues(&filter.IsDefined{Negate: negate})
}

// FilterHasClass returns the rows with no missing value across the class
// columns (or their complement when negate is true).
func (t *Table) FilterHasClass(negate bool) (*Table, error) {
	return t.FilterValues(&filter.HasClass{Negate: negate})
}

// FilterRandom returns a random subset of deterministic size: prob < 1 is
// a fraction of the row count, prob >= 1 an absolute row count.
func (t *Table) FilterRandom(prob float64, negate bool) (*Table, error) {
	return t.FilterValues(&filter.Random{Prob: prob, Negate: negate})
}

// FilterSameValue returns the rows whose column equals the given value.
func (t *Table) FilterSameValue(col any, value any, negate bool) (*Table, error) {
	return t.FilterValues(&filter.SameValue{Column: col, Value: value, Negate: negate})
}
