package tabgo

import (
	"github.com/hupe1980/tabgo/domain"
	"github.com/hupe1980/tabgo/matrix"
)

// resizeAll resizes every container to n rows. If any container fails to
// resize, the ones already resized are restored before the error is
// returned, so the row-count invariant holds on both exits.
func (t *Table) resizeAll(n int) error {
	old := t.Len()
	if old == n {
		return nil
	}
	containers := []interface {
		Resize(int) error
		Rows() int
	}{t.x, t.y, t.metas, t.w}
	for i, c := range containers {
		if err := c.Resize(n); err != nil {
			for _, done := range containers[:i] {
				_ = done.Resize(old)
			}
			return err
		}
	}
	return nil
}

func (t *Table) ownedOrErr() error {
	if t.x.IsView() || t.y.IsView() || t.metas.IsView() || t.w.IsView() {
		return matrix.ErrNotOwned
	}
	return nil
}

// SetRow writes a full row from raw external values covering the
// attribute columns followed by the class columns; metadata cells are set
// to the missing sentinel. Each value is encoded through its variable's
// contract; the first encoding failure aborts the write with columns
// before it already written (callers needing atomicity wrap this in the
// resize-and-rollback protocol, as Extend and Insert do).
func (t *Table) SetRow(i int, values []any) error {
	if i < 0 || i >= t.Len() {
		return &ErrIndexOutOfRange{Index: i, Length: t.Len()}
	}
	d := t.domain
	if len(values) != d.NAttrs()+d.NClasses() {
		return &ErrShapeMismatch{Part: "row value", Got: len(values), Want: d.NAttrs() + d.NClasses()}
	}
	vars := d.Variables()
	for c, v := range values {
		encoded, err := vars[c].ToVal(v)
		if err != nil {
			return err
		}
		f, ok := encoded.(float64)
		if !ok {
			return &ErrColumnType{Variable: vars[c].Name(), Want: "numeric"}
		}
		if c < d.NAttrs() {
			t.x.Set(i, c, f)
		} else {
			t.y.Set(i, c-d.NAttrs(), f)
		}
	}
	for m := 0; m < d.NMetas(); m++ {
		t.metas.Set(i, m, nil)
	}
	return nil
}

// convertRowFrom writes row srcIdx of src into row i of t, applying the
// conversion between the two domains.
func (t *Table) convertRowFrom(i int, src *Table, srcIdx int, conv *domain.Conversion) {
	for c, sc := range conv.Attributes {
		t.x.Set(i, c, sourceFloat(src, srcIdx, sc))
	}
	for c, sc := range conv.ClassVars {
		t.y.Set(i, c, sourceFloat(src, srcIdx, sc))
	}
	for c, sc := range conv.Metas {
		t.metas.Set(i, c, sourceValue(src, srcIdx, sc))
	}
}

// Extend appends all rows of src. Under the identical domain the
// containers are bulk-copied; under a different domain every row is
// converted through the domains' conversion mapping. When the destination
// is weighted and the source is not, new weights default to 1. On any
// failure the pre-operation row count and contents are restored before
// the error is returned.
//
// The table must own its storage; call EnsureOwned first on a view.
func (t *Table) Extend(src *Table) error {
	if err := t.ownedOrErr(); err != nil {
		return err
	}
	old := t.Len()
	added := src.Len()
	if err := t.resizeAll(old + added); err != nil {
		t.log().LogExtend(added, err)
		return err
	}

	if err := t.populateTail(old, src); err != nil {
		_ = t.resizeAll(old)
		t.log().LogExtend(added, err)
		return err
	}
	t.log().LogExtend(added, nil)
	return nil
}

func (t *Table) populateTail(old int, src *Table) error {
	if src.domain == t.domain {
		if err := t.x.BlitFrom(old, src.x); err != nil {
			return err
		}
		if err := t.y.BlitFrom(old, src.y); err != nil {
			return err
		}
		if err := t.metas.BlitFrom(old, src.metas); err != nil {
			return err
		}
		t.fillTailWeights(old, src)
		return nil
	}

	conv := t.domain.ConversionFrom(src.domain)
	for i := 0; i < src.Len(); i++ {
		t.convertRowFrom(old+i, src, i, conv)
	}
	t.fillTailWeights(old, src)
	return nil
}

func (t *Table) fillTailWeights(old int, src *Table) {
	if !t.HasWeights() {
		return
	}
	for i := old; i < t.Len(); i++ {
		if src.HasWeights() {
			t.w.Set(i, 0, src.w.At(i-old, 0))
		} else {
			t.w.Set(i, 0, 1)
		}
	}
}

// ExtendRows appends rows of raw external values, each encoded through
// the single-row write contract. On any encoding failure the
// pre-operation row count and contents are restored before the error is
// returned; partial writes are never observable after the call.
func (t *Table) ExtendRows(rows [][]any) error {
	if err := t.ownedOrErr(); err != nil {
		return err
	}
	old := t.Len()
	if err := t.resizeAll(old + len(rows)); err != nil {
		t.log().LogExtend(len(rows), err)
		return err
	}
	for i, row := range rows {
		if err := t.SetRow(old+i, row); err != nil {
			_ = t.resizeAll(old)
			t.log().LogExtend(len(rows), err)
			return err
		}
	}
	if t.HasWeights() {
		for i := old; i < t.Len(); i++ {
			t.w.Set(i, 0, 1)
		}
	}
	t.log().LogExtend(len(rows), nil)
	return nil
}

// Insert grows the table by one row at position `at`, shifting the tail
// down, and writes the given raw values into the gap. A negative `at`
// counts from the end. On a populate failure the shift is undone and the
// exact prior contents restored.
//
// The table must own its storage; call EnsureOwned first on a view.
func (t *Table) Insert(at int, values []any) error {
	if err := t.ownedOrErr(); err != nil {
		return err
	}
	n := t.Len()
	if at < 0 {
		at += n
	}
	if at < 0 || at > n {
		return &ErrIndexOutOfRange{Index: at, Length: n}
	}

	if err := t.insertGap(at); err != nil {
		t.log().LogInsert(at, err)
		return err
	}
	if err := t.SetRow(at, values); err != nil {
		t.removeGap(at)
		t.log().LogInsert(at, err)
		return err
	}
	if t.HasWeights() {
		t.w.Set(at, 0, 1)
	}
	t.log().LogInsert(at, nil)
	return nil
}

func (t *Table) insertGap(at int) error {
	containers := []interface {
		InsertRow(int) error
		RemoveRow(int) error
	}{t.x, t.y, t.metas, t.w}
	for i, c := range containers {
		if err := c.InsertRow(at); err != nil {
			for _, done := range containers[:i] {
				_ = done.RemoveRow(at)
			}
			return err
		}
	}
	return nil
}

func (t *Table) removeGap(at int) {
	_ = t.x.RemoveRow(at)
	_ = t.y.RemoveRow(at)
	_ = t.metas.RemoveRow(at)
	_ = t.w.RemoveRow(at)
}

// Append inserts a row at the end of the table.
func (t *Table) Append(values []any) error {
	return t.Insert(t.Len(), values)
}

// Delete removes the given rows from every container in lockstep. The
// result owns its storage even when the table was a view; the aliased
// source is left untouched.
func (t *Table) Delete(rows ...int) error {
	n := t.Len()
	for _, r := range rows {
		if r < 0 || r >= n {
			return &ErrIndexOutOfRange{Index: r, Length: n}
		}
	}
	t.x.DeleteRows(rows)
	t.y.DeleteRows(rows)
	t.metas.DeleteRows(rows)
	t.w.DeleteRows(rows)
	t.log().LogDelete(n - t.Len())
	return nil
}

// Clear removes all rows.
func (t *Table) Clear() {
	all := make([]int, t.Len())
	for i := range all {
		all[i] = i
	}
	_ = t.Delete(all...)
}
