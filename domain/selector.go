package domain

import "fmt"

// SelectorKind enumerates the closed set of column selector shapes.
type SelectorKind uint8

const (
	// SelAll selects every column of the domain unchanged.
	SelAll SelectorKind = iota
	// SelMask selects variables by a boolean mask over the domain's
	// non-meta variables.
	SelMask
	// SelRange selects variables by a half-open index range with a step.
	SelRange
	// SelList selects columns by an explicit list of identifiers.
	SelList
	// SelSingle selects one column by identifier.
	SelSingle
)

// Selector denotes a subset of a domain's columns. Construct with All,
// Mask, Range, List or Single; the zero value is All.
type Selector struct {
	kind              SelectorKind
	mask              []bool
	start, stop, step int
	ids               []any
	id                any
}

// All selects every column.
func All() Selector { return Selector{kind: SelAll} }

// Mask selects the non-meta variables whose mask entry is true. The mask
// length must equal the number of non-meta variables.
func Mask(m []bool) Selector { return Selector{kind: SelMask, mask: m} }

// Range selects the non-meta variables with indices start, start+step, ...
// below stop. Step must be positive.
func Range(start, stop, step int) Selector {
	return Selector{kind: SelRange, start: start, stop: stop, step: step}
}

// List selects columns by identifier (name, variable, signed index or
// address), in the given order.
func List(ids ...any) Selector { return Selector{kind: SelList, ids: ids} }

// Single selects one column by identifier.
func Single(id any) Selector { return Selector{kind: SelSingle, id: id} }

// Kind returns the selector's shape.
func (s Selector) Kind() SelectorKind { return s.kind }

// ColumnRef pairs a variable with its resolved address.
type ColumnRef struct {
	Var  Variable
	Addr Address
}

// ErrMaskLength indicates a selector mask whose length does not match the
// domain's variable count.
type ErrMaskLength struct {
	Got  int
	Want int
}

func (e *ErrMaskLength) Error() string {
	return fmt.Sprintf("selector mask has %d entries, domain has %d variables", e.Got, e.Want)
}

// Columns resolves a selector to an ordered list of (variable, address)
// pairs. The second return is true when the selection is exactly the
// domain's attributes in their existing order; callers must then skip
// domain reconstruction and column remapping entirely (refs is nil in that
// case).
func (d *Domain) Columns(sel Selector) ([]ColumnRef, bool, error) {
	vars := d.Variables()
	switch sel.kind {
	case SelAll:
		return nil, true, nil

	case SelMask:
		if len(sel.mask) != len(vars) {
			return nil, false, &ErrMaskLength{Got: len(sel.mask), Want: len(vars)}
		}
		var refs []ColumnRef
		for i, keep := range sel.mask {
			if keep {
				refs = append(refs, ColumnRef{Var: vars[i], Addr: AddressFromSigned(i, len(d.attributes))})
			}
		}
		if d.isAllAttributes(refs) {
			return nil, true, nil
		}
		return refs, false, nil

	case SelRange:
		if sel.step <= 0 {
			return nil, false, &ErrUnknownColumn{Identifier: fmt.Sprintf("range step %d", sel.step)}
		}
		start, stop := sel.start, sel.stop
		if start < 0 {
			start = 0
		}
		if stop > len(vars) {
			stop = len(vars)
		}
		if start == 0 && stop == len(vars) && sel.step == 1 {
			return nil, true, nil
		}
		var refs []ColumnRef
		for i := start; i < stop; i += sel.step {
			refs = append(refs, ColumnRef{Var: vars[i], Addr: AddressFromSigned(i, len(d.attributes))})
		}
		if d.isAllAttributes(refs) {
			return nil, true, nil
		}
		return refs, false, nil

	case SelList:
		refs := make([]ColumnRef, 0, len(sel.ids))
		for _, id := range sel.ids {
			a, err := d.Resolve(id)
			if err != nil {
				return nil, false, err
			}
			v, err := d.Var(a)
			if err != nil {
				return nil, false, err
			}
			refs = append(refs, ColumnRef{Var: v, Addr: a})
		}
		if d.isAllAttributes(refs) {
			return nil, true, nil
		}
		return refs, false, nil

	default: // SelSingle
		a, err := d.Resolve(sel.id)
		if err != nil {
			return nil, false, err
		}
		v, err := d.Var(a)
		if err != nil {
			return nil, false, err
		}
		return []ColumnRef{{Var: v, Addr: a}}, false, nil
	}
}

// isAllAttributes reports whether refs denote exactly the attributes in
// their existing order.
func (d *Domain) isAllAttributes(refs []ColumnRef) bool {
	if len(refs) != len(d.attributes) {
		return false
	}
	for i, ref := range refs {
		if ref.Addr.Place != PlaceFeature || ref.Addr.Index != i {
			return false
		}
	}
	return true
}
