package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Domain is an ordered, immutable partition of variables into attributes
// (features), class variables (targets) and metas. It defines the column
// layout of every table constructed under it and resolves column
// identifiers to addresses.
type Domain struct {
	attributes []Variable
	classVars  []Variable
	metas      []Variable

	anonymous bool

	byName map[string]Address
	byID   map[uuid.UUID]Address

	conversions map[*Domain]*Conversion
}

// ErrDuplicateName indicates two variables in one domain sharing a name.
type ErrDuplicateName struct {
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("duplicate variable name: %q", e.Name)
}

// New creates a domain from the given variable groups. Variable names must
// be unique across all groups.
func New(attributes, classVars, metas []Variable) (*Domain, error) {
	d := &Domain{
		attributes:  attributes,
		classVars:   classVars,
		metas:       metas,
		byName:      make(map[string]Address),
		byID:        make(map[uuid.UUID]Address),
		conversions: make(map[*Domain]*Conversion),
	}
	add := func(vars []Variable, place Place) error {
		for i, v := range vars {
			if _, ok := d.byName[v.Name()]; ok {
				return &ErrDuplicateName{Name: v.Name()}
			}
			a := Address{Place: place, Index: i}
			d.byName[v.Name()] = a
			d.byID[v.ID()] = a
		}
		return nil
	}
	if err := add(attributes, PlaceFeature); err != nil {
		return nil, err
	}
	if err := add(classVars, PlaceClass); err != nil {
		return nil, err
	}
	if err := add(metas, PlaceMeta); err != nil {
		return nil, err
	}
	return d, nil
}

// Attributes returns the ordered attribute variables.
func (d *Domain) Attributes() []Variable { return d.attributes }

// ClassVars returns the ordered class variables.
func (d *Domain) ClassVars() []Variable { return d.classVars }

// Metas returns the ordered meta variables.
func (d *Domain) Metas() []Variable { return d.metas }

// Variables returns attributes followed by class variables, the iteration
// order of the non-meta column space.
func (d *Domain) Variables() []Variable {
	out := make([]Variable, 0, len(d.attributes)+len(d.classVars))
	out = append(out, d.attributes...)
	return append(out, d.classVars...)
}

// NAttrs returns the number of attribute columns.
func (d *Domain) NAttrs() int { return len(d.attributes) }

// NClasses returns the number of class columns.
func (d *Domain) NClasses() int { return len(d.classVars) }

// NMetas returns the number of meta columns.
func (d *Domain) NMetas() int { return len(d.metas) }

// ClassVar returns the single class variable, or nil when the domain has
// zero or several.
func (d *Domain) ClassVar() Variable {
	if len(d.classVars) == 1 {
		return d.classVars[0]
	}
	return nil
}

// IsAnonymous reports whether the domain was inferred from raw arrays.
// Tables under any anonymous domain of matching shape are mutually
// convertible without per-variable identity mapping.
func (d *Domain) IsAnonymous() bool { return d.anonymous }

// MarkAnonymous tags the domain as inferred from raw arrays.
func (d *Domain) MarkAnonymous() { d.anonymous = true }

// Var returns the variable at the given address.
func (d *Domain) Var(a Address) (Variable, error) {
	group := d.group(a.Place)
	if a.Index < 0 || a.Index >= len(group) {
		return nil, &ErrAddressOutOfRange{Address: a, Limit: len(group)}
	}
	return group[a.Index], nil
}

func (d *Domain) group(p Place) []Variable {
	switch p {
	case PlaceFeature:
		return d.attributes
	case PlaceClass:
		return d.classVars
	default:
		return d.metas
	}
}

// Resolve maps a column identifier — an Address, a legacy signed index, a
// variable, or a name — to the canonical address.
func (d *Domain) Resolve(id any) (Address, error) {
	switch x := id.(type) {
	case Address:
		if _, err := d.Var(x); err != nil {
			return Address{}, err
		}
		return x, nil
	case int:
		a := AddressFromSigned(x, len(d.attributes))
		if _, err := d.Var(a); err != nil {
			return Address{}, err
		}
		return a, nil
	case Variable:
		if a, ok := d.byID[x.ID()]; ok {
			return a, nil
		}
		return Address{}, &ErrUnknownColumn{Identifier: x.Name()}
	case string:
		if a, ok := d.byName[x]; ok {
			return a, nil
		}
		return Address{}, &ErrUnknownColumn{Identifier: x}
	default:
		return Address{}, &ErrUnknownColumn{Identifier: id}
	}
}

// Index returns the address of a variable by identity, reporting whether
// the variable belongs to the domain.
func (d *Domain) Index(v Variable) (Address, bool) {
	a, ok := d.byID[v.ID()]
	return a, ok
}

// SameShape reports whether two domains have identical group widths.
func (d *Domain) SameShape(other *Domain) bool {
	return len(d.attributes) == len(other.attributes) &&
		len(d.classVars) == len(other.classVars) &&
		len(d.metas) == len(other.metas)
}
