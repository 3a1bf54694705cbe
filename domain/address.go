package domain

import "fmt"

// Place identifies the physical container a column lives in.
type Place uint8

const (
	// PlaceFeature addresses the feature (attribute) container.
	PlaceFeature Place = iota
	// PlaceClass addresses the class (target) container.
	PlaceClass
	// PlaceMeta addresses the metadata container.
	PlaceMeta
)

// String returns the string representation of the Place.
func (p Place) String() string {
	switch p {
	case PlaceFeature:
		return "feature"
	case PlaceClass:
		return "class"
	case PlaceMeta:
		return "meta"
	default:
		return "unknown"
	}
}

// Address identifies one logical column as a (container, column) pair.
//
// The legacy signed encoding used by external interfaces — non-negative
// indices below the attribute count address features, larger ones address
// classes, negative ones address metas — only appears at the boundary, via
// Signed and AddressFromSigned.
type Address struct {
	Place Place
	Index int
}

// Signed returns the legacy signed encoding of the address for a domain
// with nAttrs attributes.
func (a Address) Signed(nAttrs int) int {
	switch a.Place {
	case PlaceFeature:
		return a.Index
	case PlaceClass:
		return nAttrs + a.Index
	default:
		return -a.Index - 1
	}
}

// AddressFromSigned decodes the legacy signed encoding for a domain with
// nAttrs attributes.
func AddressFromSigned(s, nAttrs int) Address {
	switch {
	case s < 0:
		return Address{Place: PlaceMeta, Index: -s - 1}
	case s < nAttrs:
		return Address{Place: PlaceFeature, Index: s}
	default:
		return Address{Place: PlaceClass, Index: s - nAttrs}
	}
}

// ErrAddressOutOfRange indicates an address outside the domain's bounds.
type ErrAddressOutOfRange struct {
	Address Address
	Limit   int
}

func (e *ErrAddressOutOfRange) Error() string {
	return fmt.Sprintf("column address out of range: %s %d (limit %d)", e.Address.Place, e.Address.Index, e.Limit)
}

// ErrUnknownColumn indicates a column identifier that cannot be resolved
// in the domain.
type ErrUnknownColumn struct {
	Identifier any
}

func (e *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("unknown column: %v", e.Identifier)
}
