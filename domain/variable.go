package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Unknown is the missing-value sentinel stored in numeric cells.
var Unknown = math.NaN()

// IsUnknown reports whether a numeric cell holds the missing-value sentinel.
func IsUnknown(v float64) bool {
	return math.IsNaN(v)
}

// SourceRow is a single addressable row of some table, as seen by a compute
// function deriving a variable's value from a foreign domain.
type SourceRow interface {
	// Domain returns the domain the row is expressed in.
	Domain() *Domain
	// Float returns the numeric value of the given variable in this row.
	Float(id any) (float64, error)
}

// ComputeFunc derives a variable's value from a row of a different domain.
// The second return is false when no computation is possible for the row.
type ComputeFunc func(row SourceRow) (float64, bool)

// Variable describes one column of a domain: a stable identity, a name and
// the contract for converting external values into the table's internal
// representation.
type Variable interface {
	// Name returns the human-readable name.
	Name() string
	// ID returns the stable identity used for cross-domain lookup.
	ID() uuid.UUID
	// IsPrimitive reports whether values are stored as float64 codes.
	// Non-primitive variables live in the metadata container.
	IsPrimitive() bool
	// ToVal converts an external value into the internal representation:
	// a float64 code for primitive variables, the value itself for string
	// variables.
	ToVal(v any) (any, error)
	// Compute derives this variable's value from a row of a different
	// domain. The second return is false when no computation is possible.
	Compute(row SourceRow) (float64, bool)
}

// ErrBadValue indicates a value that cannot be converted to a variable's
// internal representation.
type ErrBadValue struct {
	Variable string
	Value    any
}

func (e *ErrBadValue) Error() string {
	return fmt.Sprintf("invalid value for variable %q: %v", e.Variable, e.Value)
}

type base struct {
	name    string
	id      uuid.UUID
	compute ComputeFunc
}

func (b *base) Name() string  { return b.name }
func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Compute(row SourceRow) (float64, bool) {
	if b.compute == nil {
		return Unknown, false
	}
	return b.compute(row)
}

// SetCompute installs a function deriving this variable's value from rows
// of foreign domains. Used by the domain converter for variables that do
// not exist verbatim in a source domain.
func (b *base) SetCompute(fn ComputeFunc) { b.compute = fn }

// Continuous is a real-valued variable.
type Continuous struct {
	base
}

// NewContinuous creates a continuous variable.
func NewContinuous(name string) *Continuous {
	return &Continuous{base{name: name, id: uuid.New()}}
}

func (v *Continuous) IsPrimitive() bool { return true }

func (v *Continuous) ToVal(val any) (any, error) {
	switch x := val.(type) {
	case nil:
		return Unknown, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		if x == "" || x == "?" {
			return Unknown, nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, &ErrBadValue{Variable: v.name, Value: val}
		}
		return f, nil
	default:
		return nil, &ErrBadValue{Variable: v.name, Value: val}
	}
}

// Discrete is a categorical variable whose values are stored as whole
// number codes indexing into Values.
type Discrete struct {
	base

	// Values holds the symbolic names, in code order.
	Values []string
}

// NewDiscrete creates a discrete variable with the given value names.
func NewDiscrete(name string, values []string) *Discrete {
	return &Discrete{base: base{name: name, id: uuid.New()}, Values: values}
}

func (v *Discrete) IsPrimitive() bool { return true }

func (v *Discrete) ToVal(val any) (any, error) {
	switch x := val.(type) {
	case nil:
		return Unknown, nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case string:
		if x == "" || x == "?" {
			return Unknown, nil
		}
		for i, s := range v.Values {
			if s == x {
				return float64(i), nil
			}
		}
		return nil, &ErrBadValue{Variable: v.name, Value: val}
	default:
		return nil, &ErrBadValue{Variable: v.name, Value: val}
	}
}

// ValName returns the symbolic name for a code, or "?" for the missing
// sentinel.
func (v *Discrete) ValName(code float64) string {
	if IsUnknown(code) {
		return "?"
	}
	i := int(code)
	if i < 0 || i >= len(v.Values) {
		return "?"
	}
	return v.Values[i]
}

// String is a text-valued variable stored in the metadata container.
type String struct {
	base
}

// NewString creates a string variable.
func NewString(name string) *String {
	return &String{base{name: name, id: uuid.New()}}
}

func (v *String) IsPrimitive() bool { return false }

func (v *String) ToVal(val any) (any, error) {
	switch x := val.(type) {
	case nil:
		return nil, nil
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return nil, &ErrBadValue{Variable: v.name, Value: val}
	}
}
