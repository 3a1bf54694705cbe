package filter

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Operator enumerates the comparison and pattern operators supported by
// range and string conditions.
type Operator uint8

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpBetween
	OpOutside
	OpContains
	OpBeginsWith
	OpEndsWith
)

// String returns the string representation of the Operator.
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpBetween:
		return "between"
	case OpOutside:
		return "outside"
	case OpContains:
		return "contains"
	case OpBeginsWith:
		return "begins-with"
	case OpEndsWith:
		return "ends-with"
	default:
		return "invalid"
	}
}

// IsPattern reports whether the operator is a text-pattern operator, valid
// only for string conditions.
func (o Operator) IsPattern() bool {
	return o == OpContains || o == OpBeginsWith || o == OpEndsWith
}

// Binary reports whether the operator takes two operands (min and max).
func (o Operator) Binary() bool {
	return o == OpBetween || o == OpOutside
}

// ErrInvalidOperator indicates an operator unsupported for a condition's
// declared type.
type ErrInvalidOperator struct {
	Oper Operator
	Kind string
}

func (e *ErrInvalidOperator) Error() string {
	return fmt.Sprintf("operator %s is not valid for %s conditions", e.Oper, e.Kind)
}

// Condition is a node of a predicate tree: an atomic condition over one
// column, or a composite Values node. Conditions are immutable once built
// and evaluated against a table to produce a row selection.
type Condition interface {
	condition()
}

// Values is the composite node: child conditions combined by conjunction
// (AND) or disjunction (OR). All children are evaluated; the fold is mask
// arithmetic, not short-circuit boolean logic.
type Values struct {
	Conditions  []Condition
	Conjunction bool
}

func (*Values) condition() {}

// And combines conditions conjunctively.
func And(conditions ...Condition) *Values {
	return &Values{Conditions: conditions, Conjunction: true}
}

// Or combines conditions disjunctively.
func Or(conditions ...Condition) *Values {
	return &Values{Conditions: conditions, Conjunction: false}
}

// Discrete selects rows whose column equals any value in a finite set.
// Values that are not numeric codes are coerced through the column
// variable's encoding.
type Discrete struct {
	Column any
	Values []any
}

func (*Discrete) condition() {}

// StringList selects rows whose text column equals any value in a set,
// optionally after Unicode case folding of both sides.
type StringList struct {
	Column        any
	Values        []string
	CaseSensitive bool
}

func (*StringList) condition() {}

// Continuous compares a numeric column against one operand (Min) or, for
// Between/Outside, against the [Min, Max] range. Comparisons against the
// missing-value sentinel are false.
type Continuous struct {
	Column any
	Oper   Operator
	Min    float64
	Max    float64
}

func (*Continuous) condition() {}

// String compares a text column against one operand (Min) or, for
// Between/Outside, the [Min, Max] range, or matches the pattern operators
// Contains, BeginsWith and EndsWith.
type String struct {
	Column        any
	Oper          Operator
	Min           string
	Max           string
	CaseSensitive bool
}

func (*String) condition() {}

// SameValue selects rows whose column equals a single value, with an
// optional negation.
type SameValue struct {
	Column any
	Value  any
	Negate bool
}

func (*SameValue) condition() {}

// IsDefined selects rows with no missing value across the feature columns.
type IsDefined struct {
	Negate bool
}

func (*IsDefined) condition() {}

// HasClass selects rows with no missing value across the class columns.
type HasClass struct {
	Negate bool
}

func (*HasClass) condition() {}

// Random selects a randomly placed subset of deterministic size: Prob < 1
// is a fraction of the row count, Prob >= 1 an absolute row count.
type Random struct {
	Prob   float64
	Negate bool
}

func (*Random) condition() {}

// Fold case-folds a string for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}
