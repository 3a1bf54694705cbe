package tabgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when an operation requires at least one row.
	ErrEmptyTable = errors.New("table is empty")

	// ErrUnsupportedSelector is returned for selector shapes that have no
	// defined behavior, such as multi-column single-row assignment.
	ErrUnsupportedSelector = errors.New("unsupported selector")

	// ErrRowInvalidated is returned when a row accessor is used after the
	// owning table's row count has changed.
	ErrRowInvalidated = errors.New("row accessor invalidated by table resize")

	// ErrNoWeights is returned when weights are read from an unweighted
	// table.
	ErrNoWeights = errors.New("instances in the referenced table have no weights")
)

// ErrShapeMismatch indicates that a supplied array's column count disagrees
// with the domain's variable count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Part  string
	Got   int
	Want  int
	cause error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("invalid number of %s columns: %d != %d", e.Part, e.Got, e.Want)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrRowCountMismatch indicates containers with disagreeing row counts at
// construction.
type ErrRowCountMismatch struct {
	Part string
	Got  int
	Want int
}

func (e *ErrRowCountMismatch) Error() string {
	return fmt.Sprintf("parts of data contain different numbers of rows: %s has %d, expected %d", e.Part, e.Got, e.Want)
}

// ErrIndexOutOfRange indicates a row index outside [0, N).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("row index out of range: %d (table has %d rows)", e.Index, e.Length)
}

// ErrColumnType indicates a condition or write that requires a different
// column type than the variable declares.
type ErrColumnType struct {
	Variable string
	Want     string
}

func (e *ErrColumnType) Error() string {
	return fmt.Sprintf("variable %q is not %s", e.Variable, e.Want)
}
