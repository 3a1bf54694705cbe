// Package filter defines predicate trees over data table columns and the
// Roaring Bitmap-backed row selections they evaluate to.
//
// A predicate tree is either an atomic condition (discrete membership,
// string membership, numeric or string comparison, text pattern) or a
// Values node combining children by conjunction or disjunction. Trees are
// immutable once built; evaluation against a table is purely functional
// and produces a RowSet of the table's length.
package filter
