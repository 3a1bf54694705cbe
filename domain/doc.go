// Package domain describes the column space of a data table.
//
// A Domain is an ordered, immutable partition of variables into attributes
// (features), class variables (targets) and metas. Variables carry a stable
// identity, a name and a value-encoding contract (ToVal). The domain
// resolves every supported column identifier — address, legacy signed
// index, variable or name — to a canonical Address naming one column of
// one physical container.
//
// Conversions between domains are assembled once per (source, destination)
// pair: each destination column is either a direct copy of a source column,
// computed from full source rows, or absent and filled with the
// missing-value sentinel.
package domain
