// Package tabgo provides an in-memory columnar data table for Go.
//
// A Table stores labeled, heterogeneous tabular data in four co-indexed
// containers — features, targets, weights and metadata — under a Domain
// describing the columns, and exposes database-like operations over them:
// unified row/column addressing, derived tables over arbitrary subsets or
// conversions of a source table's domain, row mutation with transactional
// rollback, and a composable predicate-filtering engine that selects rows
// without copying the numeric payload when avoidable.
//
// # Quick Start
//
//	age := domain.NewContinuous("age")
//	cls := domain.NewDiscrete("risk", []string{"low", "high"})
//	d, _ := domain.New([]domain.Variable{age}, []domain.Variable{cls}, nil)
//
//	t, _ := tabgo.FromArrays(d,
//	    [][]float64{{23}, {42}, {61}},
//	    [][]float64{{0}, {0}, {1}},
//	    nil, nil,
//	)
//
//	older, _ := t.FilterValues(&filter.Continuous{
//	    Column: "age", Oper: filter.OpGreater, Min: 30,
//	})
//
// # Views and Copies
//
// Selecting rows from a table yields a view: the result aliases the
// source's storage, and writes through the view are visible in the
// source. Call EnsureOwned before in-place mutation when isolation is
// required. Domain conversion and computed columns always produce owned
// storage.
//
// # Mutation
//
// Extend, ExtendRows, Insert and Append follow a resize-and-rollback
// protocol: on any populate failure the pre-operation row count and
// contents are restored before the error is returned, so all containers
// hold the same row count at every observable point.
//
// The table is a single-owner structure: no operation blocks, and no
// concurrency control is provided.
package tabgo
