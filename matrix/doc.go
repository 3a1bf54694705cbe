// Package matrix provides column-major containers with explicit storage
// ownership.
//
// Every container is tagged as either owned (exclusive storage) or a view
// (storage aliased from another container). Views share column slices with
// their source, either directly for contiguous row ranges or through a
// row-index indirection for arbitrary row subsets, so writes through a view
// are visible in the source. EnsureOwned converts a view into an owned copy
// and must precede any mutation that requires isolation.
package matrix
