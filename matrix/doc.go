// Package matrix offers the dense row-major storage behind simplex tableaux.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked r×c float64 buffer with a finite-value policy.
//   - No-copy row views for hot loops and deep copies (Clone, ToSlices) for
//     snapshots that must outlive later mutations.
//   - Gauss–Jordan row operations (ScaleRow, AddScaledRow, Pivot) built on
//     gonum/floats kernels.
//
// All public accessors return sentinel errors (see errors.go) instead of
// panicking on bad indices or non-finite values.
package matrix
