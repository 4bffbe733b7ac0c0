// Package matrix provides the dense storage used by the numlab solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix backed by a single contiguous []float64
//     (offset = i*cols + j). Its shape is fixed at construction.
//   - Vector helpers (NewVector, CopyVector) over plain []float64.
//   - Central validators (ValidateSquare, ValidateVecLen, ...) shared by
//     every kernel so guard logic stays consistent.
//   - A few kernels needed around linear solves: Mul, MatVec, Transpose,
//     and the comparison helpers Sub, MaxAbsDiff, AllClose.
//
// Public accessors never panic: At/Set return ErrOutOfRange, and Set rejects
// NaN/±Inf under the default numeric policy. Allocation of shapes that cannot
// be backed by memory fails with *AllocationError (matches ErrAllocation).
package matrix
