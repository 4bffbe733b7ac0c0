// Package linsolve solves small dense and tridiagonal linear systems.
//
// What:
//
//   - Gaussian: row reduction of the augmented matrix [A | b] with partial
//     pivoting, followed by back substitution. The final augmented matrix and
//     the pivot rows are returned for diagnostics.
//   - LU: Doolittle factorization A = L·U (unit lower L, upper U, no pivoting),
//     then forward substitution L·y = b and back substitution U·x = y.
//   - Tridiagonal: the Thomas algorithm, O(n), for diagonally dominant
//     systems such as the natural cubic spline equations.
//
// Contracts:
//
//   - Inputs are never mutated; every solver works on private copies, so the
//     same A and b can be fed to both dense paths.
//   - A zero or near-zero pivot (|p| < PivotTolerance, default 1e-12) makes the
//     dense solvers return a tagged result: the solution vector is NaN-filled,
//     the partial factors (or partially reduced augmented matrix) are kept,
//     and the error is a *SingularMatrixError naming the offending pivot.
//   - A vanishing denominator in the Thomas sweep is a caller precondition
//     violation reported as *DivideByZeroError; no solution is returned.
//
// Complexity:
//
//   - Gaussian, LU: O(n³) time, O(n²) memory.
//   - Tridiagonal:  O(n) time and memory.
//
// Errors:
//
//   - ErrSingular, ErrDivideByZero, ErrEmptySystem, plus matrix.ErrNilMatrix,
//     matrix.ErrDimensionMismatch and matrix.ErrNaNInf from input validation.
package linsolve
