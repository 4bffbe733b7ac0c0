// Package diagnostics measures how good a numerical answer is.
//
// What:
//
//   - ComputeErrors: maximum absolute error and mean relative error (percent)
//     between reference and approximate samples. Relative terms are
//     accumulated with Kahan compensated summation and only where the
//     reference magnitude exceeds RelativeErrorFloor.
//   - Residual: max-norm of A·x − b for a computed solution.
//   - Agreement: largest relative difference between two solution vectors,
//     used to compare the Gaussian and LU paths.
//   - Condition: 2-norm condition number of a square matrix (gonum).
//   - FactorResidual: max-norm of L·U − A for a factorization.
//
// None of the functions mutate their inputs or log.
package diagnostics
