// SPDX-License-Identifier: MIT

package linsolve

import (
	"errors"

	"github.com/katalvlaran/numlab/matrix"
)

// LUResult is the outcome of LU.
// On a singular pivot X is NaN-filled and L/U hold the rows computed so far.
type LUResult struct {
	X []float64
	L *matrix.Dense
	U *matrix.Dense
}

// Factorize performs the Doolittle decomposition A = L·U without pivoting.
// L is unit lower-triangular, U is upper-triangular. a is not modified.
//
// Implementation:
//   - Stage 1: validate and copy A; L starts as the identity, U as zeros.
//   - Stage 2: for each i compute row i of U:
//     U[i][j] = A[i][j] - Σ_{k<i} L[i][k]·U[k][j], j ≥ i.
//   - Stage 3: check U[i][i]; every pivot is checked, the last one included.
//   - Stage 4: compute column i of L below the diagonal:
//     L[j][i] = (A[j][i] - Σ_{k<i} L[j][k]·U[k][i]) / U[i][i], j > i.
//
// Errors:
//   - ErrEmptySystem, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf
//     (L and U are nil).
//   - *SingularMatrixError (matches ErrSingular); L and U are returned partially filled.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a matrix.Matrix, opts ...Option) (L, U *matrix.Dense, err error) {
	o := gatherOptions(opts...)

	// Stage 1: working copy and factor storage.
	src, err := workingCopy(opFactorize, a, nil, false, o)
	if err != nil {
		return nil, nil, err
	}
	n := src.Rows()
	if L, err = matrix.NewIdentity(n); err != nil {
		return nil, nil, solveErrorf(opFactorize, err)
	}
	if U, err = matrix.NewZeros(n, n); err != nil {
		return nil, nil, solveErrorf(opFactorize, err)
	}

	var i, j, k int
	var sum float64
	var aRow, lRow, uRow []float64
	for i = 0; i < n; i++ {
		// Stage 2: row i of U.
		aRow, lRow, uRow = src.RawRow(i), L.RawRow(i), U.RawRow(i)
		for j = i; j < n; j++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				sum += lRow[k] * U.RawRow(k)[j]
			}
			uRow[j] = aRow[j] - sum
		}

		// Stage 3: pivot check.
		if o.nearZero(uRow[i]) {
			return L, U, &SingularMatrixError{Op: opLU, Step: i, Row: i, Col: i, Value: uRow[i]}
		}

		// Stage 4: column i of L.
		for j = i + 1; j < n; j++ {
			lj := L.RawRow(j)
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				sum += lj[k] * U.RawRow(k)[i]
			}
			lj[i] = (src.RawRow(j)[i] - sum) / uRow[i]
		}
	}

	return L, U, nil
}

// SolveFactored solves L·U·x = b given Doolittle factors.
// L is read as unit lower-triangular (its diagonal is not consulted);
// U is read as upper-triangular.
//
// Implementation:
//   - Stage 1: validate shapes (L, U square n×n, len(b) == n).
//   - Stage 2: forward substitution y[i] = b[i] - Σ_{j<i} L[i][j]·y[j].
//   - Stage 3: back substitution x[i] = (y[i] - Σ_{j>i} U[i][j]·x[j]) / U[i][i].
//
// Errors:
//   - ErrEmptySystem, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - *SingularMatrixError when a diagonal entry of U is near zero.
//
// Complexity: O(n²).
func SolveFactored(L, U matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape validation.
	ld, err := workingCopy(opSolveFactored, L, b, true, o)
	if err != nil {
		return nil, err
	}
	ud, err := workingCopy(opSolveFactored, U, b, true, o)
	if err != nil {
		return nil, err
	}
	n := ld.Rows()

	// Stage 2: forward substitution.
	y := make([]float64, n)
	var i, j int
	var sum float64
	var row []float64
	for i = 0; i < n; i++ {
		row = ld.RawRow(i)
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= row[j] * y[j]
		}
		y[i] = sum
	}

	// Stage 3: back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		row = ud.RawRow(i)
		if o.nearZero(row[i]) {
			return nil, &SingularMatrixError{Op: opSolveFactored, Step: i, Row: i, Col: i, Value: row[i]}
		}
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}

	return x, nil
}

// LU solves A·x = b through Factorize and SolveFactored.
// Neither a nor b is modified.
//
// Errors:
//   - Validation errors as in Factorize (result is nil).
//   - *SingularMatrixError (matches ErrSingular); the result carries NaN X
//     and the partial factors.
//
// Complexity: O(n³).
func LU(a matrix.Matrix, b []float64, opts ...Option) (*LUResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opLU, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, solveErrorf(opLU, err)
	}
	if o.validateFinite {
		if err := matrix.ValidateFinite(b); err != nil {
			return nil, solveErrorf(opLU, err)
		}
	}

	L, U, err := Factorize(a, opts...)
	if err != nil {
		var se *SingularMatrixError
		if errors.As(err, &se) {
			return &LUResult{X: nanVector(a.Rows()), L: L, U: U}, err
		}

		return nil, solveErrorf(opLU, err)
	}

	x, err := SolveFactored(L, U, b, opts...)
	if err != nil {
		return nil, solveErrorf(opLU, err)
	}

	return &LUResult{X: x, L: L, U: U}, nil
}
