// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// GaussResult is the outcome of Gaussian.
//
//   - X is the solution; NaN-filled when elimination stopped on a singular pivot.
//   - Augmented is the n×(n+1) matrix [A | b] after elimination (upper
//     triangular on success, partially reduced otherwise).
//   - Swaps[k] is the row exchanged with row k at elimination step k
//     (Swaps[k] == k means no exchange). On failure it covers only the
//     steps that ran, including the failing one.
type GaussResult struct {
	X         []float64
	Augmented *matrix.Dense
	Swaps     []int
}

// Gaussian solves A·x = b by Gaussian elimination with partial pivoting.
// Neither a nor b is modified.
//
// Implementation:
//   - Stage 1: validate shape/finiteness and build the augmented matrix [A | b].
//   - Stage 2: for each column i pick the row r ≥ i with the largest |a[r][i]|
//     (ties keep the first), swap it into place, and stop with a
//     *SingularMatrixError when the pivot is near zero.
//   - Stage 3: eliminate below the pivot: row_r -= (a[r][i]/a[i][i]) · row_i
//     for columns i..n (the RHS column included).
//   - Stage 4: back substitution from the last row upward.
//
// Errors:
//   - ErrEmptySystem, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//   - *SingularMatrixError (matches ErrSingular). The result is still returned,
//     carrying NaN X and the partially reduced Augmented matrix.
//
// Complexity: O(n³) time, O(n²) memory.
func Gaussian(a matrix.Matrix, b []float64, opts ...Option) (*GaussResult, error) {
	o := gatherOptions(opts...)

	// Stage 1: private working copy and augmented layout.
	src, err := workingCopy(opGaussian, a, b, true, o)
	if err != nil {
		return nil, err
	}
	n := src.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, solveErrorf(opGaussian, err)
	}
	var i, j, k, r int
	var row []float64
	for i = 0; i < n; i++ {
		row = aug.RawRow(i)
		copy(row[:n], src.RawRow(i))
		row[n] = b[i]
	}

	swaps := make([]int, 0, n)
	var maxAbs, v, pivot, factor float64
	var pivotRow []float64
	for i = 0; i < n; i++ {
		// Stage 2: partial pivoting on column i.
		r = i
		maxAbs = math.Abs(aug.RawRow(i)[i])
		for k = i + 1; k < n; k++ {
			v = math.Abs(aug.RawRow(k)[i])
			if v > maxAbs {
				maxAbs, r = v, k
			}
		}
		swaps = append(swaps, r)
		if err = aug.SwapRows(i, r); err != nil {
			return nil, solveErrorf(opGaussian, err)
		}
		pivotRow = aug.RawRow(i)
		pivot = pivotRow[i]
		if o.nearZero(pivot) {
			return &GaussResult{X: nanVector(n), Augmented: aug, Swaps: swaps},
				&SingularMatrixError{Op: opGaussian, Step: i, Row: i, Col: i, Value: pivot}
		}

		// Stage 3: eliminate column i below the pivot.
		for r = i + 1; r < n; r++ {
			row = aug.RawRow(r)
			factor = row[i] / pivot
			if factor == 0 {
				continue
			}
			for k = i; k <= n; k++ {
				row[k] -= factor * pivotRow[k]
			}
		}
	}

	// Stage 4: back substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		row = aug.RawRow(i)
		sum = row[n]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}

	return &GaussResult{X: x, Augmented: aug, Swaps: swaps}, nil
}
