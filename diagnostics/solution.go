// SPDX-License-Identifier: MIT

package diagnostics

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
	"gonum.org/v1/gonum/mat"
)

// Residual returns max_i |(A·x − b)_i|.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrLengthMismatch.
// Complexity: O(r*c).
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, diagErrorf(opResidual, err)
	}
	if len(b) != len(ax) {
		return 0, lengthErrorf(opResidual, len(ax), len(b))
	}

	var worst, d float64
	for i := range ax {
		d = math.Abs(ax[i] - b[i])
		if d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}

// Agreement returns the largest relative difference between x1 and x2:
// max_i |x1[i]−x2[i]| / max(|x1[i]|, |x2[i]|). Components whose magnitudes
// are both at or below RelativeErrorFloor contribute their absolute difference.
// A NaN component in either vector yields NaN.
//
// Errors: ErrLengthMismatch.
// Complexity: O(n).
func Agreement(x1, x2 []float64) (float64, error) {
	if len(x1) != len(x2) {
		return 0, lengthErrorf(opAgreement, len(x1), len(x2))
	}

	var worst, d, scale float64
	for i := range x1 {
		if math.IsNaN(x1[i]) || math.IsNaN(x2[i]) {
			return math.NaN(), nil
		}
		d = math.Abs(x1[i] - x2[i])
		scale = math.Max(math.Abs(x1[i]), math.Abs(x2[i]))
		if scale > RelativeErrorFloor {
			d /= scale
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// Condition returns the 2-norm condition number κ₂(A) = σ_max/σ_min.
// A singular matrix yields +Inf.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrEmptyInput.
// Complexity: O(n³) (SVD).
func Condition(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, diagErrorf(opCondition, err)
	}
	n := a.Rows()
	if n == 0 {
		return 0, diagErrorf(opCondition, ErrEmptyInput)
	}
	d, err := matrix.ToDense(a)
	if err != nil {
		return 0, diagErrorf(opCondition, err)
	}
	flat := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		flat = append(flat, d.RawRow(i)...)
	}

	return mat.Cond(mat.NewDense(n, n, flat), 2), nil
}

// FactorResidual returns max |(L·U − A)(i,j)|, the reconstruction error of
// a factorization.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n³).
func FactorResidual(a, l, u matrix.Matrix) (float64, error) {
	lu, err := matrix.Mul(l, u)
	if err != nil {
		return 0, diagErrorf(opFactorResidual, err)
	}
	d, err := matrix.MaxAbsDiff(lu, a)
	if err != nil {
		return 0, diagErrorf(opFactorResidual, err)
	}

	return d, nil
}
