// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opGaussian      = "Gaussian"
	opLU            = "LU"
	opFactorize     = "Factorize"
	opSolveFactored = "SolveFactored"
	opTridiagonal   = "Tridiagonal"
)

// workingCopy validates a (and b when withRHS) for a dense n×n solve and
// returns a private *Dense copy of a.
//
// Implementation:
//   - Stage 1: nil check, then empty-system check (Rows()==0 is legal for
//     foreign Matrix implementations and is reported as ErrEmptySystem).
//   - Stage 2: square shape and len(b) == n.
//   - Stage 3: materialize via matrix.ToDense and scan for NaN/±Inf under policy.
func workingCopy(op string, a matrix.Matrix, b []float64, withRHS bool, o Options) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(op, err)
	}
	if a.Rows() == 0 || a.Cols() == 0 {
		return nil, solveErrorf(op, ErrEmptySystem)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, solveErrorf(op, err)
	}
	n := a.Rows()
	if withRHS {
		if err := matrix.ValidateVecLen(b, n); err != nil {
			return nil, solveErrorf(op, err)
		}
	}
	d, err := matrix.ToDense(a)
	if err != nil {
		return nil, solveErrorf(op, err)
	}
	if !o.validateFinite {
		return d, nil
	}
	if err = ValidateFiniteDense(d); err != nil {
		return nil, solveErrorf(op, err)
	}
	if withRHS {
		if err = matrix.ValidateFinite(b); err != nil {
			return nil, solveErrorf(op, err)
		}
	}

	return d, nil
}

// ValidateFiniteDense reports the first NaN/±Inf element of d.
// Complexity: O(r*c).
func ValidateFiniteDense(d *matrix.Dense) error {
	var err error
	d.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = fmt.Errorf("ValidateFiniteDense: [%d,%d]: %w", i, j, matrix.ErrNaNInf)

			return false
		}

		return true
	})

	return err
}

// nanVector returns a length-n vector filled with NaN, the marker for
// "no solution" in tagged results.
func nanVector(n int) []float64 {
	x := make([]float64, n)
	matrix.FillVector(x, math.NaN())

	return x
}
