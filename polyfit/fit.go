// SPDX-License-Identifier: MIT

package polyfit

import (
	"errors"
	"math"

	"github.com/katalvlaran/numlab/diagnostics"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

// Result collects everything a fit produces.
//
//   - Normal/RHS are the normal equations that were solved.
//   - Gauss is the primary solution; its X are the coefficients.
//   - LU is the second path. When it hits a singular pivot, LUErr holds the
//     error and LU carries NaN coefficients with partial factors.
//   - Errors compares ys with the Gaussian polynomial at every xs.
//   - Agreement is the max relative difference between both paths (NaN if LU failed).
//   - Residual is max |A·a − b| for the Gaussian coefficients.
//   - FactorResidual is max |L·U − A| (NaN if LU failed).
//   - Condition is κ₂ of the normal matrix.
type Result struct {
	Degree         int
	Sums           Sums
	Normal         *matrix.Dense
	RHS            []float64
	Gauss          *linsolve.GaussResult
	LU             *linsolve.LUResult
	LUErr          error
	Errors         diagnostics.Errors
	Agreement      float64
	Residual       float64
	FactorResidual float64
	Condition      float64
}

// Polynomial returns the Gaussian-path coefficients.
func (r *Result) Polynomial() Polynomial {
	return Polynomial(matrix.CopyVector(r.Gauss.X))
}

// Fit computes the least-squares polynomial of the given degree through
// (xs[i], ys[i]). opts are forwarded to both solvers.
//
// Implementation:
//   - Stage 1: accumulate power sums and build the normal equations.
//   - Stage 2: solve by Gaussian elimination; a failure here fails the fit.
//   - Stage 3: solve by LU; a singular pivot is recorded, not returned.
//   - Stage 4: diagnostics (approximation errors, residuals, path agreement, condition).
//
// Errors:
//   - ErrLengthMismatch, ErrNoPoints, ErrUnsupportedDegree.
//   - linsolve.ErrSingular from the Gaussian path.
//
// Complexity: O(n) for the sums plus O(d³) for the solves.
func Fit(xs, ys []float64, degree int, opts ...linsolve.Option) (*Result, error) {
	// Stage 1: normal equations.
	sums, err := Accumulate(xs, ys)
	if err != nil {
		return nil, fitErrorf(opFit, err)
	}
	A, rhs, err := NormalEquations(sums, degree)
	if err != nil {
		return nil, fitErrorf(opFit, err)
	}
	res := &Result{Degree: degree, Sums: sums, Normal: A, RHS: rhs}

	// Stage 2: primary path.
	if res.Gauss, err = linsolve.Gaussian(A, rhs, opts...); err != nil {
		return nil, fitErrorf(opFit, err)
	}

	// Stage 3: secondary path.
	res.LU, res.LUErr = linsolve.LU(A, rhs, opts...)
	if res.LUErr != nil && !errors.Is(res.LUErr, linsolve.ErrSingular) {
		return nil, fitErrorf(opFit, res.LUErr)
	}

	// Stage 4: diagnostics.
	if res.Errors, err = diagnostics.ComputeErrors(ys, res.Polynomial().EvalAll(xs)); err != nil {
		return nil, fitErrorf(opFit, err)
	}
	if res.Residual, err = diagnostics.Residual(A, res.Gauss.X, rhs); err != nil {
		return nil, fitErrorf(opFit, err)
	}
	res.Agreement, res.FactorResidual = math.NaN(), math.NaN()
	if res.LUErr == nil {
		if res.Agreement, err = diagnostics.Agreement(res.Gauss.X, res.LU.X); err != nil {
			return nil, fitErrorf(opFit, err)
		}
		if res.FactorResidual, err = diagnostics.FactorResidual(A, res.LU.L, res.LU.U); err != nil {
			return nil, fitErrorf(opFit, err)
		}
	}
	if res.Condition, err = diagnostics.Condition(A); err != nil {
		return nil, fitErrorf(opFit, err)
	}

	return res, nil
}
