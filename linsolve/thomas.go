// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// TridiagonalSystem describes an n×n tridiagonal system T·x = RHS.
//
//   - Sub[i]   is T[i][i-1]; Sub[0] is ignored.
//   - Diag[i]  is T[i][i].
//   - Super[i] is T[i][i+1]; Super[n-1] is ignored.
//
// All four slices have length n.
type TridiagonalSystem struct {
	Sub   []float64
	Diag  []float64
	Super []float64
	RHS   []float64
}

// Len returns the system size n.
func (s TridiagonalSystem) Len() int { return len(s.Diag) }

// Validate checks that the system is non-empty and its four bands agree in length.
// Errors: ErrEmptySystem, matrix.ErrDimensionMismatch.
func (s TridiagonalSystem) Validate() error {
	n := len(s.Diag)
	if n == 0 {
		return ErrEmptySystem
	}
	for _, band := range []struct {
		name string
		v    []float64
	}{{"sub", s.Sub}, {"super", s.Super}, {"rhs", s.RHS}} {
		if len(band.v) != n {
			return fmt.Errorf("%s band: len %d, want %d: %w", band.name, len(band.v), n, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}

// validateFinite scans only the entries the sweep reads.
func (s TridiagonalSystem) validateFinite() error {
	n := len(s.Diag)
	for _, v := range [][]float64{s.Sub[1:], s.Diag, s.Super[:n-1], s.RHS} {
		if err := matrix.ValidateFinite(v); err != nil {
			return err
		}
	}

	return nil
}

// Dense expands the system matrix into an n×n *Dense (RHS is not included).
// Useful for cross-checking the Thomas sweep against the dense solvers.
// Complexity: O(n²) memory.
func (s TridiagonalSystem) Dense() (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, solveErrorf(opTridiagonal, err)
	}
	n := len(s.Diag)
	t, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, solveErrorf(opTridiagonal, err)
	}
	var row []float64
	for i := 0; i < n; i++ {
		row = t.RawRow(i)
		if i > 0 {
			row[i-1] = s.Sub[i]
		}
		row[i] = s.Diag[i]
		if i < n-1 {
			row[i+1] = s.Super[i]
		}
	}

	return t, nil
}

// Solve runs the Thomas algorithm. The bands are not modified.
//
// Implementation:
//   - Stage 1: validate band lengths and (by policy) finiteness.
//   - Stage 2: forward sweep with m = Diag[i] - Sub[i]·c'[i-1],
//     c'[i] = Super[i]/m, d'[i] = (RHS[i] - Sub[i]·d'[i-1])/m.
//   - Stage 3: back substitution x[n-1] = d'[n-1], x[i] = d'[i] - c'[i]·x[i+1].
//
// Diagonal dominance is the caller's precondition; it is not checked.
//
// Errors:
//   - ErrEmptySystem, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//   - *DivideByZeroError (matches ErrDivideByZero) when some m is near zero.
//
// Complexity: O(n) time and memory.
func (s TridiagonalSystem) Solve(opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation.
	if err := s.Validate(); err != nil {
		return nil, solveErrorf(opTridiagonal, err)
	}
	if o.validateFinite {
		if err := s.validateFinite(); err != nil {
			return nil, solveErrorf(opTridiagonal, err)
		}
	}
	n := len(s.Diag)

	// Stage 2: forward sweep.
	cp := make([]float64, n)
	dp := make([]float64, n)
	var m float64
	for i := 0; i < n; i++ {
		m = s.Diag[i]
		if i > 0 {
			m -= s.Sub[i] * cp[i-1]
		}
		if o.nearZero(m) {
			return nil, &DivideByZeroError{Op: opTridiagonal, Row: i, Value: m}
		}
		if i < n-1 {
			cp[i] = s.Super[i] / m
		}
		if i > 0 {
			dp[i] = (s.RHS[i] - s.Sub[i]*dp[i-1]) / m
		} else {
			dp[i] = s.RHS[i] / m
		}
	}

	// Stage 3: back substitution.
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	return x, nil
}

// Tridiagonal solves the system with sub-diagonal a, diagonal b,
// super-diagonal c and right-hand side d. a[0] and c[n-1] are ignored.
// See TridiagonalSystem.Solve for errors and complexity.
func Tridiagonal(a, b, c, d []float64, opts ...Option) ([]float64, error) {
	return TridiagonalSystem{Sub: a, Diag: b, Super: c, RHS: d}.Solve(opts...)
}
