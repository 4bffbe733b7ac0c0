// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

// Spline is an immutable natural cubic spline.
type Spline struct {
	knots []float64
	segs  []Segment
}

// Build constructs the natural cubic spline through (xs[i], ys[i]).
// xs and ys are not modified; opts are forwarded to the Thomas solver.
//
// Implementation:
//   - Stage 1: validate lengths, knot count, strict monotonicity, finite values.
//   - Stage 2: widths h[i] = x[i+1] − x[i]; natural rows 0 and n are
//     identity rows with zero RHS; interior rows carry
//     (h[i-1], 2(h[i-1]+h[i]), h[i]) and
//     3((y[i+1]−y[i])/h[i] − (y[i]−y[i-1])/h[i-1]).
//   - Stage 3: solve for c with linsolve.Tridiagonal.
//   - Stage 4: a = y[i], b = (y[i+1]−y[i])/h[i] − h[i](c[i+1]+2c[i])/3,
//     d = (c[i+1]−c[i])/(3h[i]).
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewKnots, ErrNotIncreasing, matrix.ErrNaNInf.
//   - Solver errors from linsolve (wrapped).
//
// Complexity: O(n) time and memory.
func Build(xs, ys []float64, opts ...linsolve.Option) (*Spline, error) {
	// Stage 1: validation.
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%s: %d knots, %d values: %w", opBuild, len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return nil, splineErrorf(opBuild, ErrTooFewKnots)
	}
	for i := 1; i < len(xs); i++ {
		// the negated form also rejects NaN
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%s: x[%d]=%g, x[%d]=%g: %w", opBuild, i-1, xs[i-1], i, xs[i], ErrNotIncreasing)
		}
	}
	if err := matrix.ValidateFinite(xs); err != nil {
		return nil, fmt.Errorf("%s: knots: %w", opBuild, err)
	}
	if err := matrix.ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("%s: values: %w", opBuild, err)
	}

	// Stage 2: assembly.
	n := len(xs) - 1
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = xs[i+1] - xs[i]
	}
	sys := linsolve.TridiagonalSystem{
		Sub:   make([]float64, n+1),
		Diag:  make([]float64, n+1),
		Super: make([]float64, n+1),
		RHS:   make([]float64, n+1),
	}
	sys.Diag[0], sys.Diag[n] = 1, 1
	for i := 1; i < n; i++ {
		sys.Sub[i] = h[i-1]
		sys.Diag[i] = 2 * (h[i-1] + h[i])
		sys.Super[i] = h[i]
		sys.RHS[i] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	// Stage 3: second-derivative coefficients.
	c, err := sys.Solve(opts...)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	// Stage 4: per-segment coefficients.
	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		segs[i] = Segment{
			A:  ys[i],
			B:  (ys[i+1]-ys[i])/h[i] - h[i]*(c[i+1]+2*c[i])/3,
			C:  c[i],
			D:  (c[i+1] - c[i]) / (3 * h[i]),
			X0: xs[i],
		}
	}

	return &Spline{knots: matrix.CopyVector(xs), segs: segs}, nil
}

// Segments returns a copy of the cubic pieces, one per interval.
func (s *Spline) Segments() []Segment {
	out := make([]Segment, len(s.segs))
	copy(out, s.segs)

	return out
}

// Knots returns a copy of the knot abscissae.
func (s *Spline) Knots() []float64 { return matrix.CopyVector(s.knots) }

// Len returns the number of segments.
func (s *Spline) Len() int { return len(s.segs) }

// Domain returns the first and last knot.
func (s *Spline) Domain() (from, to float64) { return s.knots[0], s.knots[len(s.knots)-1] }

// locate returns the segment covering x: the last i with knots[i] <= x,
// clamped so points outside the knot range use the end segments.
func (s *Spline) locate(x float64) int {
	i := sort.Search(len(s.knots), func(k int) bool { return s.knots[k] > x }) - 1
	if i < 0 {
		return 0
	}
	if i >= len(s.segs) {
		return len(s.segs) - 1
	}

	return i
}

// Eval returns S(x). Outside [x0, xn] the end cubic is extrapolated.
func (s *Spline) Eval(x float64) float64 { return s.segs[s.locate(x)].Eval(x) }

// Derivative returns S'(x).
func (s *Spline) Derivative(x float64) float64 { return s.segs[s.locate(x)].Derivative(x) }

// SecondDerivative returns S''(x).
func (s *Spline) SecondDerivative(x float64) float64 {
	return s.segs[s.locate(x)].SecondDerivative(x)
}
