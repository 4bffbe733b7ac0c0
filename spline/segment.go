// SPDX-License-Identifier: MIT

package spline

import "fmt"

// Segment is one cubic piece a + b·dx + c·dx² + d·dx³ with dx = x − X0.
type Segment struct {
	A, B, C, D float64
	X0         float64
}

// Eval returns the segment value at x (Horner form).
func (s Segment) Eval(x float64) float64 {
	dx := x - s.X0

	return s.A + dx*(s.B+dx*(s.C+dx*s.D))
}

// Derivative returns S'(x) = b + 2c·dx + 3d·dx².
func (s Segment) Derivative(x float64) float64 {
	dx := x - s.X0

	return s.B + dx*(2*s.C+dx*3*s.D)
}

// SecondDerivative returns S''(x) = 2c + 6d·dx.
func (s Segment) SecondDerivative(x float64) float64 {
	return 2*s.C + 6*s.D*(x-s.X0)
}

// String renders the segment as a polynomial in (x − X0) with five decimals.
func (s Segment) String() string {
	return fmt.Sprintf("%.5f + %.5f(x - %.5f) + %.5f(x - %.5f)^2 + %.5f(x - %.5f)^3",
		s.A, s.B, s.X0, s.C, s.X0, s.D, s.X0)
}
