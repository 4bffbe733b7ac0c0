// SPDX-License-Identifier: MIT

package polyfit

import (
	"strconv"
	"strings"
)

// Polynomial holds coefficients in ascending order: p[0] + p[1]·x + p[2]·x² + …
type Polynomial []float64

// Eval returns p(x) by Horner's rule. An empty polynomial evaluates to 0.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}

	return y
}

// EvalAll evaluates p at every x.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}

	return out
}

// Degree returns len(p) − 1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// String renders "y = a0 + a1*x + a2*x^2" with six decimals.
func (p Polynomial) String() string {
	var b strings.Builder
	b.WriteString("y = ")
	for i, c := range p {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(c, 'f', 6, 64))
		switch {
		case i == 1:
			b.WriteString("*x")
		case i > 1:
			b.WriteString("*x^")
			b.WriteString(strconv.Itoa(i))
		}
	}

	return b.String()
}
