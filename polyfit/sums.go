// SPDX-License-Identifier: MIT

package polyfit

import (
	"fmt"

	"github.com/unixpickle/num-analysis/kahan"
)

// Sums holds the power sums that define the degree-1 and degree-2 normal equations.
type Sums struct {
	N     int
	Sx    float64
	Sy    float64
	Sxx   float64
	Sxy   float64
	Sxxx  float64
	Sxxxx float64
	Sxxy  float64
}

// Term is one row of the intermediate table: the powers and products of a
// single sample that feed the sums.
type Term struct {
	X, Xx, Xxx, Xxxx float64
	Y, Xy, Xxy       float64
}

func termOf(x, y float64) Term {
	xx := x * x
	xxx := xx * x

	return Term{X: x, Xx: xx, Xxx: xxx, Xxxx: xxx * x, Y: y, Xy: x * y, Xxy: xx * y}
}

// Terms returns the per-sample table rows. Extra elements of the longer
// slice are ignored.
// Complexity: O(n).
func Terms(xs, ys []float64) []Term {
	n := min(len(xs), len(ys))
	out := make([]Term, n)
	for i := 0; i < n; i++ {
		out[i] = termOf(xs[i], ys[i])
	}

	return out
}

// Accumulate computes all power sums in one pass with compensated summation.
//
// Errors: ErrLengthMismatch, ErrNoPoints.
// Complexity: O(n).
func Accumulate(xs, ys []float64) (Sums, error) {
	if len(xs) != len(ys) {
		return Sums{}, fmt.Errorf("%s: len %d vs %d: %w", opAccumulate, len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return Sums{}, fitErrorf(opAccumulate, ErrNoPoints)
	}

	sx, sy := kahan.NewSummer64(), kahan.NewSummer64()
	sxx, sxy := kahan.NewSummer64(), kahan.NewSummer64()
	sxxx, sxxxx, sxxy := kahan.NewSummer64(), kahan.NewSummer64(), kahan.NewSummer64()
	var t Term
	for i := range xs {
		t = termOf(xs[i], ys[i])
		sx.Add(t.X)
		sy.Add(t.Y)
		sxx.Add(t.Xx)
		sxy.Add(t.Xy)
		sxxx.Add(t.Xxx)
		sxxxx.Add(t.Xxxx)
		sxxy.Add(t.Xxy)
	}

	return Sums{
		N:     len(xs),
		Sx:    sx.Sum(),
		Sy:    sy.Sum(),
		Sxx:   sxx.Sum(),
		Sxy:   sxy.Sum(),
		Sxxx:  sxxx.Sum(),
		Sxxxx: sxxxx.Sum(),
		Sxxy:  sxxy.Sum(),
	}, nil
}
