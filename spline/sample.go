// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Tabulate returns segments+1 equally spaced knots over [from, to] and f at each.
//
// Errors: ErrInvalidRange (from >= to or non-finite), ErrInvalidCount.
// Complexity: O(segments).
func Tabulate(f Func, from, to float64, segments int) (xs, ys []float64, err error) {
	if err = checkRange(from, to); err != nil {
		return nil, nil, splineErrorf(opTabulate, err)
	}
	if segments <= 0 {
		return nil, nil, fmt.Errorf("%s: segments=%d: %w", opTabulate, segments, ErrInvalidCount)
	}
	step := (to - from) / float64(segments)
	xs = make([]float64, segments+1)
	ys = make([]float64, segments+1)
	for i := range xs {
		xs[i] = from + float64(i)*step
		ys[i] = f(xs[i])
	}

	return xs, ys, nil
}

// MaxErrors returns, per segment, max |S(x) − f(x)| over samples+1 equally
// spaced points of the segment's interval, endpoints included.
//
// Errors: ErrInvalidCount.
// Complexity: O(segments · samples).
func (s *Spline) MaxErrors(f Func, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%s: samples=%d: %w", opMaxErrors, samples, ErrInvalidCount)
	}
	out := make([]float64, len(s.segs))
	var step, x, e float64
	for i, seg := range s.segs {
		step = (s.knots[i+1] - s.knots[i]) / float64(samples)
		for j := 0; j <= samples; j++ {
			x = s.knots[i] + float64(j)*step
			e = math.Abs(seg.Eval(x) - f(x))
			if e > out[i] || math.IsNaN(e) {
				out[i] = e
			}
		}
	}

	return out, nil
}

// Sample returns points+1 equally spaced abscissae over the knot range and
// the spline values there, for plotting.
//
// Errors: ErrInvalidCount.
// Complexity: O(points · log n).
func (s *Spline) Sample(points int) (xs, ys []float64, err error) {
	if points <= 0 {
		return nil, nil, fmt.Errorf("%s: points=%d: %w", opSample, points, ErrInvalidCount)
	}
	from, to := s.Domain()
	step := (to - from) / float64(points)
	xs = make([]float64, points+1)
	ys = make([]float64, points+1)
	for j := range xs {
		xs[j] = from + float64(j)*step
		ys[j] = s.Eval(xs[j])
	}

	return xs, ys, nil
}

func checkRange(from, to float64) error {
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) || from >= to {
		return fmt.Errorf("[%g, %g]: %w", from, to, ErrInvalidRange)
	}

	return nil
}
