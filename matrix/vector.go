// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const ctxNewVector = "NewVector"

// NewVector returns a zero-filled vector of length n.
// n == 0 is legal and yields an empty, non-nil slice.
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//   - *AllocationError when n exceeds MaxElements.
//
// Complexity: O(n).
func NewVector(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewVector, n, ErrInvalidDimensions)
	}
	if n > MaxElements {
		return nil, &AllocationError{Rows: n, Cols: 1}
	}

	return make([]float64, n), nil
}

// CopyVector returns an independent copy of v with identical length.
// A nil input yields nil.
// Complexity: O(n).
func CopyVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// FillVector sets every element of v to val in place.
// Complexity: O(n).
func FillVector(v []float64, val float64) {
	for i := range v {
		v[i] = val
	}
}
