// SPDX-License-Identifier: MIT

package polyfit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDegree indicates a degree other than 1 or 2.
	ErrUnsupportedDegree = errors.New("polyfit: unsupported degree")

	// ErrLengthMismatch indicates that xs and ys differ in length.
	ErrLengthMismatch = errors.New("polyfit: length mismatch")

	// ErrNoPoints indicates an empty sample.
	ErrNoPoints = errors.New("polyfit: no points")
)

// Operation name constants for unified error wrapping.
const (
	opAccumulate      = "Accumulate"
	opNormalEquations = "NormalEquations"
	opFit             = "Fit"
)

// fitErrorf wraps err with an operation tag, preserving it via %w.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
