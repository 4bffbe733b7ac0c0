// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that knots and values differ in length.
	ErrLengthMismatch = errors.New("spline: knots and values differ in length")

	// ErrTooFewKnots indicates fewer than two knots.
	ErrTooFewKnots = errors.New("spline: at least two knots required")

	// ErrNotIncreasing indicates knots that are not strictly increasing (or not finite).
	ErrNotIncreasing = errors.New("spline: knots must be strictly increasing")

	// ErrInvalidRange indicates an empty or non-finite sampling interval.
	ErrInvalidRange = errors.New("spline: invalid range")

	// ErrInvalidCount indicates a non-positive segment/sample count.
	ErrInvalidCount = errors.New("spline: count must be > 0")
)

// Operation name constants for unified error wrapping.
const (
	opBuild     = "Build"
	opTabulate  = "Tabulate"
	opMaxErrors = "MaxErrors"
	opSample    = "Sample"
)

// splineErrorf wraps err with an operation tag, preserving it via %w.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
