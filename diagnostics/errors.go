// SPDX-License-Identifier: MIT

package diagnostics

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that paired sample vectors differ in length.
	ErrLengthMismatch = errors.New("diagnostics: length mismatch")

	// ErrEmptyInput indicates that a measurement was requested on no data.
	ErrEmptyInput = errors.New("diagnostics: empty input")
)

// Operation name constants for unified error wrapping.
const (
	opComputeErrors  = "ComputeErrors"
	opResidual       = "Residual"
	opAgreement      = "Agreement"
	opCondition      = "Condition"
	opFactorResidual = "FactorResidual"
)

// diagErrorf wraps err with an operation tag, preserving it via %w.
func diagErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthErrorf reports the two offending lengths.
func lengthErrorf(tag string, n1, n2 int) error {
	return fmt.Errorf("%s: len %d vs %d: %w", tag, n1, n2, ErrLengthMismatch)
}
