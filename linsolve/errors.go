// SPDX-License-Identifier: MIT
// Package linsolve: sentinel errors and the typed errors that carry the
// offending indices. Tests and callers match with errors.Is / errors.As.

package linsolve

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular indicates a zero or near-zero pivot in the Gaussian or LU path.
	ErrSingular = errors.New("linsolve: singular matrix")

	// ErrDivideByZero indicates a vanishing denominator in the Thomas sweep.
	ErrDivideByZero = errors.New("linsolve: division by zero")

	// ErrEmptySystem indicates a system of size zero.
	ErrEmptySystem = errors.New("linsolve: empty system")
)

// SingularMatrixError names the pivot that stopped a dense solve.
// Step is the elimination/factorization step; Row and Col locate the pivot.
type SingularMatrixError struct {
	Op    string
	Step  int
	Row   int
	Col   int
	Value float64
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("linsolve: %s: singular matrix: pivot [%d,%d] = %g at step %d",
		e.Op, e.Row, e.Col, e.Value, e.Step)
}

// Is reports whether target is ErrSingular.
func (e *SingularMatrixError) Is(target error) bool { return target == ErrSingular }

// DivideByZeroError names the tridiagonal row whose denominator vanished.
type DivideByZeroError struct {
	Op    string
	Row   int
	Value float64
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("linsolve: %s: division by zero: denominator at row %d = %g",
		e.Op, e.Row, e.Value)
}

// Is reports whether target is ErrDivideByZero.
func (e *DivideByZeroError) Is(target error) bool { return target == ErrDivideByZero }

// solveErrorf wraps err with an operation tag, preserving it via %w.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
