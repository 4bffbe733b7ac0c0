package dataset

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrMalformedInput marks a data line that could not be read as an x,y pair.
	ErrMalformedInput = errors.New("dataset: malformed input")

	// ErrNoPoints indicates that a source held no valid pair.
	ErrNoPoints = errors.New("dataset: no data points")

	// ErrColumnMismatch indicates table columns of different lengths.
	ErrColumnMismatch = errors.New("dataset: column length mismatch")

	errNoComma  = errors.New("missing comma")
	errNotFinite = errors.New("value is not finite")
)

// MalformedInputError describes one skipped line.
type MalformedInputError struct {
	Line int    // 1-based line number
	Text string // raw line, trimmed
	Err  error  // reason
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("dataset: line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the reason.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

func wrapErr(msg string, err error) error {
	return xerrors.Errorf("%s: %w", msg, err)
}
