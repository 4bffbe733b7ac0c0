// SPDX-License-Identifier: MIT

// Package linsolve: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linsolve

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude below which a pivot or a
	// tridiagonal denominator is treated as zero.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateFinite rejects NaN/±Inf inputs before solving.
	DefaultValidateFinite = true
)

const panicPivotToleranceInvalid = "linsolve: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol       float64 // DefaultPivotTolerance
	validateFinite bool    // DefaultValidateFinite
}

// WithPivotTolerance sets the near-zero threshold for pivots and
// denominators. A value of 0 only rejects exact zeros.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateFinite toggles the NaN/±Inf input scan.
func WithValidateFinite(on bool) Option {
	return func(o *Options) { o.validateFinite = on }
}

// PivotTolerance reports the effective tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ResolveOptions applies opts over the defaults and returns the result.
// Useful for callers that report the effective policy.
func ResolveOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateFinite: DefaultValidateFinite,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// nearZero reports whether v is unusable as a pivot/denominator under tol.
// Exact zeros are always rejected, even with tol == 0.
func (o Options) nearZero(v float64) bool {
	return v == 0 || math.Abs(v) < o.pivotTol
}
