// Package polyfit fits low-degree polynomials by least squares.
//
// The fit goes through the normal equations built from power sums
// (n, Σx, Σy, Σx², Σxy, Σx³, Σx⁴, Σx²y). Each system is solved twice,
// by linsolve.Gaussian and by linsolve.LU, and the two coefficient vectors
// are compared so that an ill-conditioned fit shows up as disagreement.
//
// Supported degrees: 1 (y = a0 + a1·x) and 2 (y = a0 + a1·x + a2·x²).
package polyfit
