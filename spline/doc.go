// Package spline builds natural cubic splines on top of the Thomas solver.
//
// Given knots x0 < x1 < … < xn and values y0…yn, Build assembles the
// (n+1)×(n+1) tridiagonal system for the half second derivatives c_i with
// the natural boundary c_0 = c_n = 0, solves it with linsolve.Tridiagonal and
// derives one cubic per interval:
//
//	S_i(x) = a_i + b_i·(x−x_i) + c_i·(x−x_i)² + d_i·(x−x_i)³
//
// Consecutive segments agree in value, first and second derivative at
// interior knots; the second derivative vanishes at x0 and xn.
//
// Helpers cover the usual lab workflow: Tabulate a function on an equally
// spaced grid, Build, report per-segment MaxErrors and Sample for plotting.
package spline
