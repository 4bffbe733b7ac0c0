// Package numlab is a small numerical-methods toolkit built around three
// linear-system solvers and the two classic workloads that need them.
//
// 🚀 What is numlab?
//
//	A deterministic, dependency-light library that brings together:
//		• Dense storage: row-major matrices, vectors & validators
//		• Dense solvers: Gaussian elimination (partial pivoting), Doolittle LU
//		• Tridiagonal solver: Thomas algorithm, O(n)
//		• Diagnostics: max/mean-relative error (Kahan), residuals, κ₂
//		• Least squares: degree-1/2 fits over the normal equations
//		• Splines: natural cubic interpolation with error tables
//
// ✨ Why numlab?
//
//   - Honest failures – singular pivots come back as typed errors that name
//     the pivot, together with NaN-tagged partial results
//   - Inputs are never mutated – feed the same A and b to every path
//   - Pure Go – no cgo
//
// Packages:
//
//	matrix/      : Dense, vectors, validators, Mul/MatVec/Transpose, AllClose
//	linsolve/    : Gaussian, LU (Factorize, SolveFactored), Tridiagonal
//	diagnostics/ : ComputeErrors, Residual, Agreement, Condition, FactorResidual
//	polyfit/     : power sums, normal equations, Fit
//	spline/      : Build, Eval, MaxErrors, Tabulate, Sample
//	dataset/     : x,y CSV loader and plot-table writer
//	cli/         : cobra/viper command tree behind cmd/numlab
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	res, err := linsolve.Gaussian(A, []float64{3, 4})
//	// res.X == [1 1]
//
//	go install github.com/katalvlaran/numlab/cmd/numlab@latest
package numlab
