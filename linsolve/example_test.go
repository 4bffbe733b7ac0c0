package linsolve_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

// ExampleGaussian solves a 2×2 system that needs a row exchange.
func ExampleGaussian() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{1, 1},
	})
	res, _ := linsolve.Gaussian(A, []float64{1, 2})
	fmt.Printf("x = [%.3f %.3f], swaps = %v\n", res.X[0], res.X[1], res.Swaps)
	// Output:
	// x = [1.000 1.000], swaps = [1 1]
}

// ExampleLU shows the tagged result for a singular matrix.
func ExampleLU() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	res, err := linsolve.LU(A, []float64{3, 6})
	fmt.Println(errors.Is(err, linsolve.ErrSingular), res.X)
	// Output:
	// true [NaN NaN]
}

// ExampleTridiagonal runs the Thomas sweep on a small diagonally dominant system.
func ExampleTridiagonal() {
	x, _ := linsolve.Tridiagonal(
		[]float64{0, 1, 1}, // sub (a[0] ignored)
		[]float64{2, 2, 2}, // diagonal
		[]float64{1, 1, 0}, // super (c[n-1] ignored)
		[]float64{3, 4, 3},
	)
	fmt.Printf("%.3f\n", x)
	// Output:
	// [1.000 1.000 1.000]
}
