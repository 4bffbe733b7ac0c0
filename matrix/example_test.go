package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// ExampleDense_SwapRows shows the row exchange used by partial pivoting.
func ExampleDense_SwapRows() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	_ = m.SwapRows(0, 1)
	fmt.Print(m)
	// Output:
	// [3, 4]
	// [1, 2]
}

// ExampleMatVec computes A·x for a residual check.
func ExampleMatVec() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	y, _ := matrix.MatVec(A, []float64{1, 1})
	fmt.Println(y)
	// Output:
	// [3 4]
}
