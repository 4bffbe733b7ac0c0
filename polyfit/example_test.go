package polyfit_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/polyfit"
)

// ExampleFit fits a line and reports both solution paths.
func ExampleFit() {
	res, err := polyfit.Fit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Gauss: %.4f\nLU:    %.4f\n", res.Gauss.X, res.LU.X)
	fmt.Println(res.Polynomial())
	// Output:
	// Gauss: [1.0000 2.0000]
	// LU:    [1.0000 2.0000]
	// y = 1.000000 + 2.000000*x
}
