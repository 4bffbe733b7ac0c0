package spline_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/spline"
)

// ExampleBuild interpolates three points and checks the natural boundary.
func ExampleBuild() {
	s, _ := spline.Build([]float64{0, 1, 2}, []float64{0, 1, 0})
	for i, seg := range s.Segments() {
		fmt.Printf("S%d(x) = %v\n", i, seg)
	}
	fmt.Printf("S(0.5) = %.4f, S''(2) = %.1f\n", s.Eval(0.5), s.SecondDerivative(2))
	// Output:
	// S0(x) = 0.00000 + 1.50000(x - 0.00000) + 0.00000(x - 0.00000)^2 + -0.50000(x - 0.00000)^3
	// S1(x) = 1.00000 + 0.00000(x - 1.00000) + -1.50000(x - 1.00000)^2 + 0.50000(x - 1.00000)^3
	// S(0.5) = 0.6875, S''(2) = 0.0
}
