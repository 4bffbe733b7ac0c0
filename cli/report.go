package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/numlab/polyfit"
)

const reportPrec = 6

func writeTerms(w io.Writer, terms []polyfit.Term, s polyfit.Sums) {
	fmt.Fprintln(w, "Intermediate values and sums")
	fmt.Fprintf(w, "| %-12s | %-12s | %-12s | %-12s | %-12s | %-12s | %-12s |\n",
		"x", "x^2", "x^3", "x^4", "y", "x*y", "x^2*y")
	for _, t := range terms {
		fmt.Fprintf(w, "| %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f |\n",
			t.X, t.Xx, t.Xxx, t.Xxxx, t.Y, t.Xy, t.Xxy)
	}
	fmt.Fprintf(w, "| %-12s | %-12s | %-12s | %-12s | %-12s | %-12s | %-12s |\n",
		"Σx", "Σx^2", "Σx^3", "Σx^4", "Σy", "Σx*y", "Σx^2*y")
	fmt.Fprintf(w, "| %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f | %-12.4f |\n",
		s.Sx, s.Sxx, s.Sxxx, s.Sxxxx, s.Sy, s.Sxy, s.Sxxy)
	fmt.Fprintf(w, "n = %d\n", s.N)
}

func writeVector(w io.Writer, name string, v []float64) {
	fmt.Fprintf(w, "%s:\n", name)
	for _, x := range v {
		fmt.Fprintf(w, "%.*f ", reportPrec, x)
	}
	fmt.Fprintln(w)
}

func writeFit(w io.Writer, r *polyfit.Result) {
	writeVector(w, "Solution (Gauss)", r.Gauss.X)
	fmt.Fprintf(w, "Augmented matrix (Gauss):\n%s", r.Gauss.Augmented.Format(reportPrec))
	if r.LU != nil {
		if r.LU.L != nil {
			fmt.Fprintf(w, "L (LU):\n%s", r.LU.L.Format(reportPrec))
		}
		if r.LU.U != nil {
			fmt.Fprintf(w, "U (LU):\n%s", r.LU.U.Format(reportPrec))
		}
		writeVector(w, "Solution (LU)", r.LU.X)
	}
	fmt.Fprintf(w, "%v\n", r.Polynomial())
	fmt.Fprintf(w, "max error: %.4f\n", r.Errors.MaxAbs)
	if math.IsNaN(r.Errors.MeanRelativePercent) {
		fmt.Fprintln(w, "mean relative error: undefined (no reference above floor)")
	} else {
		fmt.Fprintf(w, "mean relative error: %.4f%%\n", r.Errors.MeanRelativePercent)
	}
	fmt.Fprintf(w, "residual |A·a - b|: %.3e\n", r.Residual)
	fmt.Fprintf(w, "factor residual |L·U - A|: %.3e\n", r.FactorResidual)
	fmt.Fprintf(w, "Gauss/LU agreement: %.3e\n", r.Agreement)
	fmt.Fprintf(w, "condition number: %.3e\n", r.Condition)
}
