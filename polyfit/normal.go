// SPDX-License-Identifier: MIT

package polyfit

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// NormalEquations builds A·a = b for the least-squares polynomial of the
// given degree.
//
//	degree 1:  [ n   Σx  ] [a0]   [ Σy  ]
//	           [ Σx  Σx² ] [a1] = [ Σxy ]
//
//	degree 2:  [ n    Σx   Σx² ] [a0]   [ Σy   ]
//	           [ Σx   Σx²  Σx³ ] [a1] = [ Σxy  ]
//	           [ Σx²  Σx³  Σx⁴ ] [a2]   [ Σx²y ]
//
// Errors: ErrUnsupportedDegree.
func NormalEquations(s Sums, degree int) (*matrix.Dense, []float64, error) {
	var rows [][]float64
	var rhs []float64
	n := float64(s.N)
	switch degree {
	case 1:
		rows = [][]float64{
			{n, s.Sx},
			{s.Sx, s.Sxx},
		}
		rhs = []float64{s.Sy, s.Sxy}
	case 2:
		rows = [][]float64{
			{n, s.Sx, s.Sxx},
			{s.Sx, s.Sxx, s.Sxxx},
			{s.Sxx, s.Sxxx, s.Sxxxx},
		}
		rhs = []float64{s.Sy, s.Sxy, s.Sxxy}
	default:
		return nil, nil, fmt.Errorf("%s: degree %d: %w", opNormalEquations, degree, ErrUnsupportedDegree)
	}

	A, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, fitErrorf(opNormalEquations, err)
	}

	return A, rhs, nil
}
