// SPDX-License-Identifier: MIT

package diagnostics

import (
	"math"

	"github.com/unixpickle/num-analysis/kahan"
)

// RelativeErrorFloor is the reference magnitude at or below which a sample
// is excluded from the mean relative error.
const RelativeErrorFloor = 1e-9

// Errors summarizes the deviation of an approximation from its reference.
//
//   - MaxAbs is max_i |yTrue[i] − yApprox[i]| over all samples.
//   - MeanRelativePercent is 100 · mean(|yTrue−yApprox| / |yTrue|) over the
//     samples with |yTrue| > RelativeErrorFloor; NaN when none qualify.
//   - Counted is the number of samples that entered the relative mean.
type Errors struct {
	MaxAbs              float64
	MeanRelativePercent float64
	Counted             int
}

// ComputeErrors compares yApprox against yTrue element by element.
//
// Implementation:
//   - Stage 1: lengths must match (empty inputs give MaxAbs 0 and NaN mean).
//   - Stage 2: track the running max of |Δ|; feed |Δ|/|yTrue| into a Kahan
//     summer for samples whose reference clears RelativeErrorFloor.
//   - Stage 3: average and scale to percent.
//
// A NaN difference propagates into MaxAbs.
//
// Errors: ErrLengthMismatch.
// Complexity: O(n).
func ComputeErrors(yTrue, yApprox []float64) (Errors, error) {
	if len(yTrue) != len(yApprox) {
		return Errors{}, lengthErrorf(opComputeErrors, len(yTrue), len(yApprox))
	}

	var res Errors
	rel := kahan.NewSummer64()
	var diff, ref float64
	for i := range yTrue {
		diff = math.Abs(yTrue[i] - yApprox[i])
		if diff > res.MaxAbs || math.IsNaN(diff) {
			res.MaxAbs = diff
		}
		ref = math.Abs(yTrue[i])
		if ref > RelativeErrorFloor {
			rel.Add(diff / ref)
			res.Counted++
		}
	}

	if res.Counted == 0 {
		res.MeanRelativePercent = math.NaN()
	} else {
		res.MeanRelativePercent = rel.Sum() / float64(res.Counted) * 100
	}

	return res, nil
}
