package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/dataset"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/polyfit"
)

const (
	keyData   = "data"
	keyDegree = "degree"
)

// IllConditioned is the condition number above which a fit is logged as suspect.
const IllConditioned = 1e12

var degreeNames = map[int]string{
	1: "Linear fit (y = a0 + a1*x)",
	2: "Quadratic fit (y = a0 + a1*x + a2*x^2)",
}

func (a *app) fitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Least-squares polynomial fit of x,y points from a CSV file.",
		Args:  cobra.NoArgs,
		RunE:  a.runFit,
	}
	cmd.Flags().StringP(keyData, "d", "", "CSV file with one x,y pair per line")
	cmd.Flags().Int(keyDegree, 0, "Polynomial degree: 1, 2, or 0 for both")

	return cmd
}

func (a *app) runFit(_ *cobra.Command, _ []string) error {
	path := a.v.GetString(keyData)
	if path == "" {
		return fmt.Errorf("--%s is required: %w", keyData, ErrInvalidFlag)
	}
	var degrees []int
	switch d := a.v.GetInt(keyDegree); d {
	case 0:
		degrees = []int{1, 2}
	case 1, 2:
		degrees = []int{d}
	default:
		return fmt.Errorf("--%s=%d: %w", keyDegree, d, ErrInvalidFlag)
	}

	pts, err := dataset.Load(path)
	if pts != nil {
		for _, s := range pts.Skipped {
			a.log.Warn("skipping malformed line", "line", s.Line, "text", s.Text, "reason", s.Err)
		}
	}
	if err != nil {
		return err
	}
	a.log.Info("loaded points", "path", path, "points", pts.Len(), "skipped", len(pts.Skipped))

	sums, err := polyfit.Accumulate(pts.X, pts.Y)
	if err != nil {
		return err
	}
	writeTerms(a.out, polyfit.Terms(pts.X, pts.Y), sums)

	failed := 0
	for _, d := range degrees {
		fmt.Fprintf(a.out, "\n%s\n", degreeNames[d])
		res, err := polyfit.Fit(pts.X, pts.Y, d, a.opts...)
		if errors.Is(err, linsolve.ErrSingular) {
			a.log.Error("normal equations are singular", "degree", d, "err", err)
			failed++
			continue
		}
		if err != nil {
			return err
		}
		if res.LUErr != nil {
			a.log.Warn("LU path failed", "degree", d, "err", res.LUErr)
		}
		if res.Condition > IllConditioned {
			a.log.Warn("ill-conditioned normal equations", "degree", d, "cond", res.Condition)
		}
		writeFit(a.out, res)
	}
	if failed == len(degrees) {
		return fmt.Errorf("fit %s: %w", path, linsolve.ErrSingular)
	}

	return nil
}
