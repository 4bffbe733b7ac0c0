package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/dataset"
	"github.com/katalvlaran/numlab/spline"
)

const (
	keyFrom       = "from"
	keyTo         = "to"
	keySegments   = "segments"
	keySamples    = "samples"
	keyFunc       = "func"
	keyPlot       = "plot"
	keyNodes      = "nodes"
	keyPlotPoints = "plot-points"
)

// Functions lists the built-in functions the spline command can tabulate.
var Functions = map[string]spline.Func{
	"lab":   func(x float64) float64 { return 12.0 / 13.0 * math.Cos(11.0/7.0*x) },
	"sin":   math.Sin,
	"exp":   math.Exp,
	"runge": func(x float64) float64 { return 1 / (1 + 25*x*x) },
}

func functionNames() string {
	names := make([]string, 0, len(Functions))
	for k := range Functions {
		names = append(names, k)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func (a *app) splineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spline",
		Short: "Natural cubic spline through a tabulated function or CSV points.",
		Args:  cobra.NoArgs,
		RunE:  a.runSpline,
	}
	f := cmd.Flags()
	f.Float64(keyFrom, 1, "Left end of the tabulation interval")
	f.Float64(keyTo, 2.5, "Right end of the tabulation interval")
	f.Int(keySegments, 5, "Number of equal segments")
	f.Int(keySamples, 10000, "Error samples per segment")
	f.String(keyFunc, "lab", "Function to tabulate ("+functionNames()+")")
	f.StringP(keyData, "d", "", "CSV file with knots (overrides --func tabulation)")
	f.String(keyPlot, "", "Write x, f(x), S(x) samples to this file")
	f.String(keyNodes, "", "Write the knots to this file")
	f.Int(keyPlotPoints, 1000, "Number of plot intervals")

	return cmd
}

func (a *app) runSpline(_ *cobra.Command, _ []string) error {
	name := a.v.GetString(keyFunc)
	fn, ok := Functions[name]
	if !ok {
		return fmt.Errorf("--%s=%q (want one of %s): %w", keyFunc, name, functionNames(), ErrInvalidFlag)
	}

	xs, ys, err := a.knots(fn)
	if err != nil {
		return err
	}
	s, err := spline.Build(xs, ys, a.opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nCubic splines:")
	for i, seg := range s.Segments() {
		fmt.Fprintf(a.out, "Interval [%.5f, %.5f]:\n", xs[i], xs[i+1])
		fmt.Fprintf(a.out, "S%d(x) = %v\n", i, seg)
	}

	// errors against f only make sense when the knots came from f
	tabulated := a.v.GetString(keyData) == ""
	if tabulated {
		errs, err := s.MaxErrors(fn, a.v.GetInt(keySamples))
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "\nMaximum interpolation errors:")
		for i, e := range errs {
			fmt.Fprintf(a.out, "On [%.5f, %.5f] max error: %e\n", xs[i], xs[i+1], e)
		}
	}

	if path := a.v.GetString(keyPlot); path != "" {
		px, py, err := s.Sample(a.v.GetInt(keyPlotPoints))
		if err != nil {
			return err
		}
		if tabulated {
			exact := make([]float64, len(px))
			for i, x := range px {
				exact[i] = fn(x)
			}
			err = dataset.SaveTable(path, []string{"x", "Analytical", "Spline"}, px, exact, py)
		} else {
			err = dataset.SaveTable(path, []string{"x", "Spline"}, px, py)
		}
		if err != nil {
			return err
		}
		a.log.Info("wrote plot data", "path", path, "rows", len(px))
	}
	if path := a.v.GetString(keyNodes); path != "" {
		if err := dataset.SaveTable(path, []string{"x", "f(x)"}, xs, ys); err != nil {
			return err
		}
		a.log.Info("wrote nodes", "path", path, "rows", len(xs))
	}

	return nil
}

// knots returns the interpolation nodes: CSV points when --data is set,
// otherwise fn tabulated on [--from, --to].
func (a *app) knots(fn spline.Func) (xs, ys []float64, err error) {
	if path := a.v.GetString(keyData); path != "" {
		pts, err := dataset.Load(path)
		if pts != nil {
			for _, s := range pts.Skipped {
				a.log.Warn("skipping malformed line", "line", s.Line, "text", s.Text, "reason", s.Err)
			}
		}
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("loaded knots", "path", path, "points", pts.Len())

		return pts.X, pts.Y, nil
	}

	from, to := a.v.GetFloat64(keyFrom), a.v.GetFloat64(keyTo)
	segments := a.v.GetInt(keySegments)
	xs, ys, err = spline.Tabulate(fn, from, to, segments)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(a.out, "Tabulating %s on [%.2f, %.2f] with h = %.2f:\n",
		a.v.GetString(keyFunc), from, to, (to-from)/float64(segments))
	for i := range xs {
		fmt.Fprintf(a.out, "x = %.5f,\tf(x) = %.5f\n", xs[i], ys[i])
	}

	return xs, ys, nil
}
