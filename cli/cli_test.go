package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/cli"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFit_BothDegrees(t *testing.T) {
	path := writeFile(t, "sample.csv", "x,y\n0,1\n1,3\n2,5\n3,7\noops\n")

	out, logs, err := run(t, "fit", "--data", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Intermediate values and sums")
	assert.Contains(t, out, "Linear fit")
	assert.Contains(t, out, "Quadratic fit")
	assert.Contains(t, out, "y = 1.000000 + 2.000000*x")
	assert.Contains(t, out, "L (LU):")
	assert.Contains(t, out, "condition number:")

	assert.Contains(t, logs, "skipping malformed line")
	assert.Contains(t, logs, "line=1")
	assert.Contains(t, logs, "line=6")
}

func TestFit_SingleDegree(t *testing.T) {
	path := writeFile(t, "sample.csv", "0,0\n1,1\n2,2\n")

	out, _, err := run(t, "fit", "-d", path, "--degree", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Linear fit")
	assert.NotContains(t, out, "Quadratic fit")
}

func TestFit_SingularReported(t *testing.T) {
	path := writeFile(t, "same.csv", "2,1\n2,2\n2,3\n")

	_, logs, err := run(t, "fit", "-d", path, "--degree", "1")
	require.ErrorIs(t, err, linsolve.ErrSingular)
	assert.Contains(t, logs, "normal equations are singular")
	assert.Equal(t, 1, cli.ExitCode(err))
}

func TestFit_FlagErrors(t *testing.T) {
	_, _, err := run(t, "fit")
	require.ErrorIs(t, err, cli.ErrInvalidFlag)

	path := writeFile(t, "sample.csv", "0,0\n1,1\n")
	_, _, err = run(t, "fit", "-d", path, "--degree", "3")
	require.ErrorIs(t, err, cli.ErrInvalidFlag)

	_, _, err = run(t, "fit", "-d", path, "--pivot-tol", "-1")
	require.ErrorIs(t, err, cli.ErrInvalidFlag)

	_, _, err = run(t, "fit", "-d", path, "--log-level", "loud")
	require.ErrorIs(t, err, cli.ErrInvalidFlag)
}

func TestSpline_Defaults(t *testing.T) {
	out, _, err := run(t, "spline")
	require.NoError(t, err)

	assert.Contains(t, out, "Tabulating lab on [1.00, 2.50] with h = 0.30:")
	assert.Contains(t, out, "S4(x) = ")
	assert.NotContains(t, out, "S5(x) = ")
	assert.Equal(t, 5, strings.Count(out, " max error: "))
}

func TestSpline_WritesPlotFiles(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "plot_data.dat")
	nodes := filepath.Join(dir, "nodes.dat")

	_, logs, err := run(t, "spline", "--func", "sin", "--from", "0", "--to", "3",
		"--segments", "6", "--samples", "50", "--plot", plot, "--nodes", nodes, "--plot-points", "10")
	require.NoError(t, err)
	assert.Contains(t, logs, "wrote plot data")

	raw, err := os.ReadFile(plot)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "# x\tAnalytical\tSpline", lines[0])

	raw, err = os.ReadFile(nodes)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 8)
}

func TestSpline_FromData(t *testing.T) {
	path := writeFile(t, "knots.csv", "0,0\n1,1\n2,0\n")

	out, _, err := run(t, "spline", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "S1(x) = 1.00000 + 0.00000(x - 1.00000) + -1.50000(x - 1.00000)^2")
	assert.NotContains(t, out, "max error")
}

func TestSpline_Errors(t *testing.T) {
	_, _, err := run(t, "spline", "--func", "nope")
	require.ErrorIs(t, err, cli.ErrInvalidFlag)

	path := writeFile(t, "bad.csv", "0,0\n0,1\n")
	_, _, err = run(t, "spline", "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestSpline_EnvOverride(t *testing.T) {
	t.Setenv("NUMLAB_SEGMENTS", "3")

	out, _, err := run(t, "spline")
	require.NoError(t, err)
	assert.Contains(t, out, "S2(x) = ")
	assert.NotContains(t, out, "S3(x) = ")
}

func TestSpline_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "numlab.yaml", "segments: 2\nfunc: exp\nlog-level: debug\n")

	out, logs, err := run(t, "spline", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Tabulating exp")
	assert.NotContains(t, out, "S2(x) = ")
	assert.Contains(t, logs, "configured")

	// explicit flags win over the file
	out, _, err = run(t, "spline", "--config", cfg, "--segments", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "S3(x) = ")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 2, cli.ExitCode(&matrix.AllocationError{Rows: 1 << 30, Cols: 1 << 30}))
	assert.Equal(t, 1, cli.ExitCode(linsolve.ErrSingular))
}
