package dataset_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SkipsAndReports(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"x,y",
		"# comment",
		"",
		"1.5, 2",
		"3,4,extra",
		"nocomma",
		"5,abc",
		"  -1e-3 ,7  ",
		"NaN,1",
	}, "\n")

	pts, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3, -1e-3}, pts.X)
	assert.Equal(t, []float64{2, 4, 7}, pts.Y)
	assert.Equal(t, 3, pts.Len())

	require.Len(t, pts.Skipped, 4)
	lines := make([]int, len(pts.Skipped))
	for i, s := range pts.Skipped {
		lines[i] = s.Line
		require.ErrorIs(t, s, dataset.ErrMalformedInput)
	}
	assert.Equal(t, []int{1, 6, 7, 9}, lines)
	assert.Equal(t, "nocomma", pts.Skipped[1].Text)
}

func TestParse_NoPoints(t *testing.T) {
	pts, err := dataset.Parse(strings.NewReader("header\n\n# only comments\n"))
	require.ErrorIs(t, err, dataset.ErrNoPoints)
	require.NotNil(t, pts)
	require.Len(t, pts.Skipped, 1)
}

func TestParse_LongLine(t *testing.T) {
	// well past bufio.Scanner's default 64 KiB token limit
	line := "1," + strings.Repeat("0", 200_000) + "2\n"
	pts, err := dataset.Parse(strings.NewReader(line + "3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, pts.X)
	assert.Equal(t, []float64{2, 4}, pts.Y)
}

func TestParse_CRLF(t *testing.T) {
	pts, err := dataset.Parse(strings.NewReader("1,2\r\n3,4\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, pts.Y)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n1,1\n2,2\n"), 0o600))

	pts, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, pts.X)

	_, err = dataset.Load(filepath.Join(dir, "missing.csv"))
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = dataset.Load(empty)
	require.ErrorIs(t, err, dataset.ErrNoPoints)
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := dataset.WriteTable(&buf, []string{"x", "f(x)"}, []float64{1, 1.5}, []float64{0.25, -2})
	require.NoError(t, err)
	assert.Equal(t, "# x\tf(x)\n1.000000\t0.250000\n1.500000\t-2.000000\n", buf.String())

	err = dataset.WriteTable(&buf, nil, []float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, dataset.ErrColumnMismatch)
}

func TestSaveTable_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.dat")
	require.NoError(t, dataset.SaveTable(path, []string{"x", "y"}, []float64{1, 2}, []float64{3, 4}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "# x\ty\n"))

	// tab-separated tables are not CSV; every data row is reported
	pts, err := dataset.Load(path)
	require.ErrorIs(t, err, dataset.ErrNoPoints)
	require.Len(t, pts.Skipped, 2)
}
