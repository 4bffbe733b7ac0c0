package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TablePrecision is the number of decimals WriteTable prints.
const TablePrecision = 6

// WriteTable writes a "# "-prefixed tab-separated header followed by one
// row per index of the equally long columns.
//
// Errors: ErrColumnMismatch, write errors (wrapped).
func WriteTable(w io.Writer, header []string, cols ...[]float64) error {
	rows := 0
	for i, c := range cols {
		if i == 0 {
			rows = len(c)
			continue
		}
		if len(c) != rows {
			return fmt.Errorf("column %d: len %d, want %d: %w", i, len(c), rows, ErrColumnMismatch)
		}
	}

	bw := bufio.NewWriter(w)
	if len(header) > 0 {
		bw.WriteString("# ")
		bw.WriteString(strings.Join(header, "\t"))
		bw.WriteByte('\n')
	}
	var buf []byte
	for r := 0; r < rows; r++ {
		buf = buf[:0]
		for j, c := range cols {
			if j > 0 {
				buf = append(buf, '\t')
			}
			buf = strconv.AppendFloat(buf, c[r], 'f', TablePrecision, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	if err := bw.Flush(); err != nil {
		return wrapErr("write table", err)
	}

	return nil
}

// SaveTable creates (or truncates) path and writes the table into it.
func SaveTable(path string, header []string, cols ...[]float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr("create "+path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wrapErr("close "+path, cerr)
		}
	}()

	return WriteTable(f, header, cols...)
}
