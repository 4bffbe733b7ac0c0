// Package dataset reads x,y sample points from text and writes
// tab-separated tables for plotting.
package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 16 << 20

const initialLineBuffer = 64 << 10

// Points holds parallel coordinate slices and the lines that were skipped.
type Points struct {
	X       []float64
	Y       []float64
	Skipped []*MalformedInputError
}

// Len returns the number of valid points.
func (p *Points) Len() int { return len(p.X) }

// Parse reads one "x,y" pair per line from r.
// Blank lines and lines starting with '#' are ignored. Text after a second
// comma is ignored. A line without a comma, with an unparsable number or
// with a non-finite value is recorded in Skipped and reading continues.
//
// Errors:
//   - read errors from r (wrapped);
//   - ErrNoPoints when no line held a valid pair; the returned *Points still
//     lists the skipped lines.
func Parse(r io.Reader) (*Points, error) {
	pts := &Points{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), MaxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, y, err := parsePair(text)
		if err != nil {
			pts.Skipped = append(pts.Skipped, &MalformedInputError{Line: line, Text: text, Err: err})
			continue
		}
		pts.X = append(pts.X, x)
		pts.Y = append(pts.Y, y)
	}
	if err := sc.Err(); err != nil {
		return pts, wrapErr("read points", err)
	}
	if len(pts.X) == 0 {
		return pts, ErrNoPoints
	}

	return pts, nil
}

// Load opens path and parses it with Parse.
func Load(path string) (*Points, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr("open "+path, err)
	}
	defer f.Close()

	pts, err := Parse(f)
	if err != nil {
		return pts, wrapErr(path, err)
	}

	return pts, nil
}

func parsePair(text string) (x, y float64, err error) {
	xs, rest, ok := strings.Cut(text, ",")
	if !ok {
		return 0, 0, errNoComma
	}
	ys, _, _ := strings.Cut(rest, ",")
	if x, err = parseValue(xs); err != nil {
		return 0, 0, err
	}
	if y, err = parseValue(ys); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}

	return v, nil
}
