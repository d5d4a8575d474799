// Package pathdata reads and writes recorded movement paths as CSV
// ("frame,x,y" with a header row) and can synthesize test paths.
package pathdata

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

// Header is the first row written by Write.
var Header = []string{"frame", "x", "y"}

// Sample is one row of a path file.
type Sample struct {
	Frame int
	X, Y  float64
}

// Point rounds the sample to the nearest grid cell.
func (s Sample) Point() source.Point {
	return source.Point{X: int(math.Round(s.X)), Y: int(math.Round(s.Y))}
}

// FromPoints numbers pts from frame 0.
func FromPoints(pts []source.Point) []Sample {
	out := make([]Sample, len(pts))
	for i, p := range pts {
		out[i] = Sample{Frame: i, X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// Result is what Read found in a path file.
type Result struct {
	Points  []source.Point
	Skipped int // rows that could not be parsed
}

// Read parses a path from r. A leading header row is skipped. Rows with
// fewer than three fields or non-numeric coordinates are counted in Skipped
// rather than failing the read, so a partly damaged file still replays.
func Read(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var res Result
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.Skipped++
				continue
			}
			return res, errors.Wrap(err, "read path csv")
		}

		s, ok := parseRow(rec)
		if first {
			first = false
			if !ok && isHeader(rec) {
				continue
			}
		}
		if !ok {
			res.Skipped++
			continue
		}
		res.Points = append(res.Points, s.Point())
	}
	return res, nil
}

// ReadFile opens and parses the path file at name.
func ReadFile(name string) (Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return Result{}, errors.Wrapf(err, "open path %s", name)
	}
	defer f.Close()
	res, err := Read(f)
	if err != nil {
		return res, errors.Wrapf(err, "path %s", name)
	}
	return res, nil
}

// Write emits the header and one row per sample. Coordinates are rounded to
// two decimals.
func Write(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "write path header")
	}
	row := make([]string, 3)
	for _, s := range samples {
		row[0] = strconv.Itoa(s.Frame)
		row[1] = formatCoord(s.X)
		row[2] = formatCoord(s.Y)
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write path frame %d", s.Frame)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush path csv")
}

// WriteFile creates or truncates name and writes samples to it.
func WriteFile(name string, samples []Sample) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create path %s", name)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close path %s", name)
		}
	}()
	return Write(f, samples)
}

func parseRow(rec []string) (Sample, bool) {
	if len(rec) < 3 {
		return Sample{}, false
	}
	frame, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Sample{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return Sample{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return Sample{}, false
	}
	return Sample{Frame: frame, X: x, Y: y}, true
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if strings.EqualFold(strings.TrimSpace(f), "x") {
			return true
		}
	}
	return false
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
