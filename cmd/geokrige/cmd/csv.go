package cmd

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/solver"
	"github.com/jakobetzel/geokrige/spatial"
)

// readSamples parses a sample CSV with a header row: dims coordinate columns
// followed by one column per variable. Empty cells and "nan" are treated as
// missing observations.
func readSamples(path string, dims int) (*spatial.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sample CSV")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading sample CSV")
	}
	if len(records) < 2 {
		return nil, errors.NewDataError("", "sample CSV needs a header and at least one row")
	}
	header := records[0]
	if len(header) <= dims {
		return nil, errors.NewDataError("", "sample CSV has no variable columns after the coordinates")
	}

	rows := records[1:]
	points := make([][]float64, len(rows))
	columns := make(map[string][]float64, len(header)-dims)
	for _, name := range header[dims:] {
		columns[name] = make([]float64, len(rows))
	}

	for i, rec := range rows {
		if len(rec) != len(header) {
			return nil, errors.NewDataError("", fmt.Sprintf("row %d has %d fields, expected %d", i+2, len(rec), len(header)))
		}
		p := make([]float64, dims)
		for ax := 0; ax < dims; ax++ {
			v, err := strconv.ParseFloat(rec[ax], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d coordinate %d", i+2, ax)
			}
			p[ax] = v
		}
		points[i] = p
		for c, name := range header[dims:] {
			cell := rec[dims+c]
			if cell == "" || cell == "nan" || cell == "NaN" {
				columns[name][i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d variable %q", i+2, name)
			}
			columns[name][i] = v
		}
	}

	pts, err := spatial.NewPointSet(points)
	if err != nil {
		return nil, err
	}
	return spatial.NewTable(pts, columns)
}

// writeResult writes the estimated surfaces as a CSV: coordinate columns,
// then mean and variance columns per variable, one row per domain location.
func writeResult(path string, domain spatial.Domain, vars []string, result solver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating result CSV")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, domain.Dims()+2*len(vars))
	for ax := 0; ax < domain.Dims(); ax++ {
		header = append(header, fmt.Sprintf("x%d", ax))
	}
	written := make([]string, 0, len(vars))
	for _, name := range vars {
		if _, ok := result[name]; !ok {
			continue
		}
		written = append(written, name)
		header = append(header, name+"_mean", name+"_variance")
	}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "writing result CSV")
	}

	row := make([]string, len(header))
	for i := 0; i < domain.Len(); i++ {
		coords := domain.Coordinates(i)
		col := 0
		for _, c := range coords {
			row[col] = strconv.FormatFloat(c, 'g', -1, 64)
			col++
		}
		for _, name := range written {
			est := result[name]
			row[col] = strconv.FormatFloat(est.Means[i], 'g', -1, 64)
			row[col+1] = strconv.FormatFloat(est.Variances[i], 'g', -1, 64)
			col += 2
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "writing result CSV")
		}
	}
	return nil
}
