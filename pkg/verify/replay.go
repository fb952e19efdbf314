package verify

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/goldentick/goldentick/pkg/csvsource"
	"github.com/goldentick/goldentick/pkg/indicator"
	"github.com/goldentick/goldentick/pkg/types"
)

// RowSource is a pull-based sequence of reference rows ending with io.EOF.
type RowSource interface {
	Next() (csvsource.ColumnRow, error)
}

// Replay feeds every row into the indicator in order and fires the assertion
// for each row where the indicator is ready and the expected cell is
// non-empty. Structural errors and the first assertion failure abort the
// replay; the partial report is returned alongside the error.
func Replay(ind indicator.Indicator, rows RowSource, assert Assertion) (*Report, error) {
	report := &Report{Indicator: ind.Name()}

	for {
		row, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, err
		}

		ind.Update(types.Sample{Time: row.Time, Value: row.Close.Float64()})
		report.Rows++

		if !ind.IsReady() || row.Expected == "" {
			report.Skipped++
			continue
		}

		expected, err := strconv.ParseFloat(row.Expected, 64)
		if err != nil {
			return report, errors.Wrapf(err, "row %d: invalid expected value %q", report.Rows, row.Expected)
		}

		if err := assert(ind, expected); err != nil {
			return report, errors.Wrapf(err, "row %d", report.Rows)
		}

		report.Asserted++
		if delta := math.Abs(ind.Current().Value - expected); delta > report.MaxDelta {
			report.MaxDelta = delta
		}
	}

	return report, nil
}

// ReplayFile runs Replay over one reference file, holding the file open only
// for the duration of the scan.
func ReplayFile(path, targetColumn string, ind indicator.Indicator, assert Assertion) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open reference dataset %s", path)
	}
	defer f.Close()

	scanner, err := csvsource.NewColumnScanner(f, targetColumn)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return Replay(ind, scanner, assert)
}
