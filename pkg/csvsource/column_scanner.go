package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goldentick/goldentick/pkg/fixedpoint"
	"github.com/goldentick/goldentick/pkg/types"
)

// HeaderResolutionError is returned when the header line does not carry the
// columns a replay needs. It fires before any data row is consumed.
type HeaderResolutionError struct {
	Columns []string
}

func (e *HeaderResolutionError) Error() string {
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = fmt.Sprintf("'%s'", c)
	}
	return fmt.Sprintf("didn't find one of %s in the header", strings.Join(quoted, " or "))
}

const closeColumnName = "Close"

// ColumnRow is one data row of a column-matched reference dataset: the close
// price feeding the indicator and the expected cell of the target column.
// An empty Expected means the reference has no expectation for this row.
type ColumnRow struct {
	Time     time.Time
	Close    fixedpoint.Value
	Expected string
}

// ColumnScanner lazily reads a column-matched reference dataset. The header
// is resolved once at construction: the "Close" column and the target column
// are located by exact match on the trimmed header cells, case-sensitively.
type ColumnScanner struct {
	csv *csv.Reader

	target    string
	closeIdx  int
	targetIdx int
	row       int
}

// NewColumnScanner reads the header line of r and resolves the column
// indices. Missing either required column is fatal before any row flows.
func NewColumnScanner(r io.Reader, target string) (*ColumnScanner, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}

	closeIdx, targetIdx := -1, -1
	for i, cell := range header {
		switch strings.TrimSpace(cell) {
		case closeColumnName:
			closeIdx = i
		case target:
			targetIdx = i
		}
	}

	if closeIdx < 0 || targetIdx < 0 {
		return nil, &HeaderResolutionError{Columns: []string{closeColumnName, target}}
	}

	return &ColumnScanner{
		csv:       cr,
		target:    target,
		closeIdx:  closeIdx,
		targetIdx: targetIdx,
	}, nil
}

// TargetIndex returns the resolved zero-based index of the target column.
func (s *ColumnScanner) TargetIndex() int {
	return s.targetIdx
}

// Next returns the next data row, or io.EOF when the dataset is exhausted.
func (s *ColumnScanner) Next() (ColumnRow, error) {
	var row ColumnRow

	rec, err := s.csv.Read()
	if err != nil {
		return row, err
	}
	s.row++

	need := s.closeIdx
	if s.targetIdx > need {
		need = s.targetIdx
	}
	if len(rec) <= need {
		return row, fmt.Errorf("row %d: %w", s.row, ErrNotEnoughColumns)
	}

	if row.Time, err = types.ParseLoose(rec[0]); err != nil {
		return row, fmt.Errorf("row %d: %w", s.row, ErrInvalidTimeFormat)
	}

	if row.Close, err = fixedpoint.NewFromString(rec[s.closeIdx]); err != nil {
		return row, fmt.Errorf("row %d: %w", s.row, ErrInvalidPriceFormat)
	}

	row.Expected = strings.TrimSpace(rec[s.targetIdx])
	return row, nil
}
