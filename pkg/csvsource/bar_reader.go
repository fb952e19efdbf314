package csvsource

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/goldentick/goldentick/pkg/fixedpoint"
	"github.com/goldentick/goldentick/pkg/types"
)

var (
	// ErrNotEnoughColumns is returned when a record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the time cell cannot be parsed.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when an OHLC cell is not a valid decimal.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the volume cell is not a valid integer.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid integer format")
)

// BarReader reads OHLCV bars one record at a time.
type BarReader interface {
	Read() (types.Bar, error)
	ReadAll() ([]types.Bar, error)
}

// BarDecoder is an extension point for CSVBarReader to support custom record
// layouts.
type BarDecoder func(record []string) (types.Bar, error)

var _ BarReader = (*CSVBarReader)(nil)

// CSVBarReader is a BarReader over CSV data. The first line is always a
// header and is skipped without inspection; remaining records decode through
// the configured decoder.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder BarDecoder

	headerSkipped bool
}

// NewCSVBarReader creates a reader with the default positional decoder.
func NewCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: PositionalBarDecoder,
	}
}

// NewCSVBarReaderWithDecoder creates a reader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, decoder BarDecoder) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next bar from the underlying CSV data.
func (r *CSVBarReader) Read() (types.Bar, error) {
	var b types.Bar

	if !r.headerSkipped {
		if _, err := r.csv.Read(); err != nil {
			return b, err
		}
		r.headerSkipped = true
	}

	rec, err := r.csv.Read()
	if err != nil {
		return b, err
	}

	return r.decoder(rec)
}

// ReadAll drains the remaining bars from the underlying CSV data.
func (r *CSVBarReader) ReadAll() ([]types.Bar, error) {
	var bars []types.Bar
	for {
		b, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	return bars, nil
}

// PositionalBarDecoder decodes a record with fixed positional columns:
// time, open, high, low, close, volume.
func PositionalBarDecoder(record []string) (types.Bar, error) {
	var b, empty types.Bar

	if len(record) < 6 {
		return b, ErrNotEnoughColumns
	}

	t, err := types.ParseLoose(record[0])
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}
	b.Time = t

	if b.Open, err = fixedpoint.NewFromString(record[1]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.High, err = fixedpoint.NewFromString(record[2]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Low, err = fixedpoint.NewFromString(record[3]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Close, err = fixedpoint.NewFromString(record[4]); err != nil {
		return empty, ErrInvalidPriceFormat
	}

	if b.Volume, err = strconv.ParseInt(record[5], 10, 64); err != nil {
		return empty, ErrInvalidVolumeFormat
	}

	return b, nil
}
