package csvsource

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldentick/goldentick/pkg/fixedpoint"
	"github.com/goldentick/goldentick/pkg/types"
)

var assertBarEq = func(t *testing.T, exp, act types.Bar) {
	assert.Equal(t, exp.Time, act.Time)
	assert.True(t, exp.Open == act.Open)
	assert.True(t, exp.High == act.High)
	assert.True(t, exp.Low == act.Low)
	assert.True(t, exp.Close == act.Close)
	assert.Equal(t, exp.Volume, act.Volume)
}

func TestCSVBarReader_Read(t *testing.T) {
	const header = "Date,Open,High,Low,Close,Volume"

	tests := []struct {
		name string
		give string
		want types.Bar
		err  error
	}{
		{
			name: "Read OHLCV",
			give: "2020-01-01,28923.63,29031.34,28690.17,28995.13,2311",
			want: types.Bar{
				Time:   types.MustParseLoose("2020-01-01"),
				Open:   fixedpoint.NewFromFloat(28923.63),
				High:   fixedpoint.NewFromFloat(29031.34),
				Low:    fixedpoint.NewFromFloat(28690.17),
				Close:  fixedpoint.NewFromFloat(28995.13),
				Volume: 2311,
			},
			err: nil,
		},
		{
			name: "Not enough columns",
			give: "2020-01-01,28923.63,29031.34",
			want: types.Bar{},
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "yesterday,28923.63,29031.34,28690.17,28995.13,2311",
			want: types.Bar{},
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "2020-01-01,sixty,29031.34,28690.17,28995.13,2311",
			want: types.Bar{},
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "2020-01-01,28923.63,29031.34,28690.17,28995.13,vol",
			want: types.Bar{},
			err:  ErrInvalidVolumeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewCSVBarReader(csv.NewReader(strings.NewReader(header + "\n" + tt.give)))
			bar, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assertBarEq(t, tt.want, bar)
		})
	}
}

func TestCSVBarReader_HeaderAlwaysSkipped(t *testing.T) {
	// the first line is skipped without inspection, even when it looks like data
	records := []string{
		"2020-01-01,1,1,1,1,1",
		"2020-01-02,2,3,1,2,10",
	}
	reader := NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	bars, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, bars, 1)
	assert.Equal(t, types.MustParseLoose("2020-01-02"), bars[0].Time)
}

func TestCSVBarReader_ReadAll(t *testing.T) {
	records := []string{
		"Date,Open,High,Low,Close,Volume",
		"2020-01-01,10,11,9,10.5,100",
		"2020-01-02,10.5,12,10,11.5,200",
	}
	reader := NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	bars, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, bars, 2)
	assert.InDelta(t, 11.5, bars[1].CloseSample().Value, 1e-9)
}
