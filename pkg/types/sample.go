package types

import (
	"fmt"
	"time"

	"github.com/goldentick/goldentick/pkg/fixedpoint"
)

// Sample is one timestamped observation. The zero value is the "not yet
// computed" sentinel: zero time, zero value.
type Sample struct {
	Time  time.Time
	Value float64
}

func (s Sample) String() string {
	return fmt.Sprintf("(%s %f)", s.Time.Format(time.RFC3339), s.Value)
}

// Bar is one OHLCV observation from a recorded dataset.
type Bar struct {
	Time   time.Time
	Open   fixedpoint.Value
	High   fixedpoint.Value
	Low    fixedpoint.Value
	Close  fixedpoint.Value
	Volume int64
}

// CloseSample routes the close price to indicators that consume
// single-valued input.
func (b Bar) CloseSample() Sample {
	return Sample{Time: b.Time, Value: b.Close.Float64()}
}
