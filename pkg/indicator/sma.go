package indicator

import (
	"github.com/goldentick/goldentick/pkg/types"
)

// SMA is the simple moving average over a fixed window. It publishes the mean
// of the partial window while warming up and becomes ready once a full window
// has been seen.
type SMA struct {
	StreamBase
	Window int

	values types.Float64Slice
}

func NewSMA(window int) *SMA {
	return &SMA{
		StreamBase: newStreamBase("sma"),
		Window:     window,
	}
}

func (inc *SMA) Update(s types.Sample) {
	inc.values.Push(s.Value)
	inc.values = inc.values.Tail(inc.Window)
	inc.publish(s.Time, inc.values.Mean(), len(inc.values) >= inc.Window)
}

func (inc *SMA) Reset() {
	inc.values = nil
	inc.reset()
}

func init() {
	RegisterFactory("sma", func(window int) Indicator {
		return NewSMA(window)
	})
}
