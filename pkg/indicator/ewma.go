package indicator

import (
	"github.com/goldentick/goldentick/pkg/types"
)

// EWMA is the exponentially weighted moving average with the standard
// 2/(1+window) multiplier. The first sample seeds the average directly.
// It never stabilizes exactly, which makes it the usual subject of the
// convergence assertion rather than exact golden matching.
type EWMA struct {
	StreamBase
	Window int
}

func NewEWMA(window int) *EWMA {
	return &EWMA{
		StreamBase: newStreamBase("ewma"),
		Window:     window,
	}
}

func (inc *EWMA) Update(s types.Sample) {
	multiplier := 2.0 / float64(1+inc.Window)

	ema := s.Value
	if inc.Samples() > 0 {
		ema = (1-multiplier)*inc.Current().Value + multiplier*s.Value
	}

	inc.publish(s.Time, ema, inc.Samples()+1 >= inc.Window)
}

func (inc *EWMA) Reset() {
	inc.reset()
}

func init() {
	RegisterFactory("ewma", func(window int) Indicator {
		return NewEWMA(window)
	})
}
