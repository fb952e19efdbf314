package verify

import (
	"time"

	"github.com/goldentick/goldentick/pkg/types"
)

// SampleStream is a finite, lazy sequence of synthetic samples. Each call to
// Generate produces a fresh stream starting from scratch.
type SampleStream struct {
	count   int
	next    int
	start   time.Time
	produce func(i int) float64
}

// Generate builds a deterministic stream of count samples. Timestamps start
// at midnight UTC of the current day and step one second per sample. Values
// come from produce, or default to the zero-based sample index when produce
// is nil.
func Generate(count int, produce func(i int) float64) *SampleStream {
	if produce == nil {
		produce = func(i int) float64 { return float64(i) }
	}

	return &SampleStream{
		count:   count,
		start:   time.Now().UTC().Truncate(24 * time.Hour),
		produce: produce,
	}
}

// Next returns the next sample, or false once count samples were produced.
func (s *SampleStream) Next() (types.Sample, bool) {
	if s.next >= s.count {
		return types.Sample{}, false
	}

	i := s.next
	s.next++
	return types.Sample{
		Time:  s.start.Add(time.Duration(i) * time.Second),
		Value: s.produce(i),
	}, true
}

// Feed drains the stream into the indicator's Update.
func (s *SampleStream) Feed(update func(types.Sample)) {
	for {
		sample, ok := s.Next()
		if !ok {
			return
		}
		update(sample)
	}
}
