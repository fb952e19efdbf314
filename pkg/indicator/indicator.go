package indicator

import (
	"time"

	"github.com/goldentick/goldentick/pkg/types"
)

// Indicator is the streaming contract every indicator satisfies: it consumes
// samples one at a time and exposes its latest output together with a
// readiness flag. An indicator starts in the warming state, flips to ready
// once its internal history requirement is met, and only Reset brings it back.
type Indicator interface {
	// Name identifies the indicator in diagnostics.
	Name() string

	// Update accepts one sample. Sample times are trusted to be
	// non-decreasing; the indicator does not validate ordering.
	Update(s types.Sample)

	// IsReady reports whether enough history has accumulated for Current
	// to be meaningful. Once true it stays true until Reset.
	IsReady() bool

	// Current returns the last produced sample. Before the first Update it
	// is the zero Sample sentinel.
	Current() types.Sample

	// Samples returns the number of accepted updates.
	Samples() int

	// Reset returns the indicator to its just-constructed state.
	Reset()
}

// StreamBase carries the contract bookkeeping so concrete indicators only
// implement the computation: call publish from Update and reset from Reset.
type StreamBase struct {
	name    string
	samples int
	ready   bool
	current types.Sample
}

func newStreamBase(name string) StreamBase {
	return StreamBase{name: name}
}

func (b *StreamBase) Name() string {
	return b.name
}

func (b *StreamBase) IsReady() bool {
	return b.ready
}

func (b *StreamBase) Current() types.Sample {
	return b.current
}

func (b *StreamBase) Samples() int {
	return b.samples
}

// publish records one accepted update. The readiness latch only moves one
// way: passing ready=false after the indicator became ready keeps it ready.
func (b *StreamBase) publish(t time.Time, value float64, ready bool) {
	b.samples++
	b.current = types.Sample{Time: t, Value: value}
	if ready {
		b.ready = true
	}
}

func (b *StreamBase) reset() {
	b.samples = 0
	b.ready = false
	b.current = types.Sample{}
}
