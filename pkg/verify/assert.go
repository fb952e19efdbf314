package verify

import (
	"math"

	"github.com/pkg/errors"

	"github.com/goldentick/goldentick/pkg/indicator"
)

// Assertion checks the indicator's current output against the reference
// value for one ready row. Assertions may hold state across calls.
type Assertion func(ind indicator.Indicator, expected float64) error

// InDelta is the plain epsilon assertion: the current value must be within
// epsilon of the reference value.
func InDelta(epsilon float64) Assertion {
	return func(ind indicator.Indicator, expected float64) error {
		actual := ind.Current().Value
		if delta := math.Abs(actual - expected); delta > epsilon {
			return errors.Errorf("%s: got %v, want %v (delta %v > %v)",
				ind.Name(), actual, expected, delta, epsilon)
		}
		return nil
	}
}

type convergenceAssertion struct {
	epsilon   float64
	prevDelta float64
}

// Convergence asserts that the error magnitude never grows by more than
// epsilon between consecutive ready rows. The previous delta starts at the
// largest float64, so the first observed delta always passes and becomes the
// baseline. The boundary is strict: an increase of exactly epsilon passes.
//
// This is the check for indicators with unbounded memory, which keep drifting
// toward the reference without ever matching it exactly.
func Convergence(epsilon float64) Assertion {
	c := &convergenceAssertion{
		epsilon:   epsilon,
		prevDelta: math.MaxFloat64,
	}
	return c.assert
}

func (c *convergenceAssertion) assert(ind indicator.Indicator, expected float64) error {
	delta := math.Abs(ind.Current().Value - expected)
	if delta-c.prevDelta > c.epsilon {
		return errors.Errorf("%s: error increased from %v to %v (more than %v)",
			ind.Name(), c.prevDelta, delta, c.epsilon)
	}

	c.prevDelta = delta
	return nil
}
