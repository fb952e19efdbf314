package fixedpoint

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPrecision = 8

const DefaultPow = 1e8

// Value is a fixed-point decimal backed by an int64 scaled by DefaultPow.
type Value int64

const Zero = Value(0)

func (v Value) Float64() float64 {
	return float64(v) / DefaultPow
}

func (v Value) Int64() int64 {
	return int64(v) / DefaultPow
}

func (v Value) Add(v2 Value) Value {
	return Value(int64(v) + int64(v2))
}

func (v Value) Sub(v2 Value) Value {
	return Value(int64(v) - int64(v2))
}

func (v Value) Mul(v2 Value) Value {
	return NewFromFloat(v.Float64() * v2.Float64())
}

func (v Value) Div(v2 Value) Value {
	return NewFromFloat(v.Float64() / v2.Float64())
}

func (v Value) Abs() Value {
	if v < 0 {
		return -v
	}
	return v
}

func (v Value) IsZero() bool {
	return v == 0
}

func (v Value) Compare(v2 Value) int {
	if v > v2 {
		return 1
	} else if v < v2 {
		return -1
	}
	return 0
}

func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
}

func NewFromFloat(val float64) Value {
	return Value(int64(math.Round(val * DefaultPow)))
}

func NewFromInt64(val int64) Value {
	return Value(val * DefaultPow)
}

func NewFromString(input string) (Value, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, errors.New("fixedpoint: empty string")
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "fixedpoint: can not parse %q", input)
	}

	return NewFromFloat(v), nil
}

func MustNewFromString(input string) Value {
	v, err := NewFromString(input)
	if err != nil {
		panic(errors.Wrapf(err, "can not parse %q into fixedpoint", input))
	}
	return v
}
