package types

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var numOfDigitsOfUnixTimestamp = len(strconv.FormatInt(time.Now().Unix(), 10))
var numOfDigitsOfMilliSecondUnixTimestamp = len(strconv.FormatInt(time.Now().UnixMilli(), 10))

// LooseTimeFormats are the layouts accepted by ParseLoose, tried in order.
var LooseTimeFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"20060102 15:04:05",
}

// ParseLoose parses a timestamp cell from a recorded dataset. Numeric cells
// are treated as unix timestamps, in seconds or milliseconds depending on the
// number of digits; anything else goes through LooseTimeFormats.
func ParseLoose(s string) (time.Time, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		switch len(s) {
		case numOfDigitsOfUnixTimestamp:
			return time.Unix(i, 0).UTC(), nil
		case numOfDigitsOfMilliSecondUnixTimestamp:
			return time.UnixMilli(i).UTC(), nil
		}
		return time.Time{}, errors.Errorf("unsupported unix timestamp digits: %s", s)
	}

	for _, layout := range LooseTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("can not parse time string %q", s)
}

// MustParseLoose is for test fixtures whose timestamps are known to be valid.
func MustParseLoose(s string) time.Time {
	t, err := ParseLoose(s)
	if err != nil {
		panic(err)
	}
	return t
}
