// Package utils holds small timestamp and conversion helpers shared by the
// option package and the command-line tools.
package utils

import (
	"fmt"
	"strconv"
	"time"
)

// SecondsPerYear is the length of the 365-day year used to convert
// epoch-second spans into year fractions.
const SecondsPerYear = 31_536_000

// YearsBetween returns the span from start to end, both epoch-second
// timestamps, expressed in years. For instance, a 45-day span returns
// roughly 0.1233. The result is negative when end precedes start.
func YearsBetween(start, end int64) float64 {
	return float64(end-start) / SecondsPerYear
}

// ParseTimestamp converts a string to an epoch-second timestamp. It accepts
// either a bare integer ("1606780800") or a YYYY-MM-DD date, interpreted as
// midnight UTC.
func ParseTimestamp(s string) (int64, error) {
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts, nil
	}

	const layout = "2006-01-02"
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("ParseTimestamp: %q is neither an epoch-second timestamp nor a %s date", s, layout)
	}
	return t.Unix(), nil
}
