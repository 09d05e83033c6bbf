package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ParseFloat coerces a decoded JSON value to a float64. Accepts numbers
// and numeric strings, matching what lenient clients send in POST bodies.
func ParseFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	case nil:
		return 0, fmt.Errorf("value is missing")
	default:
		return 0, fmt.Errorf("cannot parse %T as a number", v)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate coerces a date string to a time.Time, accepting RFC3339
// timestamps and plain dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
