package parser

import (
	"strconv"
	"strings"
	"time"
)

// Epoch values above this are treated as milliseconds.
const msEpochThreshold = 1_000_000_000_000

// Ordered most-specific first. A numeric-only string never reaches these.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// Fallback layouts for the generic ISO-8601 attempt.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseDate converts a timestamp of unknown shape (time.Time, numeric
// epoch, string) into a calendar date. It returns ok=false instead of an
// error: callers treat an unparseable date as "exclude from date-based
// grouping", never as fatal.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return dateOnly(t), true
	case float64:
		return epochDate(int64(t)), true
	case int64:
		return epochDate(t), true
	case int:
		return epochDate(int64(t)), true
	case string:
		return parseDateString(t)
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return epochDate(n), true
		}
		return time.Time{}, false
	}

	s = strings.TrimSuffix(s, "Z")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return dateOnly(t), true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

func epochDate(n int64) time.Time {
	if n > msEpochThreshold {
		return dateOnly(time.UnixMilli(n))
	}
	return dateOnly(time.Unix(n, 0))
}

func dateOnly(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
