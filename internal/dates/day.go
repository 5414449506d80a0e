// Package dates holds the day-granularity helpers the cash book is built on.
// A "day" is always a time.Time at midnight UTC, so values produced here are
// directly comparable and safe to use as map keys after formatting.
package dates

import (
	"fmt"
	"time"
)

// DayFormat is the ISO-8601 date format used everywhere a day crosses a boundary.
const DayFormat = "2006-01-02"

// DayOf strips the time of day, returning midnight UTC of t's calendar date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's calendar date. Range
// queries on timestamps must use this as the upper bound, otherwise every
// transaction after midnight on the final day is silently dropped.
func EndOfDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// NextDay returns midnight UTC of the day after t.
func NextDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1)
}

// DayKey formats a day for map lookups and JSON boundaries.
func DayKey(t time.Time) string {
	return DayOf(t).Format(DayFormat)
}

// ParseDay parses a strict YYYY-MM-DD string into a midnight-UTC day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want %s: %w", s, DayFormat, err)
	}
	return t, nil
}

// DaysBetween counts the days in [from, to] inclusive. Zero or negative means
// the range is empty or inverted.
func DaysBetween(from, to time.Time) int {
	return int(DayOf(to).Sub(DayOf(from))/(24*time.Hour)) + 1
}
