// Package dateutil converts timestamps to calendar dates in a single
// reference timezone. All bucketing (day, week, month) must go through
// these helpers; mixing the ambient server timezone into bucket
// assignment shifts records across midnight boundaries.
package dateutil

import (
	"fmt"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers
)

// Layout is the canonical calendar-date format.
const Layout = "2006-01-02"

// DateOf converts a timestamp to its calendar date in loc.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) string {
	return DateOf(time.Now(), loc)
}

// Parse parses a YYYY-MM-DD date string.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// IsValid reports whether date is a well-formed YYYY-MM-DD string.
func IsValid(date string) bool {
	_, err := Parse(date)
	return err == nil
}

// AddDays shifts a date by n calendar days. Panics on malformed input;
// callers validate dates at the boundary.
func AddDays(date string, n int) string {
	t, err := Parse(date)
	if err != nil {
		panic(err)
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

// DayBounds returns the half-open interval [00:00, next 00:00) of the
// date in loc, for timestamp range queries.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	t, err := Parse(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}

// RangeBounds returns the half-open interval covering the inclusive
// date range [from, to] in loc.
func RangeBounds(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	start, _, err := DayBounds(from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end, err := DayBounds(to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// MonthLabel returns the YYYY-MM label of the month containing date.
func MonthLabel(date string) string {
	return date[:7]
}

// MonthBounds returns the first and last calendar dates of the month
// containing date.
func MonthBounds(date string) (string, string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(Layout), last.Format(Layout), nil
}

// DatesBetween lists every date of the inclusive range [from, to] in
// ascending order. Returns nil when from is after to.
func DatesBetween(from, to string) []string {
	start, err := Parse(from)
	if err != nil {
		return nil
	}
	end, err := Parse(to)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(Layout))
	}
	return dates
}
