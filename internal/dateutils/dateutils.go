// Package dateutils provides the calendar operations used by the tax engine:
// month boundaries, filing-day arithmetic and timestamp parsing.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
	DateLayoutLong = "January 2, 2006"
	DateLayoutYM   = "2006-01"
)

// MillisPerDay is the length of a calendar day used for deadline arithmetic.
const MillisPerDay int64 = 24 * 60 * 60 * 1000

// timestampFormats are tried in order when parsing transaction timestamps.
// Layouts without a zone are interpreted as UTC.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	DateLayoutFull,
	DateLayoutISO,
}

var whitespace = regexp.MustCompile(`\s+`)

// StartOfMonth returns the first instant of the month containing date,
// in date's own location.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last instant of the month containing date at
// millisecond precision (23:59:59.999 on the last calendar day).
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, 0).Add(-time.Millisecond)
}

// DayOfFollowingMonth returns midnight on the given day of the month after
// (year, month). December rolls into January of the next year.
func DayOfFollowingMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	return time.Date(nextYear, nextMonth, day, 0, 0, 0, 0, loc)
}

// QuarterOf returns the calendar quarter (1-4) of a month.
func QuarterOf(month time.Month) int {
	return (int(month) + 2) / 3
}

// CeilDays returns the number of days between from and to, rounding any
// partial day up. The difference is measured in milliseconds and may be negative.
func CeilDays(from, to time.Time) int {
	diff := to.Sub(from).Milliseconds()
	days := diff / MillisPerDay
	// Integer division truncates toward zero, which is already the ceiling
	// for negative differences.
	if diff > 0 && diff%MillisPerDay != 0 {
		days++
	}
	return int(days)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseTimestamp parses an ISO-8601 style timestamp. Layouts without an
// explicit offset are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	clean := CleanDateString(value)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", value)
}

// ParseYearMonth parses a "YYYY-MM" period key.
func ParseYearMonth(value string) (int, time.Month, error) {
	t, err := time.Parse(DateLayoutYM, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q, expected YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}

// FormatTimestamp renders t as RFC3339 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToLongDate formats a due date the way the dashboard shows it ("April 21, 2026").
func ToLongDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutLong)
}
