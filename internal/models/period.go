package models

import (
	"fmt"
	"time"
)

// PeriodKind names the length of a tax period.
type PeriodKind string

// TaxPeriodInfo is one tax period bucket. StartDate is the first instant of
// the month and EndDate the last (23:59:59.999), both in the location of the
// date the period was resolved from.
type TaxPeriodInfo struct {
	Kind      PeriodKind `json:"period" yaml:"period"`
	Year      int        `json:"year" yaml:"year"`
	Month     int        `json:"month" yaml:"month"`
	Quarter   int        `json:"quarter" yaml:"quarter"`
	StartDate time.Time  `json:"startDate" yaml:"start_date"`
	EndDate   time.Time  `json:"endDate" yaml:"end_date"`
}

// Contains reports whether t falls within [StartDate, EndDate].
func (p TaxPeriodInfo) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// Key returns a compact identifier such as "2026-03".
func (p TaxPeriodInfo) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// String returns the period as "March 2026".
func (p TaxPeriodInfo) String() string {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Sprintf("%d", p.Year)
	}
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}

// Location returns the location the period boundaries are expressed in.
func (p TaxPeriodInfo) Location() *time.Location {
	if p.StartDate.IsZero() {
		return time.UTC
	}
	return p.StartDate.Location()
}
