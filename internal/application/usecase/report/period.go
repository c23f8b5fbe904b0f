// Package report contains report generation use cases.
package report

import "time"

// MonthBounds returns the inclusive start and end instants of a calendar
// month in UTC.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// YearBounds returns the inclusive start and end instants of a calendar
// year in UTC.
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return start, end
}

// PreviousMonth returns the year and month immediately before the given one.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}
