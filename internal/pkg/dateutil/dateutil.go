// Package dateutil holds the calendar arithmetic shared by the leave
// timeline and calendar views. All dates are whole calendar days; times of
// day and timezones are normalized away at the boundary.
package dateutil

import "time"

const layoutISO = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) into a UTC midnight
// time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutISO, s)
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(layoutISO)
}

// DaysInMonth returns the number of days in the given month. Day 0 of the
// following month is the last day of the target month, which keeps leap
// years correct.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BeforeMonth reports whether t falls in a month strictly before
// (year, month), comparing year and month only.
func BeforeMonth(t time.Time, year int, month time.Month) bool {
	if t.Year() != year {
		return t.Year() < year
	}
	return t.Month() < month
}

// AfterMonth reports whether t falls in a month strictly after
// (year, month), comparing year and month only.
func AfterMonth(t time.Time, year int, month time.Month) bool {
	if t.Year() != year {
		return t.Year() > year
	}
	return t.Month() > month
}

// SameDay reports whether a and b are the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ContainsDay reports whether day falls within [start, end] inclusive,
// comparing calendar days.
func ContainsDay(start, end, day time.Time) bool {
	d := truncate(day)
	return !d.Before(truncate(start)) && !d.After(truncate(end))
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
