package dates

import (
	"errors"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// DefaultMaxYear is the default upper bound accepted by IsValidDate.
// It is overridable through the validation section of the configuration.
const DefaultMaxYear = 2022

// ErrInvalidDateFormat is returned when a date string does not match YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// ParseDate parses a YYYY-MM-DD string into a date value.
// A nil or empty input yields a nil date without error.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(Layout, *s)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &t, nil
}

// FormatDate renders a date back to its YYYY-MM-DD wire form.
// A nil date yields nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(Layout)
	return &s
}

// IsLeapYear reports whether the year has a February 29th.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// daysInMonth holds month lengths for a non-leap year, January first.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsValidDate reports whether (year, month, day) names a real calendar day
// with the year inside [1, maxYear].
func IsValidDate(year, month, day, maxYear int) bool {
	if year < 1 || year > maxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	max := daysInMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		max = 29
	}
	return day <= max
}
