package mapper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Year-first: 2024-03-15, 2024/3/5, 2024.03.15
	dateYearFirstRe = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})([-/.])(\d{1,2})$`)
	// Year-last: 15/03/2024, 3-5-2024, 15.03.2024
	dateYearLastRe = regexp.MustCompile(`^(\d{1,2})([-/.])(\d{1,2})([-/.])(\d{4})$`)
)

// IsDate reports whether a value matches one of the recognized literal
// date layouts.
func IsDate(sample string) bool {
	_, ok := FormatDate(sample)
	return ok
}

// FormatDate parses a date in any recognized layout and renders it as
// YYYY-MM-DD. The 4-digit segment decides which side the year is on.
// Ambiguous year-last dates default to month-first for "/" and "-"
// separators and day-first for "." — when the default produces an
// impossible month the two segments are swapped instead of guessing
// wrong. Unparseable input returns ok=false, never a wrong date.
func FormatDate(sample string) (string, bool) {
	s := strings.TrimSpace(sample)
	if s == "" {
		return "", false
	}

	if m := dateYearFirstRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[3])
		day, _ := strconv.Atoi(m[5])
		return renderDate(year, month, day)
	}

	if m := dateYearLastRe.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[3])
		year, _ := strconv.Atoi(m[5])

		var month, day int
		if m[2] == "." {
			// Dot-separated dates are day-first in practice.
			day, month = first, second
		} else {
			// Slash and dash default to month-first.
			month, day = first, second
		}
		if month > 12 && day <= 12 {
			month, day = day, month
		}
		return renderDate(year, month, day)
	}

	return "", false
}

// renderDate validates the components against the real calendar and
// formats them; February 30th and friends are rejected.
func renderDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
