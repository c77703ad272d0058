package domain

import (
	"regexp"
	"time"
)

// DateLayout is the canonical storage format for calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var canonicalDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsCanonicalDate reports whether s has the 4-2-2 digit shape. It does not check the calendar.
func IsCanonicalDate(s string) bool {
	return canonicalDateRegex.MatchString(s)
}

// ParseDay parses a canonical date into midnight UTC of that day.
// ok is false for empty strings, other shapes and impossible dates such as 2026-02-30.
func ParseDay(s string) (day time.Time, ok bool) {
	if !IsCanonicalDate(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t in the canonical storage format.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
