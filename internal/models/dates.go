package models

import (
	"fmt"
	"time"
)

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns the
// calendar date at midnight UTC
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
