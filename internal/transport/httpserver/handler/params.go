package handler

import (
	"fmt"
	"strings"
	"time"
)

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp,
// whose calendar date is read in loc.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	year, month, day := parsed.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

func formatDate(value time.Time) string {
	return value.Format(time.DateOnly)
}
