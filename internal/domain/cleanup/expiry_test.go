package cleanup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCutoffUsesCivilDateInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on May 1 is already May 2 in Tokyo.
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, date(2026, 5, 1), Cutoff(now, time.UTC))
	assert.Equal(t, date(2026, 5, 2), Cutoff(now, tokyo))
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 5, 2, 2, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		date    time.Time
		expired bool
	}{
		{name: "yesterday", date: date(2026, 5, 1), expired: true},
		{name: "last year", date: date(2025, 12, 31), expired: true},
		{name: "today", date: date(2026, 5, 2), expired: false},
		{name: "today late evening", date: time.Date(2026, 5, 2, 23, 0, 0, 0, time.UTC), expired: false},
		{name: "tomorrow", date: date(2026, 5, 3), expired: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, IsExpired(tc.date, now, time.UTC))
		})
	}
}

func TestIsExpiredAtMidnightBoundary(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	justBefore := time.Date(2026, 5, 1, 23, 59, 59, 0, loc)
	justAfter := time.Date(2026, 5, 2, 0, 0, 0, 0, loc)

	assert.False(t, IsExpired(date(2026, 5, 1), justBefore, loc))
	assert.True(t, IsExpired(date(2026, 5, 1), justAfter, loc))
}
