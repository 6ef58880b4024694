package cleanup

import "time"

// Cutoff is the first non-expired day: today's civil date in loc, returned
// as midnight UTC so it compares directly with stored practice dates.
func Cutoff(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	year, month, day := now.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsExpired reports whether a practice dated practiceDate is strictly before
// today. Only the calendar day counts; a practice dated today is never
// expired whatever its time of day.
func IsExpired(practiceDate, now time.Time, loc *time.Location) bool {
	year, month, day := practiceDate.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return date.Before(Cutoff(now, loc))
}
