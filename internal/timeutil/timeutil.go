package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// StartOfWeek returns midnight of the most recent Sunday (weeks start on
// day 0 of the locale week).
func StartOfWeek(value time.Time) time.Time {
	day := StartOfDay(value)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func StartOfMonth(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func MinutesFromMidnight(value time.Time) int {
	return value.Hour()*60 + value.Minute()
}
