// Package summary reduces time-log entries into the aggregate statistics and
// goal classification shown on the dashboard. All functions are pure and
// total: empty input yields all-zero aggregates and nil dimensions.
package summary

import (
	"sort"
	"time"

	"daylog/internal/timeutil"
	"daylog/timelog"
)

const trailingWindowDays = 30

// DimensionTotal is the most time-consuming project or location over the
// full entry list.
type DimensionTotal struct {
	ID    string
	Hours float64
}

type Summary struct {
	TodayHours   float64
	WeekHours    float64
	MonthHours   float64
	ActiveDays   int
	AverageDaily float64
	TopProject   *DimensionTotal
	TopLocation  *DimensionTotal
}

// Summarize computes period totals, trailing-window statistics and the
// most-active project/location for the given entries as of now.
//
// Period windows are inclusive lower bounds with no upper bound: an entry
// counts toward a period when its creation time is at or after the period
// start. The trailing window covers the 30 days ending at now; an active
// day is a distinct local calendar date with at least one entry in that
// window.
func Summarize(entries []timelog.Entry, now time.Time) Summary {
	dayStart := timeutil.StartOfDay(now)
	weekStart := timeutil.StartOfWeek(now)
	monthStart := timeutil.StartOfMonth(now)
	windowStart := now.AddDate(0, 0, -trailingWindowDays)

	out := Summary{}
	windowHours := 0.0
	windowDays := make(map[string]struct{})
	byProject := make(map[string]float64)
	byLocation := make(map[string]float64)

	for _, entry := range entries {
		if !entry.CreatedAt.Before(dayStart) {
			out.TodayHours += entry.DurationHours
		}
		if !entry.CreatedAt.Before(weekStart) {
			out.WeekHours += entry.DurationHours
		}
		if !entry.CreatedAt.Before(monthStart) {
			out.MonthHours += entry.DurationHours
		}

		if !entry.CreatedAt.Before(windowStart) {
			windowHours += entry.DurationHours
			windowDays[timeutil.StartOfDay(entry.CreatedAt).Format("2006-01-02")] = struct{}{}
		}

		if entry.ProjectID != "" {
			byProject[entry.ProjectID] += entry.DurationHours
		}
		if entry.LocationID != "" {
			byLocation[entry.LocationID] += entry.DurationHours
		}
	}

	out.ActiveDays = len(windowDays)
	if out.ActiveDays > 0 {
		out.AverageDaily = windowHours / float64(out.ActiveDays)
	}

	out.TopProject = topDimension(byProject)
	out.TopLocation = topDimension(byLocation)
	return out
}

// RecentEntries returns the n most recent entries. The caller supplies
// entries already sorted descending by creation time; ordering is a
// precondition, not re-established here.
func RecentEntries(entries []timelog.Entry, n int) []timelog.Entry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return append([]timelog.Entry(nil), entries[:n]...)
}

// topDimension picks the group with the greatest summed duration. Ties
// resolve to the lexicographically smallest key so results are stable
// across map iteration orders.
func topDimension(totals map[string]float64) *DimensionTotal {
	if len(totals) == 0 {
		return nil
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best := DimensionTotal{ID: keys[0], Hours: totals[keys[0]]}
	for _, key := range keys[1:] {
		if totals[key] > best.Hours {
			best = DimensionTotal{ID: key, Hours: totals[key]}
		}
	}
	return &best
}
