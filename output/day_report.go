package output

import (
	"fmt"
	"math"
	"sort"
	"time"

	"daylog/durfmt"
	"daylog/timelog"
)

// DayReport is one per-day aggregate row of the daily export.
type DayReport struct {
	Date       string
	TotalHours float64
	Duration   string
	EntryCount int
}

// BuildDayReports groups entries by the local calendar date they were
// created on and totals their durations, oldest day first.
func BuildDayReports(entries []timelog.Entry) []DayReport {
	if len(entries) == 0 {
		return []DayReport{}
	}

	byDay := make(map[string][]timelog.Entry)
	for _, entry := range entries {
		day := entry.CreatedAt.In(time.Local).Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	reports := make([]DayReport, 0, len(days))
	for _, day := range days {
		dayEntries := byDay[day]
		total := 0.0
		for _, entry := range dayEntries {
			total += entry.DurationHours
		}
		reports = append(reports, DayReport{
			Date:       day,
			TotalHours: roundHours(total),
			Duration:   durfmt.FormatEnglish(total),
			EntryCount: len(dayEntries),
		})
	}

	return reports
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

func WriteDayReports(path, format string, reports []DayReport) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeDayReportsCSV(path, reports)
	case "excel", "xlsx":
		return writeDayReportsExcel(path, reports)
	default:
		return fmt.Errorf("unsupported output format for day reports: %s", format)
	}
}
