package web

import (
	"time"

	"daylog/durfmt"
	"daylog/summary"
	"daylog/timelog"
)

type EntryRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ProjectID   string  `json:"projectId"`
	LocationID  string  `json:"locationId,omitempty"`
	Hours       float64 `json:"hours"`
	Duration    string  `json:"duration"`
	Deadline    string  `json:"deadline"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ArchiveRow struct {
	ID         string  `json:"id"`
	EntryID    string  `json:"entryId"`
	Title      string  `json:"title"`
	ProjectID  string  `json:"projectId"`
	LocationID string  `json:"locationId,omitempty"`
	Hours      float64 `json:"hours"`
	Duration   string  `json:"duration"`
	Deadline   string  `json:"deadline"`
	ArchivedAt string  `json:"archivedAt"`
}

type DimensionView struct {
	ID       string  `json:"id"`
	Hours    float64 `json:"hours"`
	Duration string  `json:"duration"`
}

type GoalView struct {
	TargetHours   float64 `json:"targetHours"`
	AchievedHours float64 `json:"achievedHours"`
	Progress      float64 `json:"progress"`
	Remaining     string  `json:"remaining"`
	Overtime      string  `json:"overtime"`
	Status        string  `json:"status"`
}

type DashboardView struct {
	Today        string         `json:"today"`
	Week         string         `json:"week"`
	Month        string         `json:"month"`
	ActiveDays   int            `json:"activeDays"`
	AverageDaily string         `json:"averageDaily"`
	TopProject   *DimensionView `json:"topProject,omitempty"`
	TopLocation  *DimensionView `json:"topLocation,omitempty"`
	Goal         GoalView       `json:"goal"`
	Recent       []EntryRow     `json:"recent"`
}

const recentEntryCount = 3

// BuildDashboardView reduces the owner's entries into the dashboard payload.
// Entries must be sorted descending by creation time, which is how the
// store lists them.
func BuildDashboardView(entries []timelog.Entry, now time.Time, targetHours float64) DashboardView {
	stats := summary.Summarize(entries, now)
	goal := summary.EvaluateGoal(stats.TodayHours, targetHours)

	recent := summary.RecentEntries(entries, recentEntryCount)
	rows := make([]EntryRow, 0, len(recent))
	for _, entry := range recent {
		rows = append(rows, entryToRow(entry))
	}

	return DashboardView{
		Today:        durfmt.FormatEnglish(stats.TodayHours),
		Week:         durfmt.FormatEnglish(stats.WeekHours),
		Month:        durfmt.FormatEnglish(stats.MonthHours),
		ActiveDays:   stats.ActiveDays,
		AverageDaily: durfmt.FormatEnglish(stats.AverageDaily),
		TopProject:   dimensionView(stats.TopProject),
		TopLocation:  dimensionView(stats.TopLocation),
		Goal: GoalView{
			TargetHours:   goal.TargetHours,
			AchievedHours: goal.AchievedHours,
			Progress:      goal.Progress,
			Remaining:     durfmt.FormatEnglish(goal.RemainingHours),
			Overtime:      durfmt.FormatEnglish(goal.OvertimeHours),
			Status:        string(goal.Status),
		},
		Recent: rows,
	}
}

func dimensionView(value *summary.DimensionTotal) *DimensionView {
	if value == nil {
		return nil
	}
	return &DimensionView{
		ID:       value.ID,
		Hours:    value.Hours,
		Duration: durfmt.FormatEnglish(value.Hours),
	}
}

func entryToRow(entry timelog.Entry) EntryRow {
	return EntryRow{
		ID:          entry.ID,
		Title:       entry.Title,
		Description: entry.Description,
		ProjectID:   entry.ProjectID,
		LocationID:  entry.LocationID,
		Hours:       entry.DurationHours,
		Duration:    durfmt.FormatEnglish(entry.DurationHours),
		Deadline:    entry.Deadline.Format("2006-01-02"),
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   entry.UpdatedAt.Format(time.RFC3339),
	}
}

func archiveToRow(archive timelog.ArchivedEntry) ArchiveRow {
	return ArchiveRow{
		ID:         archive.ID,
		EntryID:    archive.EntryID,
		Title:      archive.Title,
		ProjectID:  archive.ProjectID,
		LocationID: archive.LocationID,
		Hours:      archive.DurationHours,
		Duration:   durfmt.FormatEnglish(archive.DurationHours),
		Deadline:   archive.Deadline.Format("2006-01-02"),
		ArchivedAt: archive.CreatedAt.Format(time.RFC3339),
	}
}
