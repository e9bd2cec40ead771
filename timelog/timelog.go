package timelog

import "time"

// Entry is the live time-log record shared across storage, aggregation and outputs.
// DurationHours is the canonical decimal-hours encoding, e.g. 1.5 = 1h 30m.
type Entry struct {
	ID            string
	Title         string
	Description   string
	ProjectID     string
	LocationID    string
	DurationHours float64
	Deadline      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
	UpdatedBy     string
}

// ArchivedEntry is a snapshot of an Entry's field values taken immediately
// before an edit overwrote them. Many snapshots may reference one entry.
type ArchivedEntry struct {
	ID            string
	EntryID       string
	Title         string
	Description   string
	ProjectID     string
	LocationID    string
	DurationHours float64
	Deadline      time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// Project is a named grouping entries are billed against.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
	CreatedBy string
}

// Location is an optional place-of-work reference.
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
	CreatedBy string
}

// Snapshot copies the entry's descriptive fields into an archive record.
// The archive keeps its own identity and creation time; both are assigned
// by the store on insert.
func Snapshot(entry Entry) ArchivedEntry {
	return ArchivedEntry{
		EntryID:       entry.ID,
		Title:         entry.Title,
		Description:   entry.Description,
		ProjectID:     entry.ProjectID,
		LocationID:    entry.LocationID,
		DurationHours: entry.DurationHours,
		Deadline:      entry.Deadline,
		CreatedBy:     entry.CreatedBy,
	}
}
