// Package archiver governs edits to time log entries: it validates the
// submitted form, snapshots the pre-edit values into the archive when the
// user confirms, and applies the update. Snapshot and update commit in one
// transaction through the store.
package archiver

import (
	"fmt"
	"time"

	"daylog/storage"
	"daylog/timelog"

	"github.com/go-playground/validator/v10"
)

// Store is the slice of the SQLite store the edit flow needs.
type Store interface {
	InsertEntry(entry timelog.Entry) (string, error)
	GetEntryByID(id string) (timelog.Entry, bool, error)
	UpdateEntry(entry timelog.Entry) error
	ArchiveAndUpdateEntry(snapshot timelog.ArchivedEntry, entry timelog.Entry) (string, error)
	GetArchiveByID(id string) (timelog.ArchivedEntry, bool, error)
	UpdateArchive(snapshot timelog.ArchivedEntry) error
}

// Form carries the user-editable entry fields of a create or edit submission.
type Form struct {
	Title         string    `validate:"required"`
	Description   string    `validate:"-"`
	ProjectID     string    `validate:"required"`
	LocationID    string    `validate:"-"`
	DurationHours float64   `validate:"gte=0"`
	Deadline      time.Time `validate:"required"`
}

// SnapshotDecision is the user's answer to the archive confirmation asked
// before an edit to a live entry is applied.
type SnapshotDecision int

const (
	// SnapshotDeclined applies the update without preserving history.
	SnapshotDeclined SnapshotDecision = iota
	// SnapshotConfirmed writes a pre-edit snapshot first, then updates.
	SnapshotConfirmed
)

// EditResult reports the committed outcome of an edit. ArchiveID is empty
// when no snapshot was written.
type EditResult struct {
	Entry     timelog.Entry
	ArchiveID string
}

type Service struct {
	store    Store
	validate *validator.Validate
}

func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// validateCreate checks the fields required to create an entry: title,
// project and deadline. Duration defaults to 0 and location to none.
func (s *Service) validateCreate(form Form) error {
	if err := s.validate.Struct(form); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateEdit additionally requires a location and a strictly positive
// duration, matching the edit form of a live entry.
func (s *Service) validateEdit(form Form) error {
	if err := s.validateCreate(form); err != nil {
		return err
	}
	if form.LocationID == "" {
		return fmt.Errorf("validation failed: location is required when editing an entry")
	}
	if form.DurationHours <= 0 {
		return fmt.Errorf("validation failed: duration must be > 0 when editing an entry")
	}
	return nil
}

// Create inserts a new live entry from the form. Both timestamps start at
// now; creator and modifier identity start as actor.
func (s *Service) Create(form Form, actor string, now time.Time) (timelog.Entry, error) {
	if err := s.validateCreate(form); err != nil {
		return timelog.Entry{}, err
	}

	entry := timelog.Entry{
		Title:         form.Title,
		Description:   form.Description,
		ProjectID:     form.ProjectID,
		LocationID:    form.LocationID,
		DurationHours: form.DurationHours,
		Deadline:      form.Deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     actor,
		UpdatedBy:     actor,
	}

	id, err := s.store.InsertEntry(entry)
	if err != nil {
		return timelog.Entry{}, err
	}
	entry.ID = id
	return entry, nil
}

// EditLive applies the form to an existing live entry. When the snapshot is
// confirmed, the entry's current (pre-edit) values are archived first;
// declining still applies the update, just without preserving history.
func (s *Service) EditLive(id string, form Form, decision SnapshotDecision, actor string, now time.Time) (EditResult, error) {
	if err := s.validateEdit(form); err != nil {
		return EditResult{}, err
	}

	existing, found, err := s.store.GetEntryByID(id)
	if err != nil {
		return EditResult{}, err
	}
	if !found {
		return EditResult{}, storage.ErrEntryNotFound
	}

	updated := existing
	updated.Title = form.Title
	updated.Description = form.Description
	updated.ProjectID = form.ProjectID
	updated.LocationID = form.LocationID
	updated.DurationHours = form.DurationHours
	updated.Deadline = form.Deadline
	updated.UpdatedAt = now
	updated.UpdatedBy = actor

	result := EditResult{Entry: updated}

	if decision == SnapshotConfirmed {
		snapshot := timelog.Snapshot(existing)
		snapshot.CreatedAt = now

		archiveID, err := s.store.ArchiveAndUpdateEntry(snapshot, updated)
		if err != nil {
			return EditResult{}, err
		}
		result.ArchiveID = archiveID
		return result, nil
	}

	if err := s.store.UpdateEntry(updated); err != nil {
		return EditResult{}, err
	}
	return result, nil
}

// EditArchive mutates an archived snapshot in place. Editing archive
// history never asks for an archive decision and never produces a new
// snapshot.
func (s *Service) EditArchive(id string, form Form) (timelog.ArchivedEntry, error) {
	if err := s.validateCreate(form); err != nil {
		return timelog.ArchivedEntry{}, err
	}

	existing, found, err := s.store.GetArchiveByID(id)
	if err != nil {
		return timelog.ArchivedEntry{}, err
	}
	if !found {
		return timelog.ArchivedEntry{}, storage.ErrArchiveNotFound
	}

	existing.Title = form.Title
	existing.Description = form.Description
	existing.ProjectID = form.ProjectID
	existing.LocationID = form.LocationID
	existing.DurationHours = form.DurationHours
	existing.Deadline = form.Deadline

	if err := s.store.UpdateArchive(existing); err != nil {
		return timelog.ArchivedEntry{}, err
	}
	return existing, nil
}
