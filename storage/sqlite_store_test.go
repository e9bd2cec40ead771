package storage

import (
	"path/filepath"
	"testing"
	"time"

	"daylog/timelog"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "daylog_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testEntry(createdAt time.Time) timelog.Entry {
	return timelog.Entry{
		Title:         "write report",
		Description:   "quarterly numbers",
		ProjectID:     "proj-1",
		LocationID:    "loc-1",
		DurationHours: 1.5,
		Deadline:      createdAt.AddDate(0, 0, 7),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		CreatedBy:     "user-1",
		UpdatedBy:     "user-1",
	}
}

func TestSQLiteStore_InsertAndGetEntry(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	id, err := store.InsertEntry(testEntry(now))
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	got, found, err := store.GetEntryByID(id)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if !found {
		t.Fatalf("expected entry to be found")
	}
	if got.Title != "write report" || got.DurationHours != 1.5 {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, got.CreatedAt)
	}
}

func TestSQLiteStore_ListEntriesFiltersByOwnerNewestFirst(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	base := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	older := testEntry(base)
	newer := testEntry(base.Add(2 * time.Hour))
	newer.Title = "newer"
	other := testEntry(base.Add(time.Hour))
	other.CreatedBy = "someone-else"

	for _, entry := range []timelog.Entry{older, newer, other} {
		if _, err := store.InsertEntry(entry); err != nil {
			t.Fatalf("insert entry: %v", err)
		}
	}

	listed, err := store.ListEntries("user-1")
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 owned entries, got %d", len(listed))
	}
	if listed[0].Title != "newer" {
		t.Fatalf("expected newest entry first, got %q", listed[0].Title)
	}
}

func TestSQLiteStore_UpdateEntryNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	entry := testEntry(time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC))
	entry.ID = "missing"
	if err := store.UpdateEntry(entry); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestSQLiteStore_ArchiveAndUpdateEntry(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	id, err := store.InsertEntry(testEntry(now))
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}

	original, _, err := store.GetEntryByID(id)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}

	snapshot := timelog.Snapshot(original)
	snapshot.CreatedAt = now.Add(time.Hour)

	updated := original
	updated.Title = "write final report"
	updated.DurationHours = 3
	updated.UpdatedAt = now.Add(time.Hour)
	updated.UpdatedBy = "user-1"

	archiveID, err := store.ArchiveAndUpdateEntry(snapshot, updated)
	if err != nil {
		t.Fatalf("archive and update: %v", err)
	}

	archived, found, err := store.GetArchiveByID(archiveID)
	if err != nil {
		t.Fatalf("get archive: %v", err)
	}
	if !found {
		t.Fatalf("expected archive to be found")
	}
	if archived.Title != "write report" || archived.DurationHours != 1.5 {
		t.Fatalf("archive does not carry pre-edit values: %+v", archived)
	}
	if archived.EntryID != id {
		t.Fatalf("expected back-reference to %s, got %s", id, archived.EntryID)
	}

	live, _, err := store.GetEntryByID(id)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if live.Title != "write final report" || live.DurationHours != 3 {
		t.Fatalf("entry does not carry post-edit values: %+v", live)
	}
	if !live.CreatedAt.Equal(now) {
		t.Fatalf("created_at must not change on update, got %v", live.CreatedAt)
	}
}

func TestSQLiteStore_ArchiveAndUpdateEntry_MissingEntryWritesNothing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	entry := testEntry(now)
	entry.ID = "missing"
	snapshot := timelog.Snapshot(entry)
	snapshot.CreatedAt = now

	if _, err := store.ArchiveAndUpdateEntry(snapshot, entry); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	archives, err := store.ListArchives("missing")
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(archives) != 0 {
		t.Fatalf("expected rolled-back snapshot, found %d archives", len(archives))
	}
}

func TestSQLiteStore_DeleteEntryKeepsArchivesByDefault(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	id, err := store.InsertEntry(testEntry(now))
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
	entry, _, err := store.GetEntryByID(id)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	snapshot := timelog.Snapshot(entry)
	snapshot.CreatedAt = now
	if _, err := store.InsertArchive(snapshot); err != nil {
		t.Fatalf("insert archive: %v", err)
	}

	deleted, err := store.DeleteEntry(id, false)
	if err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if !deleted {
		t.Fatalf("expected entry to be deleted")
	}

	archives, err := store.ListArchives(id)
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(archives) != 1 {
		t.Fatalf("expected orphaned archive to survive, got %d", len(archives))
	}
}

func TestSQLiteStore_DeleteEntryPurgesArchivesWhenAsked(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	id, err := store.InsertEntry(testEntry(now))
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
	entry, _, err := store.GetEntryByID(id)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	snapshot := timelog.Snapshot(entry)
	snapshot.CreatedAt = now
	if _, err := store.InsertArchive(snapshot); err != nil {
		t.Fatalf("insert archive: %v", err)
	}

	if _, err := store.DeleteEntry(id, true); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	archives, err := store.ListArchives(id)
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(archives) != 0 {
		t.Fatalf("expected purged archives, got %d", len(archives))
	}
}

func TestSQLiteStore_UpdateAndDeleteArchive(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	entry := testEntry(now)
	entry.ID = "entry-1"
	snapshot := timelog.Snapshot(entry)
	snapshot.CreatedAt = now

	archiveID, err := store.InsertArchive(snapshot)
	if err != nil {
		t.Fatalf("insert archive: %v", err)
	}

	snapshot.ID = archiveID
	snapshot.Title = "amended history"
	if err := store.UpdateArchive(snapshot); err != nil {
		t.Fatalf("update archive: %v", err)
	}

	got, _, err := store.GetArchiveByID(archiveID)
	if err != nil {
		t.Fatalf("get archive: %v", err)
	}
	if got.Title != "amended history" {
		t.Fatalf("expected in-place update, got %+v", got)
	}

	deleted, err := store.DeleteArchive(archiveID)
	if err != nil {
		t.Fatalf("delete archive: %v", err)
	}
	if !deleted {
		t.Fatalf("expected archive to be deleted")
	}

	missing := snapshot
	missing.ID = "missing"
	if err := store.UpdateArchive(missing); err != ErrArchiveNotFound {
		t.Fatalf("expected ErrArchiveNotFound, got %v", err)
	}
}

func TestSQLiteStore_ProjectsAndLocations(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	if _, err := store.InsertProject(timelog.Project{Name: "platform", CreatedAt: now, CreatedBy: "user-1"}); err != nil {
		t.Fatalf("insert project: %v", err)
	}
	if _, err := store.InsertProject(timelog.Project{Name: "billing", CreatedAt: now, CreatedBy: "user-1"}); err != nil {
		t.Fatalf("insert project: %v", err)
	}
	if _, err := store.InsertLocation(timelog.Location{Name: "office", CreatedAt: now, CreatedBy: "user-1"}); err != nil {
		t.Fatalf("insert location: %v", err)
	}
	if _, err := store.InsertProject(timelog.Project{Name: "hidden", CreatedAt: now, CreatedBy: "someone-else"}); err != nil {
		t.Fatalf("insert project: %v", err)
	}

	projects, err := store.ListProjects("user-1")
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Name != "billing" || projects[1].Name != "platform" {
		t.Fatalf("expected name-sorted projects, got %+v", projects)
	}

	locations, err := store.ListLocations("user-1")
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(locations) != 1 || locations[0].Name != "office" {
		t.Fatalf("unexpected locations: %+v", locations)
	}
}
