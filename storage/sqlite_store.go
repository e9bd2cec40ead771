package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"daylog/timelog"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrEntryNotFound    = errors.New("time log entry not found")
	ErrArchiveNotFound  = errors.New("archived entry not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrLocationNotFound = errors.New("location not found")
)

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	project_id TEXT NOT NULL,
	location_id TEXT NOT NULL DEFAULT '',
	duration_hours REAL NOT NULL CHECK(duration_hours >= 0),
	deadline TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	created_by TEXT NOT NULL,
	updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS archives (
	id TEXT PRIMARY KEY,
	entry_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	project_id TEXT NOT NULL,
	location_id TEXT NOT NULL DEFAULT '',
	duration_hours REAL NOT NULL CHECK(duration_hours >= 0),
	deadline TEXT NOT NULL,
	created_at TEXT NOT NULL,
	created_by TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_archives_entry_id ON archives(entry_id);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL,
	created_by TEXT NOT NULL,
	UNIQUE(name, created_by)
);

CREATE TABLE IF NOT EXISTS locations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL,
	created_by TEXT NOT NULL,
	UNIQUE(name, created_by)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertEntry stores a new time log entry and returns its generated ID.
// CreatedAt/UpdatedAt are taken from the entry as supplied by the caller.
func (s *SQLiteStore) InsertEntry(entry timelog.Entry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	const insertStmt = `
INSERT INTO entries (
	id,
	title,
	description,
	project_id,
	location_id,
	duration_hours,
	deadline,
	created_at,
	updated_at,
	created_by,
	updated_by
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		entry.ID,
		entry.Title,
		entry.Description,
		entry.ProjectID,
		entry.LocationID,
		entry.DurationHours,
		entry.Deadline.Format(time.RFC3339),
		entry.CreatedAt.Format(time.RFC3339),
		entry.UpdatedAt.Format(time.RFC3339),
		entry.CreatedBy,
		entry.UpdatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("insert entry: %w", err)
	}
	return entry.ID, nil
}

const entryColumns = `
	id,
	title,
	description,
	project_id,
	location_id,
	duration_hours,
	deadline,
	created_at,
	updated_at,
	created_by,
	updated_by`

// ListEntries returns all entries owned by the given identity, most recent
// first. That ordering is the precondition the dashboard's recency slice
// relies on.
func (s *SQLiteStore) ListEntries(owner string) ([]timelog.Entry, error) {
	query := `SELECT` + entryColumns + `
FROM entries
WHERE created_by = ?
ORDER BY created_at DESC, id;`

	rows, err := s.db.Query(query, owner)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timelog.Entry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// GetEntryByID returns one entry. The second return value is false when no
// row with that ID exists.
func (s *SQLiteStore) GetEntryByID(id string) (timelog.Entry, bool, error) {
	if id == "" {
		return timelog.Entry{}, false, fmt.Errorf("entry id must not be empty")
	}

	query := `SELECT` + entryColumns + `
FROM entries
WHERE id = ?;`

	entry, err := scanEntry(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timelog.Entry{}, false, nil
		}
		return timelog.Entry{}, false, err
	}
	return entry, true, nil
}

// UpdateEntry replaces all user-editable fields plus the modification
// metadata for the row with the entry's ID. created_at and created_by are
// never touched after insert.
func (s *SQLiteStore) UpdateEntry(entry timelog.Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry id must not be empty")
	}

	res, err := s.db.Exec(
		updateEntryStmt,
		entry.Title,
		entry.Description,
		entry.ProjectID,
		entry.LocationID,
		entry.DurationHours,
		entry.Deadline.Format(time.RFC3339),
		entry.UpdatedAt.Format(time.RFC3339),
		entry.UpdatedBy,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry %s: %w", entry.ID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

const updateEntryStmt = `
UPDATE entries
SET title = ?,
	description = ?,
	project_id = ?,
	location_id = ?,
	duration_hours = ?,
	deadline = ?,
	updated_at = ?,
	updated_by = ?
WHERE id = ?;`

// ArchiveAndUpdateEntry writes the pre-edit snapshot and applies the update
// in one transaction, so a partial failure leaves neither change behind.
// It returns the new archive's ID.
func (s *SQLiteStore) ArchiveAndUpdateEntry(snapshot timelog.ArchivedEntry, entry timelog.Entry) (string, error) {
	if entry.ID == "" {
		return "", fmt.Errorf("entry id must not be empty")
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		insertArchiveStmt,
		snapshot.ID,
		snapshot.EntryID,
		snapshot.Title,
		snapshot.Description,
		snapshot.ProjectID,
		snapshot.LocationID,
		snapshot.DurationHours,
		snapshot.Deadline.Format(time.RFC3339),
		snapshot.CreatedAt.Format(time.RFC3339),
		snapshot.CreatedBy,
	); err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("insert archive snapshot: %w", err)
	}

	res, err := tx.Exec(
		updateEntryStmt,
		entry.Title,
		entry.Description,
		entry.ProjectID,
		entry.LocationID,
		entry.DurationHours,
		entry.Deadline.Format(time.RFC3339),
		entry.UpdatedAt.Format(time.RFC3339),
		entry.UpdatedBy,
		entry.ID,
	)
	if err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("update entry %s: %w", entry.ID, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		_ = tx.Rollback()
		return "", ErrEntryNotFound
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit archive transaction: %w", err)
	}
	return snapshot.ID, nil
}

// DeleteEntry removes the entry row. Archived snapshots stay behind unless
// purgeArchives is set.
func (s *SQLiteStore) DeleteEntry(id string, purgeArchives bool) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("entry id must not be empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM entries WHERE id = ?;`, id)
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("delete entry %s: %w", id, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("read deleted row count: %w", err)
	}

	if purgeArchives {
		if _, err := tx.Exec(`DELETE FROM archives WHERE entry_id = ?;`, id); err != nil {
			_ = tx.Rollback()
			return false, fmt.Errorf("purge archives for entry %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete transaction: %w", err)
	}
	return rowsAffected > 0, nil
}

const insertArchiveStmt = `
INSERT INTO archives (
	id,
	entry_id,
	title,
	description,
	project_id,
	location_id,
	duration_hours,
	deadline,
	created_at,
	created_by
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

const archiveColumns = `
	id,
	entry_id,
	title,
	description,
	project_id,
	location_id,
	duration_hours,
	deadline,
	created_at,
	created_by`

// InsertArchive stores a snapshot on its own, outside an edit transaction.
func (s *SQLiteStore) InsertArchive(snapshot timelog.ArchivedEntry) (string, error) {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}

	_, err := s.db.Exec(
		insertArchiveStmt,
		snapshot.ID,
		snapshot.EntryID,
		snapshot.Title,
		snapshot.Description,
		snapshot.ProjectID,
		snapshot.LocationID,
		snapshot.DurationHours,
		snapshot.Deadline.Format(time.RFC3339),
		snapshot.CreatedAt.Format(time.RFC3339),
		snapshot.CreatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("insert archive snapshot: %w", err)
	}
	return snapshot.ID, nil
}

// ListArchives returns all snapshots for one entry, newest first.
func (s *SQLiteStore) ListArchives(entryID string) ([]timelog.ArchivedEntry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("entry id must not be empty")
	}

	query := `SELECT` + archiveColumns + `
FROM archives
WHERE entry_id = ?
ORDER BY created_at DESC, id;`

	rows, err := s.db.Query(query, entryID)
	if err != nil {
		return nil, fmt.Errorf("query archives: %w", err)
	}
	defer rows.Close()

	archives := make([]timelog.ArchivedEntry, 0, 16)
	for rows.Next() {
		archive, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}
		archives = append(archives, archive)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archives: %w", err)
	}
	return archives, nil
}

// GetArchiveByID returns one snapshot. The second return value is false
// when no row with that ID exists.
func (s *SQLiteStore) GetArchiveByID(id string) (timelog.ArchivedEntry, bool, error) {
	if id == "" {
		return timelog.ArchivedEntry{}, false, fmt.Errorf("archive id must not be empty")
	}

	query := `SELECT` + archiveColumns + `
FROM archives
WHERE id = ?;`

	archive, err := scanArchive(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timelog.ArchivedEntry{}, false, nil
		}
		return timelog.ArchivedEntry{}, false, err
	}
	return archive, true, nil
}

// UpdateArchive mutates a snapshot in place. Editing archive history never
// produces a new snapshot.
func (s *SQLiteStore) UpdateArchive(snapshot timelog.ArchivedEntry) error {
	if snapshot.ID == "" {
		return fmt.Errorf("archive id must not be empty")
	}

	const updateStmt = `
UPDATE archives
SET title = ?,
	description = ?,
	project_id = ?,
	location_id = ?,
	duration_hours = ?,
	deadline = ?
WHERE id = ?;`

	res, err := s.db.Exec(
		updateStmt,
		snapshot.Title,
		snapshot.Description,
		snapshot.ProjectID,
		snapshot.LocationID,
		snapshot.DurationHours,
		snapshot.Deadline.Format(time.RFC3339),
		snapshot.ID,
	)
	if err != nil {
		return fmt.Errorf("update archive %s: %w", snapshot.ID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrArchiveNotFound
	}
	return nil
}

// DeleteArchive removes one snapshot independent of its entry.
func (s *SQLiteStore) DeleteArchive(id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("archive id must not be empty")
	}

	res, err := s.db.Exec(`DELETE FROM archives WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete archive %s: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rowsAffected > 0, nil
}

func (s *SQLiteStore) InsertProject(project timelog.Project) (string, error) {
	return s.insertNamed("projects", project.ID, project.Name, project.CreatedAt, project.CreatedBy)
}

func (s *SQLiteStore) InsertLocation(location timelog.Location) (string, error) {
	return s.insertNamed("locations", location.ID, location.Name, location.CreatedAt, location.CreatedBy)
}

func (s *SQLiteStore) insertNamed(table, id, name string, createdAt time.Time, createdBy string) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}

	stmt := `INSERT INTO ` + table + ` (id, name, created_at, created_by) VALUES (?, ?, ?, ?);`
	if _, err := s.db.Exec(stmt, id, name, createdAt.Format(time.RFC3339), createdBy); err != nil {
		return "", fmt.Errorf("insert into %s: %w", table, err)
	}
	return id, nil
}

func (s *SQLiteStore) ListProjects(owner string) ([]timelog.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at, created_by FROM projects WHERE created_by = ? ORDER BY name, id;`, owner)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]timelog.Project, 0, 16)
	for rows.Next() {
		var (
			project    timelog.Project
			createdRaw string
		)
		if err := rows.Scan(&project.ID, &project.Name, &createdRaw, &project.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		project.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse project created_at %q: %w", createdRaw, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func (s *SQLiteStore) ListLocations(owner string) ([]timelog.Location, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at, created_by FROM locations WHERE created_by = ? ORDER BY name, id;`, owner)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	locations := make([]timelog.Location, 0, 16)
	for rows.Next() {
		var (
			location   timelog.Location
			createdRaw string
		)
		if err := rows.Scan(&location.ID, &location.Name, &createdRaw, &location.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		location.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse location created_at %q: %w", createdRaw, err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (timelog.Entry, error) {
	var (
		entry       timelog.Entry
		deadlineRaw string
		createdRaw  string
		updatedRaw  string
	)

	if err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&entry.ProjectID,
		&entry.LocationID,
		&entry.DurationHours,
		&deadlineRaw,
		&createdRaw,
		&updatedRaw,
		&entry.CreatedBy,
		&entry.UpdatedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timelog.Entry{}, err
		}
		return timelog.Entry{}, fmt.Errorf("scan entry: %w", err)
	}

	var err error
	entry.Deadline, err = time.Parse(time.RFC3339, deadlineRaw)
	if err != nil {
		return timelog.Entry{}, fmt.Errorf("parse deadline %q: %w", deadlineRaw, err)
	}
	entry.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return timelog.Entry{}, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
	}
	entry.UpdatedAt, err = time.Parse(time.RFC3339, updatedRaw)
	if err != nil {
		return timelog.Entry{}, fmt.Errorf("parse updated_at %q: %w", updatedRaw, err)
	}
	return entry, nil
}

func scanArchive(row rowScanner) (timelog.ArchivedEntry, error) {
	var (
		archive     timelog.ArchivedEntry
		deadlineRaw string
		createdRaw  string
	)

	if err := row.Scan(
		&archive.ID,
		&archive.EntryID,
		&archive.Title,
		&archive.Description,
		&archive.ProjectID,
		&archive.LocationID,
		&archive.DurationHours,
		&deadlineRaw,
		&createdRaw,
		&archive.CreatedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timelog.ArchivedEntry{}, err
		}
		return timelog.ArchivedEntry{}, fmt.Errorf("scan archive: %w", err)
	}

	var err error
	archive.Deadline, err = time.Parse(time.RFC3339, deadlineRaw)
	if err != nil {
		return timelog.ArchivedEntry{}, fmt.Errorf("parse deadline %q: %w", deadlineRaw, err)
	}
	archive.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return timelog.ArchivedEntry{}, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
	}
	return archive, nil
}
