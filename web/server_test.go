package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"daylog/config"
	"daylog/storage"
	"daylog/timelog"
)

func newTestServer(t *testing.T) (http.Handler, *storage.SQLiteStore) {
	t.Helper()

	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "daylog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Config{User: "me"}
	cfg.Goal.DailyTargetHours = 8.5
	return NewServer(store, cfg), store
}

func seedEntry(t *testing.T, store *storage.SQLiteStore, title string, hours float64, createdAt time.Time) string {
	t.Helper()

	id, err := store.InsertEntry(timelog.Entry{
		Title:         title,
		ProjectID:     "client-a",
		LocationID:    "office",
		DurationHours: hours,
		Deadline:      createdAt,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		CreatedBy:     "me",
		UpdatedBy:     "me",
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return id
}

func TestDashboardEndpoint(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	seedEntry(t, store, "standup", 0.5, time.Now())
	seedEntry(t, store, "feature work", 4, time.Now())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var view DashboardView
	if err := json.Unmarshal(recorder.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if view.Today != "4h 30m" {
		t.Fatalf("expected today 4h 30m, got %q", view.Today)
	}
	if view.Goal.Status != "in-progress" {
		t.Fatalf("expected goal in-progress, got %q", view.Goal.Status)
	}
	if len(view.Recent) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(view.Recent))
	}
}

func TestCreateEntryEndpoint(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	body := map[string]any{
		"title":     "code review",
		"projectId": "client-a",
		"duration":  "1,30",
		"deadline":  "2026-04-01",
	}
	payload, _ := json.Marshal(body)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/entry", bytes.NewReader(payload)))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var row EntryRow
	if err := json.Unmarshal(recorder.Body.Bytes(), &row); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if row.Hours != 1.5 {
		t.Fatalf("expected shorthand 1,30 to parse as 1.5 hours, got %v", row.Hours)
	}
	if row.Duration != "1h 30m" {
		t.Fatalf("expected duration 1h 30m, got %q", row.Duration)
	}
}

func TestCreateEntryEndpoint_RejectsMissingTitle(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	payload, _ := json.Marshal(map[string]any{
		"projectId": "client-a",
		"hours":     2,
		"deadline":  "2026-04-01",
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/entry", bytes.NewReader(payload)))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateEntryEndpoint_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/entry",
		bytes.NewReader([]byte(`{"title":"x","bogus":true}`))))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", recorder.Code)
	}
}

func TestPatchEntryEndpoint_ArchivesWhenRequested(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	id := seedEntry(t, store, "draft report", 2, time.Now().Add(-time.Hour))

	payload, _ := json.Marshal(map[string]any{
		"title":      "final report",
		"projectId":  "client-a",
		"locationId": "office",
		"hours":      3,
		"deadline":   "2026-04-01",
		"archive":    true,
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/api/entry/"+id, bytes.NewReader(payload)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result struct {
		Entry     EntryRow `json:"entry"`
		ArchiveID string   `json:"archiveId"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode patch result: %v", err)
	}
	if result.Entry.Title != "final report" {
		t.Fatalf("expected updated title, got %q", result.Entry.Title)
	}
	if result.ArchiveID == "" {
		t.Fatal("expected an archive id when archiving was requested")
	}

	archives, err := store.ListArchives(id)
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(archives) != 1 || archives[0].Title != "draft report" {
		t.Fatalf("expected one pre-edit snapshot, got %+v", archives)
	}
}

func TestPatchEntryEndpoint_DeclinedArchive(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	id := seedEntry(t, store, "draft report", 2, time.Now().Add(-time.Hour))

	payload, _ := json.Marshal(map[string]any{
		"title":      "final report",
		"projectId":  "client-a",
		"locationId": "office",
		"hours":      3,
		"deadline":   "2026-04-01",
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/api/entry/"+id, bytes.NewReader(payload)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	archives, err := store.ListArchives(id)
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(archives) != 0 {
		t.Fatalf("expected no snapshots when archiving declined, got %d", len(archives))
	}
}

func TestPatchEntryEndpoint_NotFound(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	payload, _ := json.Marshal(map[string]any{
		"title":      "x",
		"projectId":  "client-a",
		"locationId": "office",
		"hours":      1,
		"deadline":   "2026-04-01",
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/api/entry/missing", bytes.NewReader(payload)))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestDeleteEntryEndpoint(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	id := seedEntry(t, store, "to delete", 1, time.Now())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/entry/"+id, nil))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/entry/"+id, nil))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", recorder.Code)
	}
}

func TestProjectEndpoints(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/project",
		bytes.NewReader([]byte(`{"name":"client-a"}`))))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var rows []namedRow
	if err := json.Unmarshal(recorder.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode projects: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "client-a" {
		t.Fatalf("unexpected projects: %+v", rows)
	}
}
