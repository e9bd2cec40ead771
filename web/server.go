// Package web serves a localhost-only single-user JSON dashboard; it
// intentionally has no auth/CSRF protection in this mode.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"daylog/archiver"
	"daylog/config"
	"daylog/durfmt"
	"daylog/storage"
	"daylog/timelog"
)

type Server struct {
	store   *storage.SQLiteStore
	archive *archiver.Service
	cfg     config.Config
	mux     *http.ServeMux
	now     func() time.Time
}

type entryMutationRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ProjectID   string  `json:"projectId"`
	LocationID  string  `json:"locationId"`
	Hours       float64 `json:"hours"`
	// Duration accepts the "H,MM" entry shorthand; when set it takes
	// precedence over hours.
	Duration string `json:"duration"`
	Deadline string `json:"deadline"`
	// Archive asks for a pre-edit snapshot; only meaningful on PATCH of a
	// live entry.
	Archive bool `json:"archive"`
}

type namedMutationRequest struct {
	Name string `json:"name"`
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) http.Handler {
	server := &Server{
		store:   store,
		archive: archiver.NewService(store),
		cfg:     cfg,
		now:     time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dashboard", server.handleAPIDashboard)
	mux.HandleFunc("GET /api/entries", server.handleAPIEntries)
	mux.HandleFunc("POST /api/entry", server.handleAPIEntryCreate)
	mux.HandleFunc("PATCH /api/entry/{id}", server.handleAPIEntryPatch)
	mux.HandleFunc("DELETE /api/entry/{id}", server.handleAPIEntryDelete)
	mux.HandleFunc("GET /api/entry/{id}/archives", server.handleAPIEntryArchives)
	mux.HandleFunc("PATCH /api/archive/{id}", server.handleAPIArchivePatch)
	mux.HandleFunc("DELETE /api/archive/{id}", server.handleAPIArchiveDelete)
	mux.HandleFunc("GET /api/projects", server.handleAPIProjects)
	mux.HandleFunc("POST /api/project", server.handleAPIProjectCreate)
	mux.HandleFunc("GET /api/locations", server.handleAPILocations)
	mux.HandleFunc("POST /api/location", server.handleAPILocationCreate)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListEntries(s.cfg.User)
	if err != nil {
		http.Error(w, fmt.Sprintf("load entries: %v", err), http.StatusInternalServerError)
		return
	}

	view := BuildDashboardView(entries, s.now(), s.cfg.Goal.DailyTargetHours)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAPIEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListEntries(s.cfg.User)
	if err != nil {
		http.Error(w, fmt.Sprintf("load entries: %v", err), http.StatusInternalServerError)
		return
	}

	rows := make([]EntryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, entryToRow(entry))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAPIEntryCreate(w http.ResponseWriter, r *http.Request) {
	var body entryMutationRequest
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := buildFormFromMutation(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := s.archive.Create(form, s.cfg.User, s.now())
	if err != nil {
		http.Error(w, err.Error(), mutationErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusCreated, entryToRow(entry))
}

func (s *Server) handleAPIEntryPatch(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var body entryMutationRequest
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := buildFormFromMutation(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decision := archiver.SnapshotDeclined
	if body.Archive {
		decision = archiver.SnapshotConfirmed
	}

	result, err := s.archive.EditLive(id, form, decision, s.cfg.User, s.now())
	if err != nil {
		http.Error(w, err.Error(), mutationErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entry":     entryToRow(result.Entry),
		"archiveId": result.ArchiveID,
	})
}

func (s *Server) handleAPIEntryDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}
	purge := strings.TrimSpace(r.URL.Query().Get("purge")) == "1"

	deleted, err := s.store.DeleteEntry(id, purge)
	if err != nil {
		http.Error(w, fmt.Sprintf("delete entry: %v", err), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIEntryArchives(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	archives, err := s.store.ListArchives(id)
	if err != nil {
		http.Error(w, fmt.Sprintf("load archives: %v", err), http.StatusInternalServerError)
		return
	}

	rows := make([]ArchiveRow, 0, len(archives))
	for _, archive := range archives {
		rows = append(rows, archiveToRow(archive))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAPIArchivePatch(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "invalid archive id", http.StatusBadRequest)
		return
	}

	var body entryMutationRequest
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := buildFormFromMutation(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	archive, err := s.archive.EditArchive(id, form)
	if err != nil {
		http.Error(w, err.Error(), mutationErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, archiveToRow(archive))
}

func (s *Server) handleAPIArchiveDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "invalid archive id", http.StatusBadRequest)
		return
	}

	deleted, err := s.store.DeleteArchive(id)
	if err != nil {
		http.Error(w, fmt.Sprintf("delete archive: %v", err), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "archive not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(s.cfg.User)
	if err != nil {
		http.Error(w, fmt.Sprintf("load projects: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, projectNames(projects))
}

func (s *Server) handleAPIProjectCreate(w http.ResponseWriter, r *http.Request) {
	name, err := decodeNamedMutation(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.store.InsertProject(timelog.Project{Name: name, CreatedAt: s.now(), CreatedBy: s.cfg.User})
	if err != nil {
		http.Error(w, fmt.Sprintf("insert project: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleAPILocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.store.ListLocations(s.cfg.User)
	if err != nil {
		http.Error(w, fmt.Sprintf("load locations: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, locationNames(locations))
}

func (s *Server) handleAPILocationCreate(w http.ResponseWriter, r *http.Request) {
	name, err := decodeNamedMutation(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.store.InsertLocation(timelog.Location{Name: name, CreatedAt: s.now(), CreatedBy: s.cfg.User})
	if err != nil {
		http.Error(w, fmt.Sprintf("insert location: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type namedRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func projectNames(projects []timelog.Project) []namedRow {
	out := make([]namedRow, 0, len(projects))
	for _, project := range projects {
		out = append(out, namedRow{ID: project.ID, Name: project.Name})
	}
	return out
}

func locationNames(locations []timelog.Location) []namedRow {
	out := make([]namedRow, 0, len(locations))
	for _, location := range locations {
		out = append(out, namedRow{ID: location.ID, Name: location.Name})
	}
	return out
}

func buildFormFromMutation(body entryMutationRequest) (archiver.Form, error) {
	deadline, err := parseISODate(body.Deadline)
	if err != nil {
		return archiver.Form{}, fmt.Errorf("invalid deadline (expected YYYY-MM-DD)")
	}

	hours := body.Hours
	if strings.TrimSpace(body.Duration) != "" {
		hours = durfmt.ParseShorthand(body.Duration)
	}
	if hours < 0 {
		return archiver.Form{}, fmt.Errorf("hours must be >= 0")
	}

	return archiver.Form{
		Title:         strings.TrimSpace(body.Title),
		Description:   strings.TrimSpace(body.Description),
		ProjectID:     strings.TrimSpace(body.ProjectID),
		LocationID:    strings.TrimSpace(body.LocationID),
		DurationHours: hours,
		Deadline:      deadline,
	}, nil
}

func decodeNamedMutation(r *http.Request) (string, error) {
	var body namedMutationRequest
	if err := decodeJSON(r, &body); err != nil {
		return "", err
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	return name, nil
}

func parseISODate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
}

func mutationErrorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrEntryNotFound), errors.Is(err, storage.ErrArchiveNotFound):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "validation failed"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
