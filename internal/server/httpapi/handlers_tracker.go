package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	mapping, err := s.progress.GetAll(ctx)
	if err != nil {
		s.logger.Error(r.Context(), "progress fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mapping)
}

type progressUpdateRequest struct {
	TaskKey   string `json:"task_key"`
	Completed *bool  `json:"completed"`
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req progressUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Completed is a pointer so an explicit false is distinguishable from a
	// missing field.
	if req.TaskKey == "" || req.Completed == nil {
		writeError(w, http.StatusBadRequest, "task_key and completed are required")
		return
	}

	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	if err := s.progress.Upsert(ctx, req.TaskKey, *req.Completed); err != nil {
		s.logger.Error(r.Context(), "progress upsert failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"task_key":  req.TaskKey,
		"completed": *req.Completed,
	})
}

func (s *Server) handleBulkImportProgress(w http.ResponseWriter, r *http.Request) {
	var entries map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	imported, err := s.progress.BulkUpsert(ctx, entries)
	if err != nil {
		s.logger.Error(r.Context(), "bulk import failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"imported": imported,
	})
}
