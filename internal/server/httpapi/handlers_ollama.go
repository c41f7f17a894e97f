package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	body, err := s.inference.ListModels(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "model listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Model == "" || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "model and prompt are required")
		return
	}

	body, err := s.inference.Generate(r.Context(), req.Model, req.Prompt)
	if err != nil {
		s.logger.Error(r.Context(), "generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}
