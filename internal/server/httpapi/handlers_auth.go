package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/common"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}
	if len(req.Password) < users.MinPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	// The cookie is the only place the token lives; page scripts cannot
	// read it and its lifetime matches the embedded expiry.
	http.SetCookie(w, &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.users.TokenValidityDuration() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Clearing the cookie is all there is: tokens are stateless, so a copy
	// kept by the client stays valid until its natural expiry.
	http.SetCookie(w, &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error(r.Context(), "user lookup failed", "error", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         user.ID,
		"username":   user.Username,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	})
}
