package httpapi

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	authAPI := api.PathPrefix("/auth").Subrouter()
	authAPI.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	authAPI.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	authAPI.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	authAPI.HandleFunc("/me", s.requireAuth(s.handleMe)).Methods(http.MethodGet)

	api.HandleFunc("/visits", s.handleGetVisits).Methods(http.MethodGet)
	api.HandleFunc("/visits", s.handleRecordVisit).Methods(http.MethodPost)

	tracker := api.PathPrefix("/tracker").Subrouter()
	tracker.HandleFunc("/progress", s.handleGetProgress).Methods(http.MethodGet)
	tracker.HandleFunc("/progress", s.handleUpdateProgress).Methods(http.MethodPost)
	tracker.HandleFunc("/progress/bulk", s.handleBulkImportProgress).Methods(http.MethodPost)

	ollamaAPI := api.PathPrefix("/ollama").Subrouter()
	ollamaAPI.HandleFunc("/models", s.handleListModels).Methods(http.MethodGet)
	ollamaAPI.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)

	var h http.Handler = r
	h = s.withAccessLog(h)
	h = s.withRequestID(h)

	// Credentialed CORS: the cookie only travels when the origin is allowed
	// explicitly, wildcards do not work with credentials.
	h = handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)

	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
