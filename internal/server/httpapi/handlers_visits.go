package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// remoteIP extracts the client address, preferring the first entry of
// X-Forwarded-For when a reverse proxy sits in front.
func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (s *Server) handleGetVisits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	total, err := s.visits.Total(ctx)
	if err != nil {
		s.logger.Error(r.Context(), "visit count failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"total_visits": total})
}

func (s *Server) handleRecordVisit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.dbCtx(r.Context())
	defer cancel()

	if err := s.visits.Record(ctx, remoteIP(r)); err != nil {
		s.logger.Error(r.Context(), "visit record failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}
