// Package httpapi exposes the REST surface of the dashboard backend. It
// routes requests to the auth, tracker, visit and inference components and
// translates their sentinel errors into JSON error bodies.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/logging"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/config"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/progress"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/visits"
)

// UserService is the slice of the auth service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, username string, password string) (*users.User, error)
	Login(ctx context.Context, username string, password string) (string, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
	TokenValidityDuration() time.Duration
}

// InferenceClient is the slice of the Ollama client the HTTP layer needs.
type InferenceClient interface {
	ListModels(ctx context.Context) (json.RawMessage, error)
	Generate(ctx context.Context, model string, prompt string) (json.RawMessage, error)
}

type Server struct {
	address        string
	logger         logging.Logger
	users          UserService
	progress       progress.Repository
	visits         visits.Repository
	inference      InferenceClient
	jwtSecret      []byte
	jwtAlgorithm   string
	allowedOrigins []string
	dbTimeout      time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, pr progress.Repository, vr visits.Repository, ic InferenceClient) (*Server, error) {
	return &Server{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		progress:       pr,
		visits:         vr,
		inference:      ic,
		jwtSecret:      []byte(cfg.JWTSecret),
		jwtAlgorithm:   cfg.JWTAlgorithm,
		allowedOrigins: cfg.AllowedOrigins,
		dbTimeout:      cfg.DBRequestTimeout,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// it down gracefully with a bounded deadline.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// dbCtx derives a bounded context for a single database call.
func (s *Server) dbCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, s.dbTimeout)
}
