package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/common"
	"github.com/dmitrijs2005/homelab-dashboard/internal/logging"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/config"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
)

// --- in-memory users repository ---

type memUsersRepo struct {
	mu     sync.Mutex
	seq    int64
	byName map[string]*users.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byName: make(map[string]*users.User)}
}

func (m *memUsersRepo) Create(ctx context.Context, u *users.User) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()
	m.byName[u.Username] = u
	return u, nil
}

func (m *memUsersRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byName[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) delete(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byName, username)
}

// --- fake progress repository ---

type fakeProgressRepo struct {
	mu      sync.Mutex
	entries map[string]bool
	err     error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]bool)}
}

func (f *fakeProgressRepo) GetAll(ctx context.Context) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]bool, len(f.entries))
	for k, v := range f.entries {
		out[k] = v
	}
	return out, nil
}

func (f *fakeProgressRepo) Upsert(ctx context.Context, taskKey string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries[taskKey] = completed
	return nil
}

func (f *fakeProgressRepo) BulkUpsert(ctx context.Context, entries map[string]bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for k, v := range entries {
		f.entries[k] = v
	}
	return len(entries), nil
}

// --- fake visits repository ---

type fakeVisitsRepo struct {
	mu    sync.Mutex
	ips   []string
	total int64
	err   error
}

func (f *fakeVisitsRepo) Record(ctx context.Context, remoteIP string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ips = append(f.ips, remoteIP)
	f.total++
	return nil
}

func (f *fakeVisitsRepo) Total(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

// --- fake inference client ---

type fakeInference struct {
	listFunc     func(ctx context.Context) (json.RawMessage, error)
	generateFunc func(ctx context.Context, model, prompt string) (json.RawMessage, error)
}

func (f *fakeInference) ListModels(ctx context.Context) (json.RawMessage, error) {
	return f.listFunc(ctx)
}

func (f *fakeInference) Generate(ctx context.Context, model, prompt string) (json.RawMessage, error) {
	return f.generateFunc(ctx, model, prompt)
}

// --- server under test ---

type testEnv struct {
	server    *Server
	handler   http.Handler
	usersRepo *memUsersRepo
	progress  *fakeProgressRepo
	visits    *fakeVisitsRepo
	inference *fakeInference
	cfg       *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		EndpointAddr:          ":0",
		JWTSecret:             "test-secret",
		JWTAlgorithm:          "HS256",
		TokenValidityDuration: time.Hour,
		AllowedOrigins:        []string{"http://localhost:3000"},
		DBRequestTimeout:      time.Second,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	usersRepo := newMemUsersRepo()
	progressRepo := newFakeProgressRepo()
	visitsRepo := &fakeVisitsRepo{}
	inference := &fakeInference{
		listFunc: func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"models":[]}`), nil
		},
		generateFunc: func(ctx context.Context, model, prompt string) (json.RawMessage, error) {
			return json.RawMessage(`{"response":""}`), nil
		},
	}

	userService := users.NewService(usersRepo, cfg)

	srv, err := NewServer(cfg, logger, userService, progressRepo, visitsRepo, inference)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}

	return &testEnv{
		server:    srv,
		handler:   srv.routes(),
		usersRepo: usersRepo,
		progress:  progressRepo,
		visits:    visitsRepo,
		inference: inference,
		cfg:       cfg,
	}
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("response is not a JSON object: %v", err)
	}
	return out
}
