// Package server initializes and runs the dashboard backend.
// It wires the storage layer, the auth service, the inference client and the
// HTTP surface together, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/homelab-dashboard/internal/logging"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/config"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/httpapi"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/ollama"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/shared/db"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	repos      db.RepositoryManager
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	repos, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userService := users.NewService(repos.Users(), cfg)
	inference := ollama.NewClient(cfg.OllamaBaseURL, cfg.OllamaRequestTimeout)

	httpServer, err := httpapi.NewServer(cfg, logger, userService, repos.Progress(), repos.Visits(), inference)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, repos: repos, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
