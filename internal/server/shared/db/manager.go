// Package db wires the persistence layer together: it opens the shared
// connection pool, applies migrations once at startup, and hands out the
// per-table repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/homelab-dashboard/internal/server/progress"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/visits"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Progress() progress.Repository
	Visits() visits.Repository
}
