package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/homelab-dashboard/internal/server/migrations"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/progress"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/users"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/visits"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	progress progress.Repository
	visits   visits.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Progress() progress.Repository {
	return m.progress
}

func (m *PostgresRepositoryManager) Visits() visits.Repository {
	return m.visits
}

// RunMigrations applies the embedded goose migrations. This replaces the
// old habit of issuing CREATE TABLE IF NOT EXISTS on the request hot path:
// the schema is settled exactly once, before the server accepts traffic.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	progress, err := progress.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("progress repo creation error: %w", err)
	}

	visits, err := visits.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("visit repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		users:    users,
		progress: progress,
		visits:   visits,
	}

	err = m.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
