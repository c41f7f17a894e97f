package progress

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/homelab-dashboard/internal/dbx"
)

const upsertQuery = `INSERT INTO roadmap_progress (task_key, completed, updated_at)
         VALUES ($1, $2, now())
		 ON CONFLICT (task_key)
		 DO UPDATE SET completed = EXCLUDED.completed, updated_at = now()
		 `

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) (map[string]bool, error) {

	query := `SELECT task_key, completed FROM roadmap_progress`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var key string
		var completed bool
		if err := rows.Scan(&key, &completed); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result[key] = completed
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, taskKey string, completed bool) error {

	_, err := r.db.ExecContext(ctx, upsertQuery, taskKey, completed)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) BulkUpsert(ctx context.Context, entries map[string]bool) (int, error) {

	// One transaction for the whole batch: either every entry lands or none
	// of them do.
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for taskKey, completed := range entries {
			if _, err := tx.ExecContext(ctx, upsertQuery, taskKey, completed); err != nil {
				return fmt.Errorf("error upserting %q: %w", taskKey, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(entries), nil
}
