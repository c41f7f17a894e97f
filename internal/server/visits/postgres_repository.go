package visits

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Record(ctx context.Context, remoteIP string) error {

	query :=
		`INSERT INTO visits (timestamp, ip_address)
         VALUES (now(), $1)
		 `

	_, err := r.db.ExecContext(ctx, query, remoteIP)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Total(ctx context.Context) (int64, error) {

	query := `SELECT COUNT(*) FROM visits`

	var total int64
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return total, nil
}
