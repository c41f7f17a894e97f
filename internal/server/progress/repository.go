// Package progress persists the roadmap tracker: one row per task key with
// a completion flag, upserted by key.
package progress

import (
	"context"
	"time"
)

// Entry is one tracked roadmap task.
type Entry struct {
	TaskKey   string
	Completed bool
	UpdatedAt time.Time
}

type Repository interface {
	// GetAll returns the completion flag for every known task key.
	GetAll(ctx context.Context) (map[string]bool, error)

	// Upsert inserts the task key or overwrites its completion flag,
	// refreshing the update timestamp either way.
	Upsert(ctx context.Context, taskKey string, completed bool) error

	// BulkUpsert applies every entry inside a single transaction and
	// returns the number of rows written. The batch is all-or-nothing.
	BulkUpsert(ctx context.Context, entries map[string]bool) (int, error)
}
