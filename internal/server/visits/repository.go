// Package visits records page-visit events. Rows are append-only and are
// only ever read back as an aggregate count.
package visits

import (
	"context"
	"time"
)

// Record is a single visit event.
type Record struct {
	ID        int64
	Timestamp time.Time
	IPAddress string
}

type Repository interface {
	// Record appends a visit row stamped with the current server time.
	Record(ctx context.Context, remoteIP string) error

	// Total returns the number of recorded visits.
	Total(ctx context.Context) (int64, error)
}
