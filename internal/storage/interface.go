package storage

import (
	"context"

	"github.com/nkuznetsov/wordduel/internal/model"
)

// Storage defines the interface for win-statistics persistence
type Storage interface {
	// LoadStats reads the persisted stats record.
	// A missing record is not an error: implementations return an empty
	// record so a fresh install starts cleanly.
	LoadStats(ctx context.Context) (*model.StatsRecord, error)

	// SaveStats durably writes the full stats record
	SaveStats(ctx context.Context, record *model.StatsRecord) error

	// Close releases any held resources; idempotent
	Close() error
}
