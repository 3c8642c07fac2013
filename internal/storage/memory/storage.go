package memory

import (
	"context"
	"sync"

	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied in and out so callers never share state with the store.
type Storage struct {
	mu    sync.RWMutex
	stats *model.StatsRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadStats(ctx context.Context) (*model.StatsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return model.NewStatsRecord(), nil
	}
	return s.stats.Clone(), nil
}

func (s *Storage) SaveStats(ctx context.Context, record *model.StatsRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = record.Clone()
	return nil
}

func (s *Storage) Close() error {
	return nil
}
