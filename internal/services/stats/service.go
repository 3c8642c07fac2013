package stats

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/storage"
)

// Service owns the in-memory win-count table and its persistence.
// Win counts only ever move up, by exactly one per recorded win.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.Mutex
	record *model.StatsRecord
}

// New creates a new StatsService with an empty record
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
		record:  model.NewStatsRecord(),
	}
}

// Load replaces the in-memory record with the persisted one.
// A load failure is downgraded to an empty record with a logged
// diagnostic: stats must never prevent a session from starting.
func (s *Service) Load(ctx context.Context) {
	record, err := s.storage.LoadStats(ctx)
	if err != nil {
		s.logger.Warn("could not load stats, starting with empty record",
			slog.String("error", err.Error()),
		)
		record = model.NewStatsRecord()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
}

// Save persists the current record
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.record.Clone()
	s.mu.Unlock()

	return s.storage.SaveStats(ctx, snapshot)
}

// RecordWin increments a player's win count by one, inserting the player
// at a count of 1 if not yet present. Returns the new count.
func (s *Service) RecordWin(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.PlayerWins[name]++
	return s.record.PlayerWins[name]
}

// Wins returns a player's win count, 0 if the player has never won
func (s *Service) Wins(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.PlayerWins[name]
}

// Entry is one row of the win table
type Entry struct {
	Name string
	Wins int
}

// All returns every known player with their win count, sorted by name
// for stable display
func (s *Service) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.record.PlayerWins))
	for name, wins := range s.record.PlayerWins {
		entries = append(entries, Entry{Name: name, Wins: wins})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Interface for dependency injection
type ServiceInterface interface {
	Load(ctx context.Context)
	Save(ctx context.Context) error
	RecordWin(name string) int
	Wins(name string) int
	All() []Entry
}

var _ ServiceInterface = (*Service)(nil)
