package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/storage"
)

// DefaultPath is the stats file location relative to the working directory
const DefaultPath = "wordduel_stats.json"

// Storage persists the stats record as a JSON file.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated record behind.
type Storage struct {
	path string
}

// New creates a file storage writing to the given path.
// An empty path uses DefaultPath.
func New(path string) *Storage {
	if path == "" {
		path = DefaultPath
	}
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Path returns the stats file path
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) LoadStats(ctx context.Context) (*model.StatsRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewStatsRecord(), nil
		}
		return nil, fmt.Errorf("reading stats file %s: %w", s.path, err)
	}

	var record model.StatsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing stats file %s: %w", s.path, err)
	}
	if record.PlayerWins == nil {
		record.PlayerWins = make(map[string]int)
	}
	return &record, nil
}

func (s *Storage) SaveStats(ctx context.Context, record *model.StatsRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".wordduel-stats-*")
	if err != nil {
		return fmt.Errorf("creating temp stats file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing stats file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing stats file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing stats file %s: %w", s.path, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return nil
}
