package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/storage"
	"github.com/nkuznetsov/wordduel/internal/storage/memory"
	"github.com/nkuznetsov/wordduel/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRecordWinIncrementsByOne() {
	s.Equal(1, s.service.RecordWin("Alice"))
	s.Equal(2, s.service.RecordWin("Alice"))
	s.Equal(2, s.service.Wins("Alice"))
}

func (s *ServiceSuite) TestUnknownPlayerHasZeroWins() {
	s.Equal(0, s.service.Wins("Nobody"))
}

func (s *ServiceSuite) TestNewWinnerInsertedAtOne() {
	s.service.RecordWin("Bob")
	s.Equal(1, s.service.Wins("Bob"))
}

func (s *ServiceSuite) TestSaveAndLoadRoundTrip() {
	s.service.RecordWin("Alice")
	s.service.RecordWin("Alice")
	s.service.RecordWin("Alice")
	s.service.RecordWin("Bob")

	s.Require().NoError(s.service.Save(s.ctx))

	reloaded := New(s.storage, testutil.NopLogger())
	reloaded.Load(s.ctx)
	s.Equal(3, reloaded.Wins("Alice"))
	s.Equal(1, reloaded.Wins("Bob"))
}

func (s *ServiceSuite) TestAllSortedByName() {
	s.service.RecordWin("Zoe")
	s.service.RecordWin("Alice")
	s.service.RecordWin("Mallory")

	entries := s.service.All()
	s.Require().Len(entries, 3)
	s.Equal("Alice", entries[0].Name)
	s.Equal("Mallory", entries[1].Name)
	s.Equal("Zoe", entries[2].Name)
}

func (s *ServiceSuite) TestLoadFailureSubstitutesEmptyRecord() {
	service := New(&failingStorage{}, testutil.NopLogger())
	service.RecordWin("Alice")

	// Load never fails; it falls back to an empty record
	service.Load(s.ctx)
	s.Equal(0, service.Wins("Alice"))
	s.Empty(service.All())
}

func (s *ServiceSuite) TestLoadReplacesInMemoryState() {
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.StatsRecord{
		PlayerWins: map[string]int{"Carol": 7},
	}))

	s.service.RecordWin("Alice")
	s.service.Load(s.ctx)

	s.Equal(0, s.service.Wins("Alice"))
	s.Equal(7, s.service.Wins("Carol"))
}

// failingStorage simulates a broken persistence layer
type failingStorage struct{}

var _ storage.Storage = (*failingStorage)(nil)

func (f *failingStorage) LoadStats(ctx context.Context) (*model.StatsRecord, error) {
	return nil, errors.New("disk on fire")
}

func (f *failingStorage) SaveStats(ctx context.Context, record *model.StatsRecord) error {
	return errors.New("disk on fire")
}

func (f *failingStorage) Close() error {
	return nil
}
