package match

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nkuznetsov/wordduel/internal/console"
	"github.com/nkuznetsov/wordduel/internal/dependencies/mocks"
	"github.com/nkuznetsov/wordduel/internal/i18n"
	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/services/stats"
	"github.com/nkuznetsov/wordduel/internal/services/words"
	"github.com/nkuznetsov/wordduel/internal/storage/memory"
	"github.com/nkuznetsov/wordduel/internal/testutil"
)

const (
	waitFor   = 2 * time.Second
	pollEvery = 5 * time.Millisecond
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	statsService *stats.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	controller   *Controller

	input  *io.PipeWriter
	output *syncBuffer

	players model.Players
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan *model.MatchSummary
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.statsService = stats.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.random.QueueString("MATCH1234567")

	reader, writer := io.Pipe()
	s.input = writer
	s.output = &syncBuffer{}
	cons := console.New(reader, s.output)

	s.controller = NewController(
		words.New(), s.statsService, s.clock, s.random, cons,
		testutil.NopLogger(), 15,
	)

	s.players = model.Players{
		One: model.PlayerIdentity{Name: "Alice"},
		Two: model.PlayerIdentity{Name: "Bob"},
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.done = make(chan *model.MatchSummary, 1)
}

func (s *ControllerSuite) TearDownTest() {
	s.cancel()
	_ = s.input.Close()
}

// startMatch launches Run in the background
func (s *ControllerSuite) startMatch() {
	// Capture the channel now: a match still draining after TearDownTest
	// must not deliver its summary into the next test's fresh channel.
	done := s.done
	go func() {
		summary, err := s.controller.Run(s.ctx, s.players, model.LocaleEn)
		s.NoError(err)
		done <- summary
	}()
}

func (s *ControllerSuite) writeLine(line string) {
	_, err := io.WriteString(s.input, line+"\n")
	s.Require().NoError(err)
}

// waitForOutput blocks until the console output contains substr
func (s *ControllerSuite) waitForOutput(substr string) {
	s.Require().Eventually(func() bool {
		return strings.Contains(s.output.String(), substr)
	}, waitFor, pollEvery, "waiting for output %q, got:\n%s", substr, s.output.String())
}

func (s *ControllerSuite) waitForSummary() *model.MatchSummary {
	select {
	case summary := <-s.done:
		return summary
	case <-time.After(waitFor):
		s.Require().FailNow("match did not finish")
		return nil
	}
}

func (s *ControllerSuite) promptFor(player string, seconds string) string {
	return i18n.Render(
		i18n.Message(i18n.KeyMovePrompt, model.LocaleEn),
		"{player}", player,
		"{time}", seconds,
	)
}

func (s *ControllerSuite) TestOriginalWordRepromptedUntilValid() {
	s.startMatch()

	s.writeLine("short")
	s.waitForOutput(i18n.Message(i18n.KeyInvalidOriginal, model.LocaleEn))

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))
}

func (s *ControllerSuite) TestFullScenarioTimeoutDeclaresWinner() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	// Accepted move flips the turn to Bob and resets the countdown
	s.writeLine("table")
	s.waitForOutput(s.promptFor("Bob", "15"))

	// Duplicate word is rejected; turn stays with Bob
	s.writeLine("table")
	s.waitForOutput(i18n.Message(i18n.KeyInvalidMove, model.LocaleEn))

	// Letters outside the original word are rejected too
	s.writeLine("xyz")
	s.waitForOutput(s.promptFor("Bob", "15"))

	// Bob runs out of time
	s.clock.Advance(15 * time.Second)
	summary := s.waitForSummary()

	s.Equal(model.EndReasonTimeout, summary.Reason)
	s.Equal("Alice", summary.Winner)
	s.Equal("Bob", summary.Loser)
	s.Equal(1, summary.WordsPlayed)
	s.Equal(model.MatchID("MATCH1234567"), summary.ID)
	s.Equal(1, s.statsService.Wins("Alice"))
	s.Equal(0, s.statsService.Wins("Bob"))
	s.Contains(s.output.String(), "Bob loses the match")
}

func (s *ControllerSuite) TestRejectedInputDoesNotFlipTurn() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.writeLine("xyz")
	s.waitForOutput(i18n.Message(i18n.KeyInvalidMove, model.LocaleEn))

	// Still Alice's turn
	s.writeLine("tuba")
	s.waitForOutput(s.promptFor("Bob", "15"))
}

func (s *ControllerSuite) TestCommandsDoNotMutateMatchState() {
	s.statsService.RecordWin("Alice")
	s.statsService.RecordWin("Carol")

	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.writeLine("/show-words")
	s.waitForOutput(i18n.Message(i18n.KeyUsedWords, model.LocaleEn))
	s.waitForOutput("beautiful")

	s.writeLine("/score")
	s.waitForOutput("Alice: 1 | Bob: 0")

	s.writeLine("/total-score")
	s.waitForOutput("Carol: 1")

	s.writeLine("/conquer")
	s.waitForOutput(i18n.Message(i18n.KeyUnknownCommand, model.LocaleEn))

	// Commands never flip the turn: Alice can still move
	s.writeLine("tuba")
	s.waitForOutput(s.promptFor("Bob", "15"))
}

func (s *ControllerSuite) TestCommandTokensAreCaseInsensitive() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.writeLine("/SHOW-WORDS")
	s.waitForOutput(i18n.Message(i18n.KeyUsedWords, model.LocaleEn))
}

func (s *ControllerSuite) TestAbortMidMatchForfeitsActingPlayer() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.writeLine("table")
	s.waitForOutput(s.promptFor("Bob", "15"))

	s.cancel()
	summary := s.waitForSummary()

	s.Equal(model.EndReasonAborted, summary.Reason)
	s.Equal("Bob", summary.Loser)
	s.Equal("Alice", summary.Winner)
	s.Equal(1, s.statsService.Wins("Alice"))
}

func (s *ControllerSuite) TestAbortDuringOriginalWordForfeitsFirstPlayer() {
	s.startMatch()

	s.cancel()
	summary := s.waitForSummary()

	s.Equal(model.EndReasonAborted, summary.Reason)
	s.Equal("Alice", summary.Loser)
	s.Equal("Bob", summary.Winner)
	s.Equal(1, s.statsService.Wins("Bob"))
}

func (s *ControllerSuite) TestInputClosedForfeitsActingPlayer() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.Require().NoError(s.input.Close())
	summary := s.waitForSummary()

	s.Equal(model.EndReasonAborted, summary.Reason)
	s.Equal("Alice", summary.Loser)
}

func (s *ControllerSuite) TestExpiryEndsMatchWithoutInput() {
	s.startMatch()

	s.writeLine("beautiful")
	s.waitForOutput(s.promptFor("Alice", "15"))

	s.clock.Advance(15 * time.Second)
	summary := s.waitForSummary()

	s.Equal(model.EndReasonTimeout, summary.Reason)
	s.Equal("Alice", summary.Loser)
	s.Equal(0, summary.WordsPlayed)
}

// syncBuffer is a goroutine-safe output sink
type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
