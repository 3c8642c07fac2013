package match

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nkuznetsov/wordduel/internal/console"
	"github.com/nkuznetsov/wordduel/internal/dependencies/clock"
	"github.com/nkuznetsov/wordduel/internal/dependencies/random"
	"github.com/nkuznetsov/wordduel/internal/i18n"
	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/services/stats"
	"github.com/nkuznetsov/wordduel/internal/services/timer"
	"github.com/nkuznetsov/wordduel/internal/services/words"
)

// commandPrefix marks an input line as a command rather than a move
const commandPrefix = "/"

// Recognized in-game commands
const (
	cmdShowWords  = "/show-words"
	cmdScore      = "/score"
	cmdTotalScore = "/total-score"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller runs one match at a time to completion.
//
// A match moves through three phases: collecting the original word,
// alternating moves against the countdown, and resolution. Commands are
// handled inline and never touch match state or the timer.
type Controller struct {
	words       words.ServiceInterface
	stats       stats.ServiceInterface
	clock       clock.Clock
	random      random.Random
	console     *console.Console
	logger      *slog.Logger
	turnSeconds int
}

// NewController creates a match controller
func NewController(
	wordsService words.ServiceInterface,
	statsService stats.ServiceInterface,
	clk clock.Clock,
	rnd random.Random,
	cons *console.Console,
	logger *slog.Logger,
	turnSeconds int,
) *Controller {
	if turnSeconds <= 0 {
		turnSeconds = timer.DefaultTurnSeconds
	}
	return &Controller{
		words:       wordsService,
		stats:       statsService,
		clock:       clk,
		random:      rnd,
		console:     cons,
		logger:      logger,
		turnSeconds: turnSeconds,
	}
}

// Run plays a single match to its end and returns the summary.
// The returned summary is non-nil even when the match is cut short by
// context cancellation or console EOF: the acting player forfeits.
func (c *Controller) Run(ctx context.Context, players model.Players, locale model.Locale) (*model.MatchSummary, error) {
	matchID := model.MatchID(c.random.String(12, idAlphabet))
	logger := c.logger.With(slog.String("match_id", string(matchID)))

	state := &model.MatchState{
		ID:          matchID,
		Phase:       model.MatchPhaseAwaitingOriginal,
		CurrentTurn: model.PlayerOne,
		StartedAt:   c.clock.Now(),
		UpdatedAt:   c.clock.Now(),
	}

	if err := c.awaitOriginalWord(ctx, state, locale); err != nil {
		// Interrupted before any move; the acting player forfeits
		return c.finish(state, players, locale, model.EndReasonAborted, logger), nil
	}

	logger.Info("match started",
		slog.String("original_word", state.OriginalWord),
		slog.String("player_one", players.One.Name),
		slog.String("player_two", players.Two.Name),
	)

	t := timer.New(c.clock)
	if err := t.Start(c.turnSeconds); err != nil {
		return nil, err
	}
	defer t.Stop()

	reason := c.awaitMoves(ctx, state, players, locale, t)
	return c.finish(state, players, locale, reason, logger), nil
}

// awaitOriginalWord prompts until an acceptable original word is entered
func (c *Controller) awaitOriginalWord(ctx context.Context, state *model.MatchState, locale model.Locale) error {
	for {
		c.console.Println(i18n.Message(i18n.KeyEnterOriginal, locale))

		line, err := c.console.ReadLine(ctx)
		if err != nil {
			return err
		}

		word := strings.TrimSpace(line)
		if !c.words.IsAcceptableOriginal(word) {
			c.console.Println(i18n.Message(i18n.KeyInvalidOriginal, locale))
			continue
		}

		state.OriginalWord = word
		state.UsedWords = []string{word}
		state.Phase = model.MatchPhaseAwaitingMove
		state.UpdatedAt = c.clock.Now()
		return nil
	}
}

// awaitMoves runs the move loop until the countdown expires or the match
// is interrupted
func (c *Controller) awaitMoves(ctx context.Context, state *model.MatchState, players model.Players, locale model.Locale, t *timer.Timer) model.EndReason {
	for {
		c.console.Println(i18n.Render(
			i18n.Message(i18n.KeyMovePrompt, locale),
			"{player}", players.Name(state.CurrentTurn),
			"{time}", strconv.Itoa(t.Remaining()),
		))

		select {
		case <-ctx.Done():
			return model.EndReasonAborted
		case <-t.Expired():
			return model.EndReasonTimeout
		case line, ok := <-c.console.Lines():
			if !ok {
				return model.EndReasonAborted
			}
			// The countdown may have hit zero while the read was in
			// flight; such input is discarded, not played.
			if t.IsExpired() {
				return model.EndReasonTimeout
			}

			input := strings.TrimSpace(line)
			if strings.HasPrefix(input, commandPrefix) {
				c.dispatchCommand(input, state, players, locale)
				continue
			}

			if !c.words.IsAcceptableMove(input, state.OriginalWord, state.UsedWords) {
				c.console.Println(i18n.Message(i18n.KeyInvalidMove, locale))
				continue
			}

			state.UsedWords = append(state.UsedWords, input)
			state.CurrentTurn = state.CurrentTurn.Other()
			state.UpdatedAt = c.clock.Now()
			if err := t.Reset(c.turnSeconds); err != nil {
				// The timer expired between the check and the reset
				return model.EndReasonTimeout
			}
		}
	}
}

// dispatchCommand handles a /-prefixed input line.
// Commands never mutate match state or the timer.
func (c *Controller) dispatchCommand(input string, state *model.MatchState, players model.Players, locale model.Locale) {
	switch strings.ToLower(input) {
	case cmdShowWords:
		c.console.Println(i18n.Message(i18n.KeyUsedWords, locale))
		for _, word := range state.UsedWords {
			c.console.Println(word)
		}
	case cmdScore:
		c.console.Println(i18n.Render(
			i18n.Message(i18n.KeyScore, locale),
			"{player1}", players.One.Name,
			"{wins1}", strconv.Itoa(c.stats.Wins(players.One.Name)),
			"{player2}", players.Two.Name,
			"{wins2}", strconv.Itoa(c.stats.Wins(players.Two.Name)),
		))
	case cmdTotalScore:
		c.console.Println(i18n.Message(i18n.KeyTotalScore, locale))
		for _, entry := range c.stats.All() {
			c.console.Println(i18n.Render(
				i18n.Message(i18n.KeyScoreEntry, locale),
				"{player}", entry.Name,
				"{wins}", strconv.Itoa(entry.Wins),
			))
		}
	default:
		c.console.Println(i18n.Message(i18n.KeyUnknownCommand, locale))
	}
}

// finish resolves the match: the acting player loses, the opponent's win
// is recorded, and the loss is announced
func (c *Controller) finish(state *model.MatchState, players model.Players, locale model.Locale, reason model.EndReason, logger *slog.Logger) *model.MatchSummary {
	state.Phase = model.MatchPhaseEnded
	state.UpdatedAt = c.clock.Now()

	loser := players.Name(state.CurrentTurn)
	winner := players.Name(state.CurrentTurn.Other())
	c.stats.RecordWin(winner)

	messageKey := i18n.KeyTimeUp
	if reason == model.EndReasonAborted {
		messageKey = i18n.KeyMatchAborted
	}
	c.console.Println(i18n.Render(
		i18n.Message(messageKey, locale),
		"{player}", loser,
	))

	logger.Info("match ended",
		slog.String("winner", winner),
		slog.String("loser", loser),
		slog.String("reason", string(reason)),
		slog.Int("words_played", state.MoveCount()),
	)

	return &model.MatchSummary{
		ID:          state.ID,
		Winner:      winner,
		Loser:       loser,
		WordsPlayed: state.MoveCount(),
		Reason:      reason,
		CompletedAt: c.clock.Now(),
	}
}
