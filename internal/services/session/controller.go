package session

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nkuznetsov/wordduel/internal/console"
	"github.com/nkuznetsov/wordduel/internal/i18n"
	"github.com/nkuznetsov/wordduel/internal/model"
	"github.com/nkuznetsov/wordduel/internal/services/match"
	"github.com/nkuznetsov/wordduel/internal/services/stats"
)

// Restart tokens. All four are accepted case-insensitively regardless of
// the active locale.
var (
	restartYes = map[string]bool{"да": true, "yes": true}
	restartNo  = map[string]bool{"нет": true, "no": true}
)

// Controller is the top-level session driver: locale and name setup, the
// match lifecycle, and best-effort persistence on interruption.
type Controller struct {
	match   *match.Controller
	stats   stats.ServiceInterface
	console *console.Console
	logger  *slog.Logger
}

// NewController creates a session controller
func NewController(
	matchController *match.Controller,
	statsService stats.ServiceInterface,
	cons *console.Console,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		match:   matchController,
		stats:   statsService,
		console: cons,
		logger:  logger,
	}
}

// Run drives a full session: setup, then matches until the players decline
// a restart or the process is interrupted.
//
// Cancellation of ctx (or console EOF) mid-match resolves that match as a
// loss for the acting player and saves stats before returning; that save is
// best-effort and cannot cover hard kills.
func (c *Controller) Run(ctx context.Context) error {
	locale, err := c.selectLocale(ctx)
	if err != nil {
		return c.setupInterrupted(err)
	}

	players, err := c.collectPlayers(ctx, locale)
	if err != nil {
		return c.setupInterrupted(err)
	}

	c.stats.Load(ctx)
	c.saveStats(ctx)

	for {
		summary, err := c.match.Run(ctx, players, locale)
		if err != nil {
			return err
		}

		c.saveStats(ctx)

		if summary.Reason == model.EndReasonAborted {
			c.logger.Info("session interrupted mid-match",
				slog.String("match_id", string(summary.ID)),
				slog.String("loser", summary.Loser),
			)
			return nil
		}

		again, err := c.askRestart(ctx, locale)
		if err != nil || !again {
			c.console.Println(i18n.Message(i18n.KeyGoodbye, locale))
			return nil
		}
	}
}

// selectLocale loops until one of the two recognized locale tokens is
// entered. There is no default and no escape besides interruption.
func (c *Controller) selectLocale(ctx context.Context) (model.Locale, error) {
	for {
		c.console.Println(i18n.Message(i18n.KeyChooseLanguage, model.LocaleEn))

		line, err := c.console.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if locale, ok := model.ParseLocale(line); ok {
			return locale, nil
		}
	}
}

// collectPlayers reads both player names, substituting localized
// placeholders for blank input
func (c *Controller) collectPlayers(ctx context.Context, locale model.Locale) (model.Players, error) {
	var names [2]string
	for i := range names {
		seat := strconv.Itoa(i + 1)
		c.console.Println(i18n.Render(
			i18n.Message(i18n.KeyEnterName, locale),
			"{player}", seat,
		))

		line, err := c.console.ReadLine(ctx)
		if err != nil {
			return model.Players{}, err
		}

		name := strings.TrimSpace(line)
		if name == "" {
			name = i18n.Render(
				i18n.Message(i18n.KeyDefaultName, locale),
				"{player}", seat,
			)
		}
		names[i] = name
	}

	return model.Players{
		One: model.PlayerIdentity{Name: names[0]},
		Two: model.PlayerIdentity{Name: names[1]},
	}, nil
}

// askRestart prompts for another match, re-prompting on unrecognized tokens
func (c *Controller) askRestart(ctx context.Context, locale model.Locale) (bool, error) {
	for {
		c.console.Println(i18n.Message(i18n.KeyPlayAgain, locale))

		line, err := c.console.ReadLine(ctx)
		if err != nil {
			return false, err
		}

		token := strings.ToLower(strings.TrimSpace(line))
		switch {
		case restartYes[token]:
			return true, nil
		case restartNo[token]:
			return false, nil
		}
	}
}

// saveStats persists the win table, logging rather than failing: a broken
// stats file must never break gameplay
func (c *Controller) saveStats(ctx context.Context) {
	if err := c.stats.Save(ctx); err != nil {
		c.logger.Error("failed to save stats", slog.String("error", err.Error()))
	}
}

// setupInterrupted handles interruption before any match has started;
// nothing is at stake yet, so no loss is recorded
func (c *Controller) setupInterrupted(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, model.ErrInputClosed) {
		return nil
	}
	return err
}
