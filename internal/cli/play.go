package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nkuznetsov/wordduel/internal/factory"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cfg.Verbose)

	app, err := newApp(logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer app.Close()

	// An interrupt mid-match resolves as a loss for the acting player and
	// triggers a best-effort stats save before exit
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.SessionController.Run(ctx)
}

// newApp builds the application from the CLI configuration
func newApp(logger *slog.Logger) (*factory.App, error) {
	factoryCfg := factory.Config{
		StorageType: cfg.StorageType,
		StatsPath:   cfg.StatsFile,
		TurnSeconds: cfg.TurnSeconds,
		Logger:      logger,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisConfig()
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}

// newLogger builds the application logger. Logs go to stderr: stdout is
// the game console.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
