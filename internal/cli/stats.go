package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nkuznetsov/wordduel/internal/services/stats"
	redisstorage "github.com/nkuznetsov/wordduel/internal/storage/redis"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the persisted win table and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.Verbose)

			app, err := newApp(logger)
			if err != nil {
				logger.Error("failed to create application", slog.String("error", err.Error()))
				return err
			}
			defer app.Close()

			app.StatsService.Load(cmd.Context())
			printStats(app.StatsService.All())
			return nil
		},
	}
}

func printStats(entries []stats.Entry) {
	if len(entries) == 0 {
		fmt.Println("No wins recorded yet.")
		return
	}
	for _, entry := range entries {
		fmt.Printf("%s: %d\n", entry.Name, entry.Wins)
	}
}

func redisConfig() redisstorage.Config {
	redisCfg := redisstorage.DefaultConfig()
	if cfg.RedisURL != "" {
		redisCfg.URL = cfg.RedisURL
	}
	return redisCfg
}
