package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordduel",
		Short: "Two-player console word duel",
		Long: `wordduel is a two-player turn-based word game played in the terminal.

One player enters an original word; both players then alternate submitting
words built from its letters while a per-turn countdown runs. Win statistics
persist across sessions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation starts a game
			return runPlay(cmd, args)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Stats backend: file, redis, memory (env: WORDDUEL_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.StatsFile, "stats-file", cfg.StatsFile, "Stats file path (env: WORDDUEL_STATS_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis backend (env: WORDDUEL_REDIS_URL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
