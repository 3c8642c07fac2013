package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nkuznetsov/wordduel/internal/services/timer"
	filestorage "github.com/nkuznetsov/wordduel/internal/storage/file"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	StatsFile   string
	RedisURL    string
	TurnSeconds int
	Verbose     bool
}

// DefaultConfig returns a Config populated from the environment.
// A .env file in the working directory is honored if present.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		StorageType: getEnvOrDefault("WORDDUEL_STORAGE", "file"),
		StatsFile:   getEnvOrDefault("WORDDUEL_STATS_FILE", filestorage.DefaultPath),
		RedisURL:    os.Getenv("WORDDUEL_REDIS_URL"),
		TurnSeconds: getEnvIntOrDefault("WORDDUEL_TURN_SECONDS", timer.DefaultTurnSeconds),
		Verbose:     false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
