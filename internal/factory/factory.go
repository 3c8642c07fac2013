package factory

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/nkuznetsov/wordduel/internal/console"
	"github.com/nkuznetsov/wordduel/internal/dependencies/clock"
	"github.com/nkuznetsov/wordduel/internal/dependencies/random"
	"github.com/nkuznetsov/wordduel/internal/services/match"
	"github.com/nkuznetsov/wordduel/internal/services/session"
	"github.com/nkuznetsov/wordduel/internal/services/stats"
	"github.com/nkuznetsov/wordduel/internal/services/timer"
	"github.com/nkuznetsov/wordduel/internal/services/words"
	"github.com/nkuznetsov/wordduel/internal/storage"
	filestorage "github.com/nkuznetsov/wordduel/internal/storage/file"
	"github.com/nkuznetsov/wordduel/internal/storage/memory"
	redisstorage "github.com/nkuznetsov/wordduel/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Console I/O
	Console *console.Console

	// Services
	WordsService      *words.Service
	StatsService      *stats.Service
	MatchController   *match.Controller
	SessionController *session.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the stats backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// StatsPath is the stats file location (file storage only)
	// If empty, defaults to filestorage.DefaultPath
	StatsPath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// TurnSeconds is the per-turn countdown duration
	// If zero, defaults to timer.DefaultTurnSeconds
	TurnSeconds int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Input and Output are the console endpoints (optional)
	// If nil, they default to os.Stdin and os.Stdout
	Input  io.Reader
	Output io.Writer
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		store = filestorage.New(cfg.StatsPath)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Console endpoints
	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	cons := console.New(in, out)

	turnSeconds := cfg.TurnSeconds
	if turnSeconds <= 0 {
		turnSeconds = timer.DefaultTurnSeconds
	}

	// Wire services
	wordsService := words.New()
	statsService := stats.New(store, logger)
	matchController := match.NewController(wordsService, statsService, clk, rnd, cons, logger, turnSeconds)
	sessionController := session.NewController(matchController, statsService, cons, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Console:           cons,
		WordsService:      wordsService,
		StatsService:      statsService,
		MatchController:   matchController,
		SessionController: sessionController,
	}, nil
}

// Close releases resources held by the application
func (a *App) Close() error {
	return a.Storage.Close()
}
