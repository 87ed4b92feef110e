package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/clock"
	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/random"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/achievement"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/auth"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/reward"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/session"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/upgrade"
	"github.com/DAILY622/Cloud-wealth-mining/internal/sse"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage/memory"
	redisstorage "github.com/DAILY622/Cloud-wealth-mining/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RewardService      *reward.Service
	AchievementService *achievement.Service
	UpgradeService     *upgrade.Service
	SessionService     *session.Service
	AuthService        *auth.Service

	// Event delivery
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
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
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	rewardService := reward.New(rnd)
	achievementService := achievement.New(clk)
	upgradeService := upgrade.New()
	authService := auth.New(store, clk, rnd, authCfg)

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	sessionService := session.New(store, rewardService, achievementService, upgradeService, clk, logger, broadcaster)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		RewardService:      rewardService,
		AchievementService: achievementService,
		UpgradeService:     upgradeService,
		SessionService:     sessionService,
		AuthService:        authService,
		HubManager:         hubManager,
		Broadcaster:        broadcaster,
	}
}
