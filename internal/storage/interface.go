package storage

import (
	"context"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player identity operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Miner progression operations
	SaveMinerState(ctx context.Context, state *model.MinerState) error
	GetMinerState(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error)
	ListMinerStates(ctx context.Context) ([]*model.MinerState, error)

	// Achievement collection operations (one collection per player)
	SaveAchievements(ctx context.Context, playerID model.PlayerID, achievements []model.Achievement) error
	GetAchievements(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error)

	// Upgrade collection operations (one catalog per player)
	SaveUpgrades(ctx context.Context, playerID model.PlayerID, upgrades []model.Upgrade) error
	GetUpgrades(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error)
}
