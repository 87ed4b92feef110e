package redis

import (
	"fmt"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "cloudmine"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// minerStateKey returns the Redis key for a MinerState
func minerStateKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:miner:%s", keyPrefix, playerID)
}

// minerIndexKey returns the Redis key for the SET of all miner state keys
func minerIndexKey() string {
	return fmt.Sprintf("%s:idx:miners", keyPrefix)
}

// achievementsKey returns the Redis key for a player's achievement collection
func achievementsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:achievements:%s", keyPrefix, playerID)
}

// upgradesKey returns the Redis key for a player's upgrade catalog
func upgradesKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:upgrades:%s", keyPrefix, playerID)
}
