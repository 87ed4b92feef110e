package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	// Apply TTL only for guest players
	var ttl time.Duration
	if player.IsGuest {
		ttl = s.cfg.GuestPlayerTTL
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, playerKey(id)).Err()
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	data, err := json.Marshal(rp)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredPlayerKey(rp.PlayerID), data, 0) // No TTL
	pipe.Set(ctx, usernameIndexKey(rp.Username), string(rp.PlayerID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	data, err := s.client.Get(ctx, registeredPlayerKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var rp model.RegisteredPlayer
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, err
	}
	return &rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	// Look up player ID from username index
	playerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetRegisteredPlayer(ctx, model.PlayerID(playerIDStr))
}

// Miner progression operations

func (s *Storage) SaveMinerState(ctx context.Context, state *model.MinerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, minerStateKey(state.PlayerID), data, 0)
	pipe.SAdd(ctx, minerIndexKey(), string(state.PlayerID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMinerState(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error) {
	data, err := s.client.Get(ctx, minerStateKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMinerStateNotFound
		}
		return nil, err
	}

	var state model.MinerState
	if err := json.Unmarshal(data, &state); err != nil {
		// Malformed stored record: treat as absent so the caller falls
		// back to documented defaults
		return nil, model.ErrMinerStateNotFound
	}
	return &state, nil
}

func (s *Storage) ListMinerStates(ctx context.Context) ([]*model.MinerState, error) {
	ids, err := s.client.SMembers(ctx, minerIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.MinerState{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = minerStateKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	states := make([]*model.MinerState, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record may have been deleted
		}
		var state model.MinerState
		if err := json.Unmarshal([]byte(val.(string)), &state); err != nil {
			continue // Skip invalid data
		}
		states = append(states, &state)
	}

	return states, nil
}

// Achievement collection operations

func (s *Storage) SaveAchievements(ctx context.Context, playerID model.PlayerID, achievements []model.Achievement) error {
	data, err := json.Marshal(achievements)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, achievementsKey(playerID), data, 0).Err()
}

func (s *Storage) GetAchievements(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error) {
	data, err := s.client.Get(ctx, achievementsKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAchievementsNotFound
		}
		return nil, err
	}

	var achievements []model.Achievement
	if err := json.Unmarshal(data, &achievements); err != nil {
		return nil, model.ErrAchievementsNotFound
	}
	return achievements, nil
}

// Upgrade collection operations

func (s *Storage) SaveUpgrades(ctx context.Context, playerID model.PlayerID, upgrades []model.Upgrade) error {
	data, err := json.Marshal(upgrades)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, upgradesKey(playerID), data, 0).Err()
}

func (s *Storage) GetUpgrades(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error) {
	data, err := s.client.Get(ctx, upgradesKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUpgradesNotFound
		}
		return nil, err
	}

	var upgrades []model.Upgrade
	if err := json.Unmarshal(data, &upgrades); err != nil {
		return nil, model.ErrUpgradesNotFound
	}
	return upgrades, nil
}
