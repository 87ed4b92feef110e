package memory

import (
	"context"
	"sync"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	minerStates       map[model.PlayerID]*model.MinerState
	achievements      map[model.PlayerID][]model.Achievement
	upgrades          map[model.PlayerID][]model.Upgrade
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		minerStates:       make(map[model.PlayerID]*model.MinerState),
		achievements:      make(map[model.PlayerID][]model.Achievement),
		upgrades:          make(map[model.PlayerID][]model.Upgrade),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredPlayers[rp.PlayerID] = rp
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

// Miner progression operations

func (s *Storage) SaveMinerState(ctx context.Context, state *model.MinerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	s.minerStates[state.PlayerID] = &copied
	return nil
}

func (s *Storage) GetMinerState(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.minerStates[playerID]
	if !ok {
		return nil, model.ErrMinerStateNotFound
	}
	copied := *state
	return &copied, nil
}

func (s *Storage) ListMinerStates(ctx context.Context) ([]*model.MinerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	states := make([]*model.MinerState, 0, len(s.minerStates))
	for _, state := range s.minerStates {
		copied := *state
		states = append(states, &copied)
	}
	return states, nil
}

// Achievement collection operations

func (s *Storage) SaveAchievements(ctx context.Context, playerID model.PlayerID, achievements []model.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]model.Achievement, len(achievements))
	copy(copied, achievements)
	s.achievements[playerID] = copied
	return nil
}

func (s *Storage) GetAchievements(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	achievements, ok := s.achievements[playerID]
	if !ok {
		return nil, model.ErrAchievementsNotFound
	}
	copied := make([]model.Achievement, len(achievements))
	copy(copied, achievements)
	return copied, nil
}

// Upgrade collection operations

func (s *Storage) SaveUpgrades(ctx context.Context, playerID model.PlayerID, upgrades []model.Upgrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]model.Upgrade, len(upgrades))
	copy(copied, upgrades)
	s.upgrades[playerID] = copied
	return nil
}

func (s *Storage) GetUpgrades(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	upgrades, ok := s.upgrades[playerID]
	if !ok {
		return nil, model.ErrUpgradesNotFound
	}
	copied := make([]model.Upgrade, len(upgrades))
	copy(copied, upgrades)
	return copied, nil
}
