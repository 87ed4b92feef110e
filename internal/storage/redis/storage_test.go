package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGuestPlayerTTL() {
	guest := &model.Player{ID: "guest-1", IsGuest: true}
	registered := &model.Player{ID: "registered-1", IsGuest: false}

	_ = s.storage.SavePlayer(s.ctx, guest)
	_ = s.storage.SavePlayer(s.ctx, registered)

	guestTTL := s.mini.TTL(playerKey("guest-1"))
	s.Equal(time.Hour, guestTTL)

	registeredTTL := s.mini.TTL(playerKey("registered-1"))
	s.Equal(time.Duration(0), registeredTTL)
}

// Registered player tests

func (s *StorageSuite) TestSaveAndGetRegisteredPlayerByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash",
	}

	err := s.storage.SaveRegisteredPlayer(s.ctx, rp)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)
}

// Miner state tests

func (s *StorageSuite) TestSaveAndGetMinerState() {
	state := model.NewMinerState("player-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	state.Balance = 123.45
	state.MiningPower = 1.5
	state.AutoMiningUnlocked = true

	err := s.storage.SaveMinerState(s.ctx, state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMinerState(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(123.45, retrieved.Balance)
	s.Equal(1.5, retrieved.MiningPower)
	s.True(retrieved.AutoMiningUnlocked)
	s.Equal(100, retrieved.Energy)
}

func (s *StorageSuite) TestGetMinerStateNotFound() {
	_, err := s.storage.GetMinerState(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMinerStateNotFound)
}

func (s *StorageSuite) TestGetMinerStateMalformedFallsBackToNotFound() {
	s.Require().NoError(s.mini.Set(minerStateKey("player-1"), "{corrupt"))

	_, err := s.storage.GetMinerState(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrMinerStateNotFound)
}

func (s *StorageSuite) TestListMinerStates() {
	now := time.Now()
	_ = s.storage.SaveMinerState(s.ctx, model.NewMinerState("player-1", now))
	_ = s.storage.SaveMinerState(s.ctx, model.NewMinerState("player-2", now))

	states, err := s.storage.ListMinerStates(s.ctx)
	s.Require().NoError(err)
	s.Len(states, 2)
}

func (s *StorageSuite) TestListMinerStatesEmpty() {
	states, err := s.storage.ListMinerStates(s.ctx)
	s.Require().NoError(err)
	s.Empty(states)
}

// Achievement collection tests

func (s *StorageSuite) TestSaveAndGetAchievements() {
	achievements := model.DefaultAchievements()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	achievements[0].Unlocked = true
	achievements[0].UnlockedAt = &now

	err := s.storage.SaveAchievements(s.ctx, "player-1", achievements)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAchievements(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(retrieved, len(achievements))
	s.True(retrieved[0].Unlocked)
	s.Require().NotNil(retrieved[0].UnlockedAt)
	s.True(now.Equal(*retrieved[0].UnlockedAt))
}

func (s *StorageSuite) TestGetAchievementsNotFound() {
	_, err := s.storage.GetAchievements(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAchievementsNotFound)
}

func (s *StorageSuite) TestGetAchievementsMalformedFallsBackToNotFound() {
	s.Require().NoError(s.mini.Set(achievementsKey("player-1"), "not json"))

	_, err := s.storage.GetAchievements(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrAchievementsNotFound)
}

// Upgrade collection tests

func (s *StorageSuite) TestSaveAndGetUpgrades() {
	upgrades := model.DefaultUpgrades()
	upgrades[2].Owned = true

	err := s.storage.SaveUpgrades(s.ctx, "player-1", upgrades)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUpgrades(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(retrieved, len(upgrades))
	s.True(retrieved[2].Owned)
	s.Equal(model.EffectEnergyRegenBoost, retrieved[2].Effect)
}

func (s *StorageSuite) TestGetUpgradesNotFound() {
	_, err := s.storage.GetUpgrades(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUpgradesNotFound)
}
