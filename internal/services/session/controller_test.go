package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/mocks"
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/achievement"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/reward"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/upgrade"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage/memory"
	"github.com/DAILY622/Cloud-wealth-mining/internal/testutil"
)

// captureSink records published events in order
type captureSink struct {
	events []model.Event
}

func (c *captureSink) Publish(event model.Event) {
	c.events = append(c.events, event)
}

func (c *captureSink) ofType(t model.EventType) []model.Event {
	var out []model.Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	sink    *captureSink
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.sink = &captureSink{}
	s.service = New(
		s.storage,
		reward.New(s.random),
		achievement.New(s.clock),
		upgrade.New(),
		s.clock,
		testutil.NopLogger(),
		s.sink,
	)
}

const playerID = model.PlayerID("player-1")

func (s *ServiceSuite) TestGetOrCreateMinerSeedsDefaults() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)

	s.Equal(playerID, m.PlayerID)
	s.Equal(1, m.Level)
	s.Equal(model.DefaultMaxEnergy, m.Energy)
	s.Equal("Novice Miner", m.Rank)
	s.Equal(s.clock.Now(), m.JoinDate)

	// Second call returns the persisted record, not a new one
	s.clock.Advance(time.Hour)
	again, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(m.JoinDate, again.JoinDate)
}

func (s *ServiceSuite) TestGetAchievementsSeedsCatalog() {
	achievements, err := s.service.GetAchievements(s.ctx, playerID)
	s.Require().NoError(err)
	s.Len(achievements, 10)
	for _, a := range achievements {
		s.False(a.Unlocked)
	}
}

func (s *ServiceSuite) TestGetUpgradesSeedsCatalog() {
	upgrades, err := s.service.GetUpgrades(s.ctx, playerID)
	s.Require().NoError(err)
	s.Len(upgrades, 5)
	for _, u := range upgrades {
		s.False(u.Owned)
	}
}

func (s *ServiceSuite) TestMineAppliesRewardAndCosts() {
	s.random.QueueFloat64(0.0)

	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)

	// Fresh miner, zero random bonus: (0.5 + 0.1 + 0.2) * 1.2
	s.InDelta(0.96, result.Reward, 1e-9)
	s.InDelta(0.96, result.Miner.Balance, 1e-9)
	s.InDelta(0.96, result.Miner.TotalMined, 1e-9)
	s.Equal(9, result.Miner.Experience)
	s.Equal(90, result.Miner.Energy)
	s.False(result.LeveledUp)

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.InDelta(0.96, stored.Balance, 1e-9)
	s.Equal(90, stored.Energy)
}

func (s *ServiceSuite) TestMineRejectsWhenEnergyDepleted() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Energy = 9
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	_, err = s.service.Mine(s.ctx, playerID)
	s.ErrorIs(err, model.ErrInsufficientEnergy)

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(9, stored.Energy)
	s.InDelta(0.0, stored.Balance, 1e-9)
	s.Empty(s.sink.events)
}

func (s *ServiceSuite) TestMineEmitsRewardEvent() {
	s.random.QueueFloat64(0.5)

	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)

	rewards := s.sink.ofType(model.EventRewardEarned)
	s.Require().Len(rewards, 1)
	s.Equal(playerID, rewards[0].PlayerID)
	payload := rewards[0].Payload.(model.RewardEarnedPayload)
	s.InDelta(result.Reward, payload.Amount, 1e-9)
	s.False(payload.Auto)
}

func (s *ServiceSuite) TestMineLevelUp() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Experience = 995
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	s.random.QueueFloat64(0.0)
	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)

	s.True(result.LeveledUp)
	s.Equal(2, result.Miner.Level)
	s.Equal("Novice Miner", result.Miner.Rank)

	levelUps := s.sink.ofType(model.EventLevelUp)
	s.Require().Len(levelUps, 1)
	payload := levelUps[0].Payload.(model.LevelUpPayload)
	s.Equal(2, payload.NewLevel)
}

func (s *ServiceSuite) TestMineCrossingSeveralLevelsAnnouncesOnce() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.MiningPower = 2000 // one reward worth several levels of experience
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	s.random.QueueFloat64(0.0)
	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)

	s.True(result.LeveledUp)
	s.Greater(result.Miner.Level, 3)
	s.Require().Len(s.sink.ofType(model.EventLevelUp), 1)

	payload := s.sink.ofType(model.EventLevelUp)[0].Payload.(model.LevelUpPayload)
	s.Equal(result.Miner.Level, payload.NewLevel)
}

func (s *ServiceSuite) TestMineUnlocksAchievements() {
	// A roll of 0.5 yields (0.8 + 0.25) * 1.2 = 1.26, clearing the
	// first_mine requirement of 1 coin mined in a single trigger.
	s.random.QueueFloat64(0.5)

	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)

	s.Require().Len(result.NewAchievements, 1)
	s.Equal("first_mine", result.NewAchievements[0].ID)

	unlocks := s.sink.ofType(model.EventAchievementUnlocked)
	s.Require().Len(unlocks, 1)
	payload := unlocks[0].Payload.(model.AchievementUnlockedPayload)
	s.Equal("first_mine", payload.ID)

	stored, err := s.storage.GetAchievements(s.ctx, playerID)
	s.Require().NoError(err)
	for _, a := range stored {
		if a.ID == "first_mine" {
			s.True(a.Unlocked)
		}
	}

	// Mining again does not re-announce the unlock
	s.random.QueueFloat64(0.0)
	result, err = s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)
	s.Empty(result.NewAchievements)
	s.Len(s.sink.ofType(model.EventAchievementUnlocked), 1)
}

func (s *ServiceSuite) TestSubCoinRewardDoesNotUnlockFirstMine() {
	// Zero roll: (0.5 + 0.1 + 0.2) * 1.2 = 0.96, just under the
	// first_mine requirement.
	s.random.QueueFloat64(0.0)

	result, err := s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)
	s.InDelta(0.96, result.Reward, 1e-9)
	s.Empty(result.NewAchievements)
	s.Empty(s.sink.ofType(model.EventAchievementUnlocked))

	// The second mine carries total mined past 1 and unlocks it
	s.random.QueueFloat64(0.0)
	result, err = s.service.Mine(s.ctx, playerID)
	s.Require().NoError(err)
	s.Require().Len(result.NewAchievements, 1)
	s.Equal("first_mine", result.NewAchievements[0].ID)
}

func (s *ServiceSuite) TestPurchaseUpgrade() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Balance = 100
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	result, err := s.service.PurchaseUpgrade(s.ctx, playerID, "mining_power_1")
	s.Require().NoError(err)

	s.InDelta(50.0, result.Miner.Balance, 1e-9)
	s.InDelta(1.5, result.Miner.MiningPower, 1e-9)
	s.True(result.Upgrade.Owned)

	stored, err := s.storage.GetUpgrades(s.ctx, playerID)
	s.Require().NoError(err)
	for _, u := range stored {
		if u.ID == "mining_power_1" {
			s.True(u.Owned)
		}
	}

	purchases := s.sink.ofType(model.EventUpgradePurchased)
	s.Require().Len(purchases, 1)
	payload := purchases[0].Payload.(model.UpgradePurchasedPayload)
	s.Equal("mining_power_1", payload.ID)
}

func (s *ServiceSuite) TestPurchaseUpgradeRejectionLeavesStateUntouched() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Balance = 10
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	_, err = s.service.PurchaseUpgrade(s.ctx, playerID, "mining_power_1")
	s.ErrorIs(err, model.ErrInsufficientFunds)

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.InDelta(10.0, stored.Balance, 1e-9)
	s.Empty(s.sink.ofType(model.EventUpgradePurchased))
}

func (s *ServiceSuite) TestSetAutoMiningRequiresUnlock() {
	_, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)

	_, err = s.service.SetAutoMining(s.ctx, playerID, true)
	s.ErrorIs(err, model.ErrAutoMiningLocked)

	// Buy the unlock, then toggling works
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Balance = 200
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))
	_, err = s.service.PurchaseUpgrade(s.ctx, playerID, "auto_miner_1")
	s.Require().NoError(err)

	updated, err := s.service.SetAutoMining(s.ctx, playerID, true)
	s.Require().NoError(err)
	s.True(updated.AutoMining)

	updated, err = s.service.SetAutoMining(s.ctx, playerID, false)
	s.Require().NoError(err)
	s.False(updated.AutoMining)
}

func (s *ServiceSuite) TestAutoMineTickMinesOnlyEnabledMiners() {
	setup := func(id model.PlayerID, unlocked, enabled bool) {
		m, err := s.service.GetOrCreateMiner(s.ctx, id)
		s.Require().NoError(err)
		m.AutoMiningUnlocked = unlocked
		m.AutoMining = enabled
		s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))
	}
	setup("auto", true, true)
	setup("manual", false, false)
	setup("unlocked-but-off", true, false)

	s.random.QueueFloat64(0.0)
	s.Require().NoError(s.service.AutoMineTick(s.ctx))

	auto, err := s.storage.GetMinerState(s.ctx, "auto")
	s.Require().NoError(err)
	s.Greater(auto.Balance, 0.0)
	s.Equal(90, auto.Energy)

	for _, id := range []model.PlayerID{"manual", "unlocked-but-off"} {
		m, err := s.storage.GetMinerState(s.ctx, id)
		s.Require().NoError(err)
		s.InDelta(0.0, m.Balance, 1e-9)
		s.Equal(100, m.Energy)
	}

	rewards := s.sink.ofType(model.EventRewardEarned)
	s.Require().Len(rewards, 1)
	s.True(rewards[0].Payload.(model.RewardEarnedPayload).Auto)
}

func (s *ServiceSuite) TestAutoMineTickSkipsDepletedMiners() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.AutoMiningUnlocked = true
	m.AutoMining = true
	m.Energy = 5
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	s.Require().NoError(s.service.AutoMineTick(s.ctx))

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(5, stored.Energy)
	s.Empty(s.sink.events)
}

func (s *ServiceSuite) TestRegenerateEnergy() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Energy = 42
	m.EnergyRegen = 3
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	s.Require().NoError(s.service.RegenerateEnergy(s.ctx))

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(45, stored.Energy)
}

func (s *ServiceSuite) TestRegenerateEnergyClampsAtCapacity() {
	m, err := s.service.GetOrCreateMiner(s.ctx, playerID)
	s.Require().NoError(err)
	m.Energy = m.MaxEnergy - 1
	m.EnergyRegen = 5
	s.Require().NoError(s.storage.SaveMinerState(s.ctx, m))

	s.Require().NoError(s.service.RegenerateEnergy(s.ctx))

	stored, err := s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(m.MaxEnergy, stored.Energy)

	// Full miners stay put
	s.Require().NoError(s.service.RegenerateEnergy(s.ctx))
	stored, err = s.storage.GetMinerState(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(m.MaxEnergy, stored.Energy)
}

func (s *ServiceSuite) TestNilSinkDropsEvents() {
	svc := New(
		s.storage,
		reward.New(s.random),
		achievement.New(s.clock),
		upgrade.New(),
		s.clock,
		testutil.NopLogger(),
		nil,
	)

	s.random.QueueFloat64(0.0)
	_, err := svc.Mine(s.ctx, playerID)
	s.Require().NoError(err)
}
