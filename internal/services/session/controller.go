package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/clock"
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/achievement"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/progression"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/reward"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/upgrade"
	"github.com/DAILY622/Cloud-wealth-mining/internal/storage"
)

// Each mine trigger, manual or automatic, costs this much energy
const mineEnergyCost = 10

// EventSink receives progression events for delivery to connected
// clients. A nil sink is valid and drops all events.
type EventSink interface {
	Publish(event model.Event)
}

// MineResult is the outcome of a single successful mine trigger
type MineResult struct {
	Miner           *model.MinerState
	Reward          float64
	LeveledUp       bool
	NewAchievements []model.Achievement
}

// PurchaseResult is the outcome of a successful upgrade purchase
type PurchaseResult struct {
	Miner    *model.MinerState
	Upgrade  *model.Upgrade
	Upgrades []model.Upgrade
}

// Service orchestrates the progression loop: it owns the load-mutate-save
// cycle around the pure reward, progression, achievement, and upgrade
// logic, and serializes mutations per player.
type Service struct {
	storage      storage.Storage
	rewards      reward.ServiceInterface
	achievements achievement.ServiceInterface
	upgrades     upgrade.ServiceInterface
	clock        clock.Clock
	logger       *slog.Logger
	sink         EventSink

	mu          sync.Mutex
	playerLocks map[model.PlayerID]*sync.Mutex
}

// New creates a new session Service
func New(
	store storage.Storage,
	rewards reward.ServiceInterface,
	achievements achievement.ServiceInterface,
	upgrades upgrade.ServiceInterface,
	clk clock.Clock,
	logger *slog.Logger,
	sink EventSink,
) *Service {
	return &Service{
		storage:      store,
		rewards:      rewards,
		achievements: achievements,
		upgrades:     upgrades,
		clock:        clk,
		logger:       logger,
		sink:         sink,
		playerLocks:  make(map[model.PlayerID]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing mutations for one player
func (s *Service) lockFor(playerID model.PlayerID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.playerLocks[playerID]
	if !ok {
		l = &sync.Mutex{}
		s.playerLocks[playerID] = l
	}
	return l
}

func (s *Service) publish(event model.Event) {
	if s.sink != nil {
		s.sink.Publish(event)
	}
}

// GetOrCreateMiner returns the player's progression record, creating and
// persisting a fresh one on first access
func (s *Service) GetOrCreateMiner(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()
	return s.getOrCreateMinerLocked(ctx, playerID)
}

func (s *Service) getOrCreateMinerLocked(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error) {
	m, err := s.storage.GetMinerState(ctx, playerID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, model.ErrMinerStateNotFound) {
		return nil, err
	}

	m = model.NewMinerState(playerID, s.clock.Now())
	if err := s.storage.SaveMinerState(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("created miner state", "player_id", playerID)
	return m, nil
}

// GetAchievements returns the player's achievement collection, seeding
// the default catalog on first access
func (s *Service) GetAchievements(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()
	return s.getAchievementsLocked(ctx, playerID)
}

func (s *Service) getAchievementsLocked(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error) {
	achievements, err := s.storage.GetAchievements(ctx, playerID)
	if err == nil {
		return achievements, nil
	}
	if !errors.Is(err, model.ErrAchievementsNotFound) {
		return nil, err
	}

	achievements = model.DefaultAchievements()
	if err := s.storage.SaveAchievements(ctx, playerID, achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// GetUpgrades returns the player's upgrade catalog, seeding the default
// catalog on first access
func (s *Service) GetUpgrades(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()
	return s.getUpgradesLocked(ctx, playerID)
}

func (s *Service) getUpgradesLocked(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error) {
	upgrades, err := s.storage.GetUpgrades(ctx, playerID)
	if err == nil {
		return upgrades, nil
	}
	if !errors.Is(err, model.ErrUpgradesNotFound) {
		return nil, err
	}

	upgrades = model.DefaultUpgrades()
	if err := s.storage.SaveUpgrades(ctx, playerID, upgrades); err != nil {
		return nil, err
	}
	return upgrades, nil
}

// Mine performs one manual mine trigger for the player
func (s *Service) Mine(ctx context.Context, playerID model.PlayerID) (*MineResult, error) {
	return s.mine(ctx, playerID, false)
}

func (s *Service) mine(ctx context.Context, playerID model.PlayerID, auto bool) (*MineResult, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()

	m, err := s.getOrCreateMinerLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if m.Energy < mineEnergyCost {
		return nil, model.ErrInsufficientEnergy
	}

	now := s.clock.Now()
	amount := s.rewards.ComputeReward(m)

	m.Balance += amount
	m.TotalMined += amount
	m.Experience += progression.ExperienceGain(amount)
	m.Energy -= mineEnergyCost
	m.LastLogin = now

	// A large reward can cross several level boundaries at once; only the
	// final level is announced.
	leveledUp := false
	if newLevel := progression.LevelFromExperience(m.Experience); newLevel > m.Level {
		m.Level = newLevel
		m.Rank = progression.RankFromLevel(newLevel)
		leveledUp = true
	}

	if err := s.storage.SaveMinerState(ctx, m); err != nil {
		return nil, err
	}

	achievements, err := s.getAchievementsLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	updated := s.achievements.Evaluate(m, achievements)
	newly := achievement.NewlyUnlocked(achievements, updated)
	if len(newly) > 0 {
		if err := s.storage.SaveAchievements(ctx, playerID, updated); err != nil {
			return nil, err
		}
	}

	s.publish(model.Event{
		Type:      model.EventRewardEarned,
		Timestamp: now,
		PlayerID:  playerID,
		Payload:   model.RewardEarnedPayload{Amount: amount, Auto: auto},
	})
	if leveledUp {
		s.publish(model.Event{
			Type:      model.EventLevelUp,
			Timestamp: now,
			PlayerID:  playerID,
			Payload:   model.LevelUpPayload{NewLevel: m.Level, Rank: m.Rank},
		})
	}
	for _, a := range newly {
		s.publish(model.Event{
			Type:      model.EventAchievementUnlocked,
			Timestamp: now,
			PlayerID:  playerID,
			Payload:   model.AchievementUnlockedPayload{ID: a.ID, Name: a.Name},
		})
	}

	return &MineResult{
		Miner:           m,
		Reward:          amount,
		LeveledUp:       leveledUp,
		NewAchievements: newly,
	}, nil
}

// PurchaseUpgrade buys an upgrade for the player, deducting its cost and
// applying its effect atomically
func (s *Service) PurchaseUpgrade(ctx context.Context, playerID model.PlayerID, upgradeID string) (*PurchaseResult, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()

	m, err := s.getOrCreateMinerLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	upgrades, err := s.getUpgradesLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}

	bought, err := s.upgrades.Purchase(m, upgrades, upgradeID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveMinerState(ctx, m); err != nil {
		return nil, err
	}
	if err := s.storage.SaveUpgrades(ctx, playerID, upgrades); err != nil {
		return nil, err
	}

	s.logger.Info("upgrade purchased",
		"player_id", playerID,
		"upgrade_id", bought.ID,
		"balance", m.Balance)

	s.publish(model.Event{
		Type:      model.EventUpgradePurchased,
		Timestamp: s.clock.Now(),
		PlayerID:  playerID,
		Payload:   model.UpgradePurchasedPayload{ID: bought.ID, Name: bought.Name},
	})

	return &PurchaseResult{
		Miner:    m,
		Upgrade:  bought,
		Upgrades: upgrades,
	}, nil
}

// SetAutoMining toggles the auto-mining flag. Enabling requires the
// auto-mining upgrade to have been purchased.
func (s *Service) SetAutoMining(ctx context.Context, playerID model.PlayerID, enabled bool) (*model.MinerState, error) {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()

	m, err := s.getOrCreateMinerLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if enabled && !m.AutoMiningUnlocked {
		return nil, model.ErrAutoMiningLocked
	}

	m.AutoMining = enabled
	if err := s.storage.SaveMinerState(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AutoMineTick runs one auto-mining pass over every miner that has
// auto-mining unlocked and switched on. Miners without enough energy
// are skipped silently.
func (s *Service) AutoMineTick(ctx context.Context) error {
	states, err := s.storage.ListMinerStates(ctx)
	if err != nil {
		return err
	}

	for _, st := range states {
		if !st.AutoMiningUnlocked || !st.AutoMining {
			continue
		}
		if _, err := s.mine(ctx, st.PlayerID, true); err != nil {
			if errors.Is(err, model.ErrInsufficientEnergy) {
				continue
			}
			s.logger.Error("auto-mine failed", "player_id", st.PlayerID, "error", err)
		}
	}
	return nil
}

// RegenerateEnergy runs one regeneration pass over every miner below
// capacity, restoring each miner's EnergyRegen up to MaxEnergy
func (s *Service) RegenerateEnergy(ctx context.Context) error {
	states, err := s.storage.ListMinerStates(ctx)
	if err != nil {
		return err
	}

	for _, st := range states {
		if st.Energy >= st.MaxEnergy {
			continue
		}
		if err := s.regenerate(ctx, st.PlayerID); err != nil {
			s.logger.Error("energy regen failed", "player_id", st.PlayerID, "error", err)
		}
	}
	return nil
}

func (s *Service) regenerate(ctx context.Context, playerID model.PlayerID) error {
	l := s.lockFor(playerID)
	l.Lock()
	defer l.Unlock()

	m, err := s.storage.GetMinerState(ctx, playerID)
	if err != nil {
		return err
	}
	if m.Energy >= m.MaxEnergy {
		return nil
	}

	m.Energy += m.EnergyRegen
	if m.Energy > m.MaxEnergy {
		m.Energy = m.MaxEnergy
	}
	return s.storage.SaveMinerState(ctx, m)
}

// Interface for dependency injection
type ServiceInterface interface {
	GetOrCreateMiner(ctx context.Context, playerID model.PlayerID) (*model.MinerState, error)
	GetAchievements(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error)
	GetUpgrades(ctx context.Context, playerID model.PlayerID) ([]model.Upgrade, error)
	Mine(ctx context.Context, playerID model.PlayerID) (*MineResult, error)
	PurchaseUpgrade(ctx context.Context, playerID model.PlayerID, upgradeID string) (*PurchaseResult, error)
	SetAutoMining(ctx context.Context, playerID model.PlayerID, enabled bool) (*model.MinerState, error)
	AutoMineTick(ctx context.Context) error
	RegenerateEnergy(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
