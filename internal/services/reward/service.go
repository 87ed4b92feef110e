package reward

import (
	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/random"
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Reward formula constants. These values are load-bearing: stored
// progression from older clients was earned under the same formula.
const (
	baseReward       = 0.5
	levelBonusRate   = 0.1
	powerBonusRate   = 0.2
	randomBonusRange = 0.5
	energyThreshold  = 50
	energyMultiplier = 1.2
)

// Service computes mining rewards from miner attributes
type Service struct {
	random random.Random
}

// New creates a new reward Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// ComputeReward returns the currency reward for a single mine trigger.
// It never mutates the miner and never returns a negative value; the
// only source of variation between calls is the injected random source.
func (s *Service) ComputeReward(m *model.MinerState) float64 {
	levelBonus := float64(m.Level) * levelBonusRate
	powerBonus := m.MiningPower * powerBonusRate
	randomBonus := s.random.Float64() * randomBonusRange * m.Luck

	multiplier := 1.0
	if m.Energy > energyThreshold {
		multiplier = energyMultiplier
	}

	return (baseReward + levelBonus + powerBonus + randomBonus) * multiplier
}

// Interface for dependency injection
type ServiceInterface interface {
	ComputeReward(m *model.MinerState) float64
}

var _ ServiceInterface = (*Service)(nil)
