package upgrade

import (
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Service applies upgrade purchases to a miner's state.
type Service struct{}

func New() *Service {
	return &Service{}
}

// Purchase buys the upgrade with the given id. The miner state and the
// upgrade list are both mutated only when the purchase succeeds; on any
// error neither is touched. The purchased upgrade is returned so callers
// can report it.
func (s *Service) Purchase(m *model.MinerState, upgrades []model.Upgrade, upgradeID string) (*model.Upgrade, error) {
	idx := -1
	for i := range upgrades {
		if upgrades[i].ID == upgradeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, model.ErrUpgradeNotFound
	}

	u := &upgrades[idx]
	if u.Owned || u.Level >= u.MaxLevel {
		return nil, model.ErrUpgradeMaxed
	}
	if m.Balance < u.Cost {
		return nil, model.ErrInsufficientFunds
	}

	m.Balance -= u.Cost
	u.Owned = true
	u.Level++

	s.applyEffect(m, u)

	result := *u
	return &result, nil
}

func (s *Service) applyEffect(m *model.MinerState, u *model.Upgrade) {
	switch u.Effect {
	case model.EffectMiningPowerBoost:
		m.MiningPower += u.Magnitude
	case model.EffectEnergyCapacityBoost:
		m.MaxEnergy += int(u.Magnitude)
	case model.EffectEnergyRegenBoost:
		m.EnergyRegen += int(u.Magnitude)
	case model.EffectAutoMiningUnlock:
		m.AutoMiningUnlocked = true
	case model.EffectLuckBoost:
		m.Luck += u.Magnitude
	}
}

type ServiceInterface interface {
	Purchase(m *model.MinerState, upgrades []model.Upgrade, upgradeID string) (*model.Upgrade, error)
}

var _ ServiceInterface = (*Service)(nil)
