package achievement

import (
	"time"

	"github.com/DAILY622/Cloud-wealth-mining/internal/dependencies/clock"
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Service evaluates achievement unlock conditions against miner state
type Service struct {
	clock clock.Clock
}

// New creates a new achievement Service
func New(clock clock.Clock) *Service {
	return &Service{
		clock: clock,
	}
}

// Evaluate returns a new collection with unlock decisions applied.
// Order and length are preserved. Already-unlocked entries pass through
// untouched, so re-evaluating is idempotent and UnlockedAt never moves.
func (s *Service) Evaluate(m *model.MinerState, achievements []model.Achievement) []model.Achievement {
	now := s.clock.Now()

	result := make([]model.Achievement, len(achievements))
	for i, a := range achievements {
		if a.Unlocked {
			result[i] = a
			continue
		}

		if s.conditionMet(m, a, now) {
			a.Unlocked = true
			unlockedAt := now
			a.UnlockedAt = &unlockedAt
		}
		result[i] = a
	}

	return result
}

// conditionMet checks a single locked achievement against miner state
func (s *Service) conditionMet(m *model.MinerState, a model.Achievement, now time.Time) bool {
	switch a.Type {
	case model.AchievementMining:
		return m.TotalMined >= a.Requirement
	case model.AchievementLevel:
		return float64(m.Level) >= a.Requirement
	case model.AchievementBalance:
		return m.Balance >= a.Requirement
	case model.AchievementTime:
		days := int(now.Sub(m.JoinDate).Hours() / 24)
		return float64(days) >= a.Requirement
	default:
		return false
	}
}

// NewlyUnlocked diffs two collections by id and unlock flag, returning
// the achievements that transitioned locked -> unlocked, in list order
func NewlyUnlocked(previous, updated []model.Achievement) []model.Achievement {
	wasUnlocked := make(map[string]bool, len(previous))
	for _, a := range previous {
		wasUnlocked[a.ID] = a.Unlocked
	}

	var newly []model.Achievement
	for _, a := range updated {
		if a.Unlocked && !wasUnlocked[a.ID] {
			newly = append(newly, a)
		}
	}
	return newly
}

// Interface for dependency injection
type ServiceInterface interface {
	Evaluate(m *model.MinerState, achievements []model.Achievement) []model.Achievement
}

var _ ServiceInterface = (*Service)(nil)
