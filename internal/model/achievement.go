package model

import "time"

// AchievementType selects which player statistic an achievement tracks
type AchievementType string

const (
	AchievementMining  AchievementType = "mining"  // lifetime total mined
	AchievementLevel   AchievementType = "level"   // current level
	AchievementBalance AchievementType = "balance" // current balance
	AchievementTime    AchievementType = "time"    // whole days since join
)

// Achievement is a one-way unlockable milestone.
// Unlocked transitions false to true exactly once; UnlockedAt is set at
// that transition and never changes afterwards.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement float64
	Type        AchievementType
	Unlocked    bool
	UnlockedAt  *time.Time
}

// DefaultAchievements returns the fixed catalog, all initially locked
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "first_mine", Name: "First Steps", Description: "Complete your first mining operation", Icon: "⛏️", Requirement: 1, Type: AchievementMining},
		{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐", Requirement: 5, Type: AchievementLevel},
		{ID: "level_10", Name: "Expert Miner", Description: "Reach level 10", Icon: "🏆", Requirement: 10, Type: AchievementLevel},
		{ID: "level_25", Name: "Elite Status", Description: "Reach level 25", Icon: "👑", Requirement: 25, Type: AchievementLevel},
		{ID: "mine_100", Name: "Hundred Club", Description: "Mine $100 in total", Icon: "💰", Requirement: 100, Type: AchievementMining},
		{ID: "mine_1000", Name: "Thousand Miner", Description: "Mine $1,000 in total", Icon: "💎", Requirement: 1000, Type: AchievementMining},
		{ID: "balance_500", Name: "Wealth Builder", Description: "Accumulate $500 balance", Icon: "🏦", Requirement: 500, Type: AchievementBalance},
		{ID: "week_veteran", Name: "Week Veteran", Description: "Mine for 7 consecutive days", Icon: "📅", Requirement: 7, Type: AchievementTime},
		{ID: "month_veteran", Name: "Monthly Miner", Description: "Mine for 30 days", Icon: "🗓️", Requirement: 30, Type: AchievementTime},
		{ID: "cloud_master", Name: "Cloud Master", Description: "Reach level 50", Icon: "☁️", Requirement: 50, Type: AchievementLevel},
	}
}
