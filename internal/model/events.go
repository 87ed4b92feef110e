package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRewardEarned        EventType = "reward_earned"
	EventLevelUp             EventType = "level_up"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventUpgradePurchased    EventType = "upgrade_purchased"
)

// Event is the base structure for all events surfaced to the
// presentation layer as notifications
type Event struct {
	Type      EventType
	Timestamp time.Time
	PlayerID  PlayerID
	Payload   any // Type-specific data
}

// RewardEarnedPayload contains data for reward earned events
type RewardEarnedPayload struct {
	Amount float64
	Auto   bool // true when triggered by the auto-mining tick
}

// LevelUpPayload contains data for level up events
type LevelUpPayload struct {
	NewLevel int
	Rank     string
}

// AchievementUnlockedPayload contains data for achievement unlocked events
type AchievementUnlockedPayload struct {
	ID   string
	Name string
}

// UpgradePurchasedPayload contains data for upgrade purchased events
type UpgradePurchasedPayload struct {
	ID   string
	Name string
}
