package response

import (
	"time"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/auth"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/progression"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Miner represents a miner's progression in API responses
type Miner struct {
	PlayerID           string    `json:"player_id"`
	Balance            float64   `json:"balance"`
	BalanceDisplay     string    `json:"balance_display"`
	TotalMined         float64   `json:"total_mined"`
	MiningPower        float64   `json:"mining_power"`
	Level              int       `json:"level"`
	Experience         int       `json:"experience"`
	ExperienceToNext   int       `json:"experience_to_next_level"`
	ExperienceProgress float64   `json:"experience_progress"`
	Rank               string    `json:"rank"`
	Energy             int       `json:"energy"`
	MaxEnergy          int       `json:"max_energy"`
	EnergyRegen        int       `json:"energy_regen"`
	Luck               float64   `json:"luck"`
	AutoMiningUnlocked bool      `json:"auto_mining_unlocked"`
	AutoMining         bool      `json:"auto_mining"`
	JoinDate           time.Time `json:"join_date"`
	LastLogin          time.Time `json:"last_login"`
}

// MinerFromModel converts model.MinerState to a response Miner
func MinerFromModel(m *model.MinerState) Miner {
	return Miner{
		PlayerID:           string(m.PlayerID),
		Balance:            m.Balance,
		BalanceDisplay:     model.FormatCurrency(m.Balance),
		TotalMined:         m.TotalMined,
		MiningPower:        m.MiningPower,
		Level:              m.Level,
		Experience:         m.Experience,
		ExperienceToNext:   progression.ExperienceToNextLevel(m.Experience),
		ExperienceProgress: progression.ExperienceProgress(m.Experience),
		Rank:               m.Rank,
		Energy:             m.Energy,
		MaxEnergy:          m.MaxEnergy,
		EnergyRegen:        m.EnergyRegen,
		Luck:               m.Luck,
		AutoMiningUnlocked: m.AutoMiningUnlocked,
		AutoMining:         m.AutoMining,
		JoinDate:           m.JoinDate,
		LastLogin:          m.LastLogin,
	}
}

// Achievement represents an achievement in API responses
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Requirement float64    `json:"requirement"`
	Type        string     `json:"type"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementFromModel converts model.Achievement
func AchievementFromModel(a model.Achievement) Achievement {
	return Achievement{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Requirement: a.Requirement,
		Type:        string(a.Type),
		Unlocked:    a.Unlocked,
		UnlockedAt:  a.UnlockedAt,
	}
}

// AchievementsFromModel converts a whole collection
func AchievementsFromModel(achievements []model.Achievement) []Achievement {
	out := make([]Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = AchievementFromModel(a)
	}
	return out
}

// Upgrade represents an upgrade catalog entry in API responses
type Upgrade struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Benefit     string  `json:"benefit"`
	Cost        float64 `json:"cost"`
	CostDisplay string  `json:"cost_display"`
	Level       int     `json:"level"`
	MaxLevel    int     `json:"max_level"`
	Owned       bool    `json:"owned"`
	Effect      string  `json:"effect"`
}

// UpgradeFromModel converts model.Upgrade
func UpgradeFromModel(u model.Upgrade) Upgrade {
	return Upgrade{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		Benefit:     u.Benefit,
		Cost:        u.Cost,
		CostDisplay: model.FormatCurrency(u.Cost),
		Level:       u.Level,
		MaxLevel:    u.MaxLevel,
		Owned:       u.Owned,
		Effect:      string(u.Effect),
	}
}

// UpgradesFromModel converts a whole catalog
func UpgradesFromModel(upgrades []model.Upgrade) []Upgrade {
	out := make([]Upgrade, len(upgrades))
	for i, u := range upgrades {
		out[i] = UpgradeFromModel(u)
	}
	return out
}

// MineResponse is the response after a successful mine trigger
type MineResponse struct {
	Miner           Miner         `json:"miner"`
	Reward          float64       `json:"reward"`
	RewardDisplay   string        `json:"reward_display"`
	LeveledUp       bool          `json:"leveled_up"`
	NewAchievements []Achievement `json:"new_achievements,omitempty"`
}

// PurchaseResponse is the response after a successful upgrade purchase
type PurchaseResponse struct {
	Miner    Miner     `json:"miner"`
	Upgrade  Upgrade   `json:"upgrade"`
	Upgrades []Upgrade `json:"upgrades"`
}
