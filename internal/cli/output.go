package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Miner:
		o.printMiner(v)
	case MineResult:
		o.printMineResult(v)
	case []Achievement:
		o.printAchievements(v)
	case []Upgrade:
		o.printUpgrades(v)
	case PurchaseResult:
		o.printPurchaseResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Miner response type
type Miner struct {
	PlayerID           string  `json:"player_id"`
	Balance            float64 `json:"balance"`
	BalanceDisplay     string  `json:"balance_display"`
	TotalMined         float64 `json:"total_mined"`
	MiningPower        float64 `json:"mining_power"`
	Level              int     `json:"level"`
	Experience         int     `json:"experience"`
	ExperienceToNext   int     `json:"experience_to_next_level"`
	ExperienceProgress float64 `json:"experience_progress"`
	Rank               string  `json:"rank"`
	Energy             int     `json:"energy"`
	MaxEnergy          int     `json:"max_energy"`
	EnergyRegen        int     `json:"energy_regen"`
	Luck               float64 `json:"luck"`
	AutoMiningUnlocked bool    `json:"auto_mining_unlocked"`
	AutoMining         bool    `json:"auto_mining"`
}

// MineResult response type
type MineResult struct {
	Miner           Miner         `json:"miner"`
	Reward          float64       `json:"reward"`
	RewardDisplay   string        `json:"reward_display"`
	LeveledUp       bool          `json:"leveled_up"`
	NewAchievements []Achievement `json:"new_achievements,omitempty"`
}

// Achievement response type
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

// Upgrade response type
type Upgrade struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	CostDisplay string  `json:"cost_display"`
	Level       int     `json:"level"`
	MaxLevel    int     `json:"max_level"`
	Owned       bool    `json:"owned"`
}

// PurchaseResult response type
type PurchaseResult struct {
	Miner    Miner     `json:"miner"`
	Upgrade  Upgrade   `json:"upgrade"`
	Upgrades []Upgrade `json:"upgrades"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMiner(m Miner) {
	fmt.Printf("Miner: %s\n", m.PlayerID)
	fmt.Printf("Balance: %s\n", m.BalanceDisplay)
	fmt.Printf("Total Mined: %.2f\n", m.TotalMined)
	fmt.Printf("Level: %d (%s)\n", m.Level, m.Rank)
	fmt.Printf("Experience: %d (%d to next level)\n", m.Experience, m.ExperienceToNext)
	fmt.Printf("Mining Power: %.1f\n", m.MiningPower)
	fmt.Printf("Luck: %.2f\n", m.Luck)
	fmt.Printf("Energy: %d/%d (+%d per tick)\n", m.Energy, m.MaxEnergy, m.EnergyRegen)

	autoStr := "locked"
	if m.AutoMiningUnlocked {
		autoStr = "off"
		if m.AutoMining {
			autoStr = "on"
		}
	}
	fmt.Printf("Auto-Mining: %s\n", autoStr)
}

func (o *Output) printMineResult(r MineResult) {
	fmt.Printf("Mined %s\n", r.RewardDisplay)
	if r.LeveledUp {
		fmt.Printf("Level up! Now level %d (%s)\n", r.Miner.Level, r.Miner.Rank)
	}
	for _, a := range r.NewAchievements {
		fmt.Printf("Achievement unlocked: %s - %s\n", a.Name, a.Description)
	}
	fmt.Printf("Balance: %s\n", r.Miner.BalanceDisplay)
	fmt.Printf("Energy: %d/%d\n", r.Miner.Energy, r.Miner.MaxEnergy)
}

func (o *Output) printAchievements(achievements []Achievement) {
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("Achievements (%d/%d unlocked):\n", unlocked, len(achievements))
	for _, a := range achievements {
		marker := "[ ]"
		if a.Unlocked {
			marker = "[x]"
		}
		fmt.Printf("  %s %s - %s\n", marker, a.Name, a.Description)
	}
}

func (o *Output) printUpgrades(upgrades []Upgrade) {
	fmt.Printf("Upgrades (%d):\n", len(upgrades))
	for _, u := range upgrades {
		status := u.CostDisplay
		if u.Owned {
			status = "owned"
		}
		fmt.Printf("  %s - %s (%s)\n", u.ID, u.Name, status)
		fmt.Printf("      %s\n", u.Description)
	}
}

func (o *Output) printPurchaseResult(p PurchaseResult) {
	fmt.Printf("Purchased: %s\n", p.Upgrade.Name)
	fmt.Printf("Balance: %s\n", p.Miner.BalanceDisplay)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
