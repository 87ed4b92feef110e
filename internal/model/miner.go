package model

import "time"

// MinerState is a player's mutable progression record.
//
// Balance and TotalMined both accumulate mining rewards, but only Balance
// is spent on purchases; TotalMined never decreases. Level and Rank are
// derived from Experience and recomputed whenever it changes.
type MinerState struct {
	PlayerID    PlayerID
	Balance     float64
	TotalMined  float64
	MiningPower float64
	Level       int
	Experience  int
	Rank        string

	// Energy gates mining: each mine costs a fixed amount, and the
	// regeneration tick restores EnergyRegen per interval up to MaxEnergy.
	Energy      int
	MaxEnergy   int
	EnergyRegen int

	// Luck scales the random bonus term of the reward formula. 1.0 leaves
	// the formula unchanged; luck upgrades raise it.
	Luck float64

	AutoMiningUnlocked bool
	AutoMining         bool

	JoinDate  time.Time
	LastLogin time.Time
}

// Default starting attributes for a fresh miner
const (
	DefaultMiningPower = 1.0
	DefaultMaxEnergy   = 100
	DefaultEnergyRegen = 1
	DefaultLuck        = 1.0
)

// NewMinerState creates a fresh progression record with documented defaults
func NewMinerState(playerID PlayerID, now time.Time) *MinerState {
	return &MinerState{
		PlayerID:    playerID,
		Balance:     0,
		TotalMined:  0,
		MiningPower: DefaultMiningPower,
		Level:       1,
		Experience:  0,
		Rank:        "Novice Miner",
		Energy:      DefaultMaxEnergy,
		MaxEnergy:   DefaultMaxEnergy,
		EnergyRegen: DefaultEnergyRegen,
		Luck:        DefaultLuck,
		JoinDate:    now,
		LastLogin:   now,
	}
}
