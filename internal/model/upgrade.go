package model

// EffectKind identifies which miner attribute an upgrade modifies.
// The ledger dispatches on this tag rather than inspecting upgrade IDs.
type EffectKind string

const (
	EffectMiningPowerBoost    EffectKind = "mining_power_boost"
	EffectEnergyCapacityBoost EffectKind = "energy_capacity_boost"
	EffectEnergyRegenBoost    EffectKind = "energy_regen_boost"
	EffectAutoMiningUnlock    EffectKind = "auto_mining_unlock"
	EffectLuckBoost           EffectKind = "luck_boost"
)

// Upgrade is a purchasable catalog entry.
// Owned transitions false to true exactly once, only via a successful
// purchase; purchase is impossible when already owned, level-capped, or
// unaffordable. Level counts completed purchases, so the catalog ships
// everything at level 0.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Benefit     string // display text
	Cost        float64
	Level       int
	MaxLevel    int
	Owned       bool
	Effect      EffectKind
	Magnitude   float64
}

// DefaultUpgrades returns the fixed catalog, all initially unowned
func DefaultUpgrades() []Upgrade {
	return []Upgrade{
		{
			ID:          "mining_power_1",
			Name:        "Enhanced Processor",
			Description: "Increase mining power by 0.5x",
			Benefit:     "+0.5x Mining Power",
			Cost:        50,
			MaxLevel:    10,
			Effect:      EffectMiningPowerBoost,
			Magnitude:   0.5,
		},
		{
			ID:          "energy_capacity_1",
			Name:        "Extended Battery",
			Description: "Increase maximum energy by 20",
			Benefit:     "+20 Max Energy",
			Cost:        75,
			MaxLevel:    5,
			Effect:      EffectEnergyCapacityBoost,
			Magnitude:   20,
		},
		{
			ID:          "energy_regen_1",
			Name:        "Fast Charger",
			Description: "Increase energy regeneration rate",
			Benefit:     "+1 Energy per Tick",
			Cost:        100,
			MaxLevel:    3,
			Effect:      EffectEnergyRegenBoost,
			Magnitude:   1,
		},
		{
			ID:          "auto_miner_1",
			Name:        "Auto Mining Bot",
			Description: "Enables automatic mining when away",
			Benefit:     "Auto Mining Unlocked",
			Cost:        200,
			MaxLevel:    1,
			Effect:      EffectAutoMiningUnlock,
		},
		{
			ID:          "luck_boost_1",
			Name:        "Lucky Charm",
			Description: "Increase chance of bonus rewards",
			Benefit:     "+25% Bonus Range",
			Cost:        150,
			MaxLevel:    4,
			Effect:      EffectLuckBoost,
			Magnitude:   0.25,
		},
	}
}
