// Package progression maps rewards to experience and experience to the
// level/rank ladder. Everything here is a pure function of its inputs.
package progression

import "math"

// Experience and level constants
const (
	experiencePerReward = 10
	experiencePerLevel  = 1000
)

// rankThreshold pairs a minimum level with its rank title
type rankThreshold struct {
	level int
	rank  string
}

// Thresholds in descending order: evaluation must match the highest
// threshold first so a level 100 miner is a Cloud Legend, not a Novice.
var rankThresholds = []rankThreshold{
	{100, "Cloud Legend"},
	{75, "Mining Titan"},
	{50, "Cloud Master"},
	{25, "Elite Miner"},
	{15, "Expert Miner"},
	{10, "Advanced Miner"},
	{5, "Skilled Miner"},
	{1, "Novice Miner"},
}

// ExperienceGain converts a reward amount to experience points
func ExperienceGain(reward float64) int {
	return int(math.Floor(reward * experiencePerReward))
}

// LevelFromExperience derives the level for a cumulative experience total.
// Level 1 starts at zero experience; boundaries are exact multiples of 1000.
func LevelFromExperience(experience int) int {
	return experience/experiencePerLevel + 1
}

// RankFromLevel returns the rank title for a level
func RankFromLevel(level int) string {
	for _, t := range rankThresholds {
		if level >= t.level {
			return t.rank
		}
	}
	return rankThresholds[len(rankThresholds)-1].rank
}

// ExperienceToNextLevel returns the experience still needed to level up
func ExperienceToNextLevel(experience int) int {
	currentLevel := LevelFromExperience(experience)
	return currentLevel*experiencePerLevel - experience
}

// ExperienceProgress returns the percent progress within the current level
func ExperienceProgress(experience int) float64 {
	return float64(experience%experiencePerLevel) / experiencePerLevel * 100
}
