package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceGain(t *testing.T) {
	tests := []struct {
		name     string
		reward   float64
		expected int
	}{
		{"zero reward", 0, 0},
		{"fractional reward floors", 0.96, 9},
		{"whole reward", 5.0, 50},
		{"rounds down not up", 1.99, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceGain(tt.reward))
		})
	}
}

func TestLevelFromExperience(t *testing.T) {
	assert.Equal(t, 1, LevelFromExperience(0))
	assert.Equal(t, 1, LevelFromExperience(999))
	assert.Equal(t, 2, LevelFromExperience(1000))
	assert.Equal(t, 2, LevelFromExperience(1045))
	assert.Equal(t, 11, LevelFromExperience(10_000))
}

func TestLevelFromExperienceMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 25_000; xp += 137 {
		level := LevelFromExperience(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestRankFromLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{1, "Novice Miner"},
		{4, "Novice Miner"},
		{5, "Skilled Miner"},
		{9, "Skilled Miner"},
		{10, "Advanced Miner"},
		{15, "Expert Miner"},
		{24, "Expert Miner"},
		{25, "Elite Miner"},
		{49, "Elite Miner"},
		{50, "Cloud Master"},
		{75, "Mining Titan"},
		{100, "Cloud Legend"},
		{250, "Cloud Legend"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RankFromLevel(tt.level), "level %d", tt.level)
	}
}

func TestExperienceToNextLevel(t *testing.T) {
	assert.Equal(t, 1000, ExperienceToNextLevel(0))
	assert.Equal(t, 1, ExperienceToNextLevel(999))
	assert.Equal(t, 1000, ExperienceToNextLevel(1000))
	assert.Equal(t, 955, ExperienceToNextLevel(1045))
}

func TestExperienceProgress(t *testing.T) {
	assert.InDelta(t, 0, ExperienceProgress(0), 1e-9)
	assert.InDelta(t, 50, ExperienceProgress(500), 1e-9)
	assert.InDelta(t, 4.5, ExperienceProgress(1045), 1e-9)
}
