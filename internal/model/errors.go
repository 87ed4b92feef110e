package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Miner state errors
	ErrMinerStateNotFound = errors.New("miner state not found")
	ErrInsufficientEnergy = errors.New("insufficient energy to mine")

	// Achievement errors
	ErrAchievementsNotFound = errors.New("achievement collection not found")

	// Upgrade errors
	ErrUpgradesNotFound   = errors.New("upgrade collection not found")
	ErrUpgradeNotFound    = errors.New("upgrade not found")
	ErrUpgradeMaxed       = errors.New("upgrade already owned or at max level")
	ErrInsufficientFunds  = errors.New("insufficient balance for purchase")
	ErrAutoMiningLocked   = errors.New("auto mining has not been unlocked")
)
