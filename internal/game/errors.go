package game

import "errors"

var (
	// ErrPlayerNotFound is returned when an action names an unknown player
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuplicateName is returned when a joining name is already taken
	ErrDuplicateName = errors.New("player name already exists")

	// ErrInvalidAmount is returned for non-positive bet amounts
	ErrInvalidAmount = errors.New("bet amount must be positive")

	// ErrInsufficientBalance is returned for an over-bet when the debug
	// top-up policy is disabled
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNoActivePlayers is returned when a showdown has nobody to score
	ErrNoActivePlayers = errors.New("no active players to compare")
)
