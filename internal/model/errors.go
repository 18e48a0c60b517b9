package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Round errors
	ErrRoundNotFound     = errors.New("round not found")
	ErrRoundFinished     = errors.New("round is already finished")
	ErrNotInRound        = errors.New("player is not in this round")
	ErrNoPlayers         = errors.New("round requires at least one player")
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")

	// Word list errors
	ErrWordListNotLoaded = errors.New("word list not loaded")
)
