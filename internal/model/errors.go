package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Agent errors
	ErrAgentNotFound = errors.New("agent not found")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotSessionOwner   = errors.New("agent does not own this session")
	ErrInvalidCourtCount = errors.New("court count must be at least 1")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrDuplicatePlayerName = errors.New("player name already taken in this session")
	ErrPlayerInMatch       = errors.New("player is in an active match")
	ErrInvalidCategory     = errors.New("invalid skill category")
	ErrPlayerAlreadySaved  = errors.New("player already saved to pool")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrNoIdleCourts  = errors.New("all courts are occupied")
	ErrCourtOccupied = errors.New("court already has an active match")
)

// InsufficientPlayersError is returned by match generation when fewer than
// four players are eligible. It carries the eligible count for the caller.
type InsufficientPlayersError struct {
	Eligible int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("need at least 4 waiting players, have %d", e.Eligible)
}

// IsInsufficientPlayers reports whether err is an InsufficientPlayersError
// and returns the eligible count if so
func IsInsufficientPlayers(err error) (int, bool) {
	var ipe *InsufficientPlayersError
	if errors.As(err, &ipe) {
		return ipe.Eligible, true
	}
	return 0, false
}
