package model

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies a session
type SessionID string

// SessionSlug is the short shareable code players use to self-register
type SessionSlug string

// DefaultCourtCount is the court count for newly created sessions
const DefaultCourtCount = 1

// Session represents one organized meetup: a block of court time owned by an
// agent, with its own roster and active matches
type Session struct {
	ID         SessionID
	AgentID    AgentID
	Name       string
	Date       string // free-form, e.g. "2026-08-28"
	Location   string
	CourtCount int      // courts are the integers [1, CourtCount]
	CourtNames []string // optional display names, index i names court i+1
	Slug       SessionSlug
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CourtName returns the display name for a court id, falling back to the
// court number when no custom name is configured
func (s *Session) CourtName(courtID int) string {
	idx := courtID - 1
	if idx >= 0 && idx < len(s.CourtNames) && s.CourtNames[idx] != "" {
		return s.CourtNames[idx]
	}
	return fmt.Sprintf("Court %d", courtID)
}

// SessionListing is a session plus roster size, for agent dashboards
type SessionListing struct {
	Session     Session
	PlayerCount int
}
