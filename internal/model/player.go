package model

import "time"

// PlayerID uniquely identifies a player within the system
type PlayerID string

// SkillCategory is a player's self-reported skill level.
// Informational only; match generation never reads it.
type SkillCategory string

const (
	SkillBeginner     SkillCategory = "Beginner"
	SkillIntermediate SkillCategory = "Intermediate"
	SkillExpert       SkillCategory = "Expert"
)

// ValidSkillCategory reports whether c is one of the known categories
func ValidSkillCategory(c SkillCategory) bool {
	switch c {
	case SkillBeginner, SkillIntermediate, SkillExpert:
		return true
	}
	return false
}

// Player represents a participant in one session's roster
type Player struct {
	ID          PlayerID
	SessionID   SessionID
	Name        string // unique within the session
	Category    SkillCategory
	GamesPlayed int  // monotonically non-decreasing
	IsWaiting   bool // eligible for the next match; false while on court or sitting out
	CreatedAt   time.Time
}

// SavedPlayer is an agent-scoped roster template, decoupled from any session.
// Used only to pre-populate new players.
type SavedPlayer struct {
	ID        PlayerID
	AgentID   AgentID
	Name      string // unique per agent
	Category  SkillCategory
	CreatedAt time.Time
}
