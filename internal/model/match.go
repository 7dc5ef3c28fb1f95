package model

import "time"

// MatchID uniquely identifies an active match
type MatchID string

// Match is a doubles game occupying one court. A match exists only while its
// court is occupied; completion deletes the record rather than archiving it.
type Match struct {
	ID        MatchID
	SessionID SessionID
	CourtID   int // in [1, session.CourtCount]
	Team1     [2]PlayerID
	Team2     [2]PlayerID
	CreatedAt time.Time
}

// PlayerIDs returns the four players in the match, team1 first
func (m *Match) PlayerIDs() []PlayerID {
	return []PlayerID{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

// HasPlayer reports whether the given player is on either team
func (m *Match) HasPlayer(id PlayerID) bool {
	for _, p := range m.PlayerIDs() {
		if p == id {
			return true
		}
	}
	return false
}

// OccupiedCourts returns the set of court ids referenced by the given matches
func OccupiedCourts(matches []*Match) map[int]bool {
	occupied := make(map[int]bool, len(matches))
	for _, m := range matches {
		occupied[m.CourtID] = true
	}
	return occupied
}

// PlayingPlayers returns the set of player ids referenced by the given matches
func PlayingPlayers(matches []*Match) map[PlayerID]bool {
	playing := make(map[PlayerID]bool, len(matches)*4)
	for _, m := range matches {
		for _, p := range m.PlayerIDs() {
			playing[p] = true
		}
	}
	return playing
}
