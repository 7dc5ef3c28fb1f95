package response

import (
	"time"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
)

// Agent represents an organizer account in API responses
type Agent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AgentFromModel converts a model.Agent to a response Agent
func AgentFromModel(a *model.Agent) Agent {
	return Agent{
		ID:       string(a.ID),
		Username: a.Username,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Agent        Agent  `json:"agent"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from an auth session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Agent:        AgentFromModel(&s.Agent),
		SessionToken: s.Token,
	}
}

// Session represents a session in API responses
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date,omitempty"`
	Location   string    `json:"location,omitempty"`
	CourtCount int       `json:"court_count"`
	CourtNames []string  `json:"court_names,omitempty"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:         string(s.ID),
		Name:       s.Name,
		Date:       s.Date,
		Location:   s.Location,
		CourtCount: s.CourtCount,
		CourtNames: s.CourtNames,
		Slug:       string(s.Slug),
		CreatedAt:  s.CreatedAt,
	}
}

// SessionListing is a session plus roster size
type SessionListing struct {
	Session
	PlayerCount int `json:"player_count"`
}

// SessionListingFromModel converts a model.SessionListing
func SessionListingFromModel(l model.SessionListing) SessionListing {
	return SessionListing{
		Session:     SessionFromModel(&l.Session),
		PlayerCount: l.PlayerCount,
	}
}

// Player represents a roster player in API responses
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	GamesPlayed int    `json:"games_played"`
	IsWaiting   bool   `json:"is_waiting"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		Name:        p.Name,
		Category:    string(p.Category),
		GamesPlayed: p.GamesPlayed,
		IsWaiting:   p.IsWaiting,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// SavedPlayer represents a saved-pool entry in API responses
type SavedPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// SavedPlayerFromModel converts a model.SavedPlayer
func SavedPlayerFromModel(sp *model.SavedPlayer) SavedPlayer {
	return SavedPlayer{
		ID:       string(sp.ID),
		Name:     sp.Name,
		Category: string(sp.Category),
	}
}

// Match represents an active match in API responses
type Match struct {
	ID        string    `json:"id"`
	CourtID   int       `json:"court_id"`
	CourtName string    `json:"court_name"`
	Team1     [2]string `json:"team1"`
	Team2     [2]string `json:"team2"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchFromModel converts a model.Match; the session provides court display
// names
func MatchFromModel(m *model.Match, session *model.Session) Match {
	courtName := ""
	if session != nil {
		courtName = session.CourtName(m.CourtID)
	}
	return Match{
		ID:        string(m.ID),
		CourtID:   m.CourtID,
		CourtName: courtName,
		Team1:     [2]string{string(m.Team1[0]), string(m.Team1[1])},
		Team2:     [2]string{string(m.Team2[0]), string(m.Team2[1])},
		CreatedAt: m.CreatedAt,
	}
}

// MatchesFromModel converts a slice of model matches
func MatchesFromModel(matches []*model.Match, session *model.Session) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = MatchFromModel(m, session)
	}
	return out
}

// GenerateResponse is the response after generating matches
type GenerateResponse struct {
	Created []Match `json:"created"`
}

// CompleteResponse is the response after completing a match
type CompleteResponse struct {
	UpdatedPlayers []Player `json:"updated_players"`
}

// ImportResponse is the response after importing saved players
type ImportResponse struct {
	Imported int `json:"imported"`
}

// Booking is the public view of a session reached through its slug link.
// The full roster ships alongside the matches so a viewer can map the
// player ids in each team without authenticated follow-up calls.
type Booking struct {
	Session Session  `json:"session"`
	Players []Player `json:"players"`
	Matches []Match  `json:"matches"`
}
