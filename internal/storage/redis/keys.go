package redis

import (
	"fmt"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "courtbdm"

// Key generation functions for each entity type

// agentKey returns the Redis key for an Agent
func agentKey(id model.AgentID) string {
	return fmt.Sprintf("%s:agent:%s", keyPrefix, id)
}

// credentialsKey returns the Redis key for an agent's credentials
func credentialsKey(username string) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, username)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// slugIndexKey returns the Redis key for the slug -> session_id index
func slugIndexKey(slug model.SessionSlug) string {
	return fmt.Sprintf("%s:idx:slug:%s", keyPrefix, slug)
}

// sessionsForAgentIndexKey returns the Redis key for the SET of an agent's sessions
func sessionsForAgentIndexKey(agentID model.AgentID) string {
	return fmt.Sprintf("%s:idx:sessions_for_agent:%s", keyPrefix, agentID)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForSessionIndexKey returns the Redis key for the SET of a session's players
func playersForSessionIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:players_for_session:%s", keyPrefix, sessionID)
}

// playerNameIndexKey returns the Redis key for the session-scoped name -> player_id index
func playerNameIndexKey(sessionID model.SessionID, name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s:%s", keyPrefix, sessionID, name)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesForSessionIndexKey returns the Redis key for the SET of a session's matches
func matchesForSessionIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:matches_for_session:%s", keyPrefix, sessionID)
}

// savedPlayersKey returns the Redis key for the HASH of an agent's saved pool,
// fielded by player name
func savedPlayersKey(agentID model.AgentID) string {
	return fmt.Sprintf("%s:saved_players:%s", keyPrefix, agentID)
}
