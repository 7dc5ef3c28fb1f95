package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// List operations mirror the ordering of the redis backend: players and
// matches in creation order, sessions newest first, saved players by name.
type Storage struct {
	mu sync.RWMutex

	agents        map[model.AgentID]*model.Agent
	credentials   map[string]*model.AgentCredentials // keyed by username
	sessions      map[model.SessionID]*model.Session
	slugIndex     map[model.SessionSlug]model.SessionID
	sessionsOrder map[model.AgentID][]model.SessionID

	players      map[model.PlayerID]*model.Player
	playersOrder map[model.SessionID][]model.PlayerID

	matches      map[model.MatchID]*model.Match
	matchesOrder map[model.SessionID][]model.MatchID

	savedPlayers map[model.AgentID][]*model.SavedPlayer
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		agents:        make(map[model.AgentID]*model.Agent),
		credentials:   make(map[string]*model.AgentCredentials),
		sessions:      make(map[model.SessionID]*model.Session),
		slugIndex:     make(map[model.SessionSlug]model.SessionID),
		sessionsOrder: make(map[model.AgentID][]model.SessionID),
		players:       make(map[model.PlayerID]*model.Player),
		playersOrder:  make(map[model.SessionID][]model.PlayerID),
		matches:       make(map[model.MatchID]*model.Match),
		matchesOrder:  make(map[model.SessionID][]model.MatchID),
		savedPlayers:  make(map[model.AgentID][]*model.SavedPlayer),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Agent operations

func (s *Storage) SaveAgent(ctx context.Context, agent *model.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[agent.ID] = agent
	return nil
}

func (s *Storage) GetAgent(ctx context.Context, id model.AgentID) (*model.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agent, ok := s.agents[id]
	if !ok {
		return nil, model.ErrAgentNotFound
	}
	return agent, nil
}

func (s *Storage) SaveAgentCredentials(ctx context.Context, creds *model.AgentCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[creds.Username] = creds
	return nil
}

func (s *Storage) GetAgentCredentialsByUsername(ctx context.Context, username string) (*model.AgentCredentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.credentials[username]
	if !ok {
		return nil, model.ErrAgentNotFound
	}
	return creds, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; !exists {
		s.sessionsOrder[session.AgentID] = append(s.sessionsOrder[session.AgentID], session.ID)
	}
	s.sessions[session.ID] = session
	s.slugIndex[session.Slug] = session.ID
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) GetSessionBySlug(ctx context.Context, slug model.SessionSlug) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.slugIndex[slug]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) ListSessionsByAgent(ctx context.Context, agentID model.AgentID) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := s.sessionsOrder[agentID]
	// Newest first
	sessions := make([]*model.Session, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		if session, ok := s.sessions[order[i]]; ok {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	delete(s.sessions, id)
	delete(s.slugIndex, session.Slug)
	order := s.sessionsOrder[session.AgentID]
	for i, sid := range order {
		if sid == id {
			s.sessionsOrder[session.AgentID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) SlugExists(ctx context.Context, slug model.SessionSlug) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slugIndex[slug]
	return ok, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Names are unique within a session
	for _, pid := range s.playersOrder[player.SessionID] {
		existing, ok := s.players[pid]
		if ok && existing.Name == player.Name && existing.ID != player.ID {
			return model.ErrDuplicatePlayerName
		}
	}
	if _, exists := s.players[player.ID]; !exists {
		s.playersOrder[player.SessionID] = append(s.playersOrder[player.SessionID], player.ID)
	}
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayersBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := s.playersOrder[sessionID]
	players := make([]*model.Player, 0, len(order))
	for _, pid := range order {
		if player, ok := s.players[pid]; ok {
			players = append(players, player)
		}
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return nil
	}
	delete(s.players, id)
	order := s.playersOrder[player.SessionID]
	for i, pid := range order {
		if pid == id {
			s.playersOrder[player.SessionID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) DeletePlayersBySession(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pid := range s.playersOrder[sessionID] {
		delete(s.players, pid)
	}
	delete(s.playersOrder, sessionID)
	return nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.matches[match.ID]; !exists {
		s.matchesOrder[match.SessionID] = append(s.matchesOrder[match.SessionID], match.ID)
	}
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatchesBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := s.matchesOrder[sessionID]
	matches := make([]*model.Match, 0, len(order))
	for _, mid := range order {
		if match, ok := s.matches[mid]; ok {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[id]
	if !ok {
		return nil
	}
	delete(s.matches, id)
	order := s.matchesOrder[match.SessionID]
	for i, mid := range order {
		if mid == id {
			s.matchesOrder[match.SessionID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) DeleteMatchesBySession(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, mid := range s.matchesOrder[sessionID] {
		delete(s.matches, mid)
	}
	delete(s.matchesOrder, sessionID)
	return nil
}

// Saved-player pool operations

func (s *Storage) SaveSavedPlayer(ctx context.Context, sp *model.SavedPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.savedPlayers[sp.AgentID] {
		if existing.Name == sp.Name {
			return model.ErrPlayerAlreadySaved
		}
	}
	s.savedPlayers[sp.AgentID] = append(s.savedPlayers[sp.AgentID], sp)
	return nil
}

func (s *Storage) ListSavedPlayersByAgent(ctx context.Context, agentID model.AgentID) ([]*model.SavedPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := s.savedPlayers[agentID]
	result := make([]*model.SavedPlayer, len(pool))
	copy(result, pool)
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
