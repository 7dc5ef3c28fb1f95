package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/clock"
	"github.com/pradeepsathyan/Court-Badminton/internal/metrics"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
)

// Service manages session rosters and the agent-scoped saved-player pool
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	metrics metrics.Metrics
}

// New creates a new roster Service
func New(storage storage.Storage, clock clock.Clock, metrics metrics.Metrics) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		metrics: metrics,
	}
}

// AddPlayer adds a player to a session's roster. New players default to
// waiting with zero games played. Display names are unique per session.
func (s *Service) AddPlayer(ctx context.Context, sessionID model.SessionID, name string, category model.SkillCategory) (*model.Player, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if category != "" && !model.ValidSkillCategory(category) {
		return nil, model.ErrInvalidCategory
	}

	player := &model.Player{
		ID:          model.PlayerID(uuid.NewString()),
		SessionID:   sessionID,
		Name:        name,
		Category:    category,
		GamesPlayed: 0,
		IsWaiting:   true,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.metrics.IncPlayersAdded()
	return player, nil
}

// ListPlayers returns the session's roster in join order
func (s *Service) ListPlayers(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.storage.ListPlayersBySession(ctx, sessionID)
}

// GetPlayer returns a single player
func (s *Service) GetPlayer(ctx context.Context, playerID model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, playerID)
}

// RemovePlayer deletes a player from the roster. A player inside an active
// match cannot be deleted; the match would be left with a dangling reference.
func (s *Service) RemovePlayer(ctx context.Context, playerID model.PlayerID) error {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	active, err := s.storage.ListMatchesBySession(ctx, player.SessionID)
	if err != nil {
		return err
	}
	for _, m := range active {
		if m.HasPlayer(playerID) {
			return model.ErrPlayerInMatch
		}
	}

	return s.storage.DeletePlayer(ctx, playerID)
}

// SetWaiting toggles a player in or out of the waiting pool without touching
// games played. Sitting out a player who is mid-match is rejected; their flag
// is owned by the match lifecycle until completion.
func (s *Service) SetWaiting(ctx context.Context, playerID model.PlayerID, waiting bool) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	active, err := s.storage.ListMatchesBySession(ctx, player.SessionID)
	if err != nil {
		return nil, err
	}
	for _, m := range active {
		if m.HasPlayer(playerID) {
			return nil, model.ErrPlayerInMatch
		}
	}

	updated := *player
	updated.IsWaiting = waiting
	if err := s.storage.SavePlayer(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SaveToPool stores a name/category template in the agent's saved pool
func (s *Service) SaveToPool(ctx context.Context, agentID model.AgentID, name string, category model.SkillCategory) (*model.SavedPlayer, error) {
	if category != "" && !model.ValidSkillCategory(category) {
		return nil, model.ErrInvalidCategory
	}

	sp := &model.SavedPlayer{
		ID:        model.PlayerID(uuid.NewString()),
		AgentID:   agentID,
		Name:      name,
		Category:  category,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSavedPlayer(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// ListPool returns the agent's saved pool sorted by name
func (s *Service) ListPool(ctx context.Context, agentID model.AgentID) ([]*model.SavedPlayer, error) {
	return s.storage.ListSavedPlayersByAgent(ctx, agentID)
}

// ImportFromPool adds every saved player not already on the session's roster
// (matched by name) and returns how many were added
func (s *Service) ImportFromPool(ctx context.Context, sessionID model.SessionID, agentID model.AgentID) (int, error) {
	pool, err := s.storage.ListSavedPlayersByAgent(ctx, agentID)
	if err != nil {
		return 0, err
	}

	existing, err := s.ListPlayers(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[p.Name] = true
	}

	imported := 0
	for _, sp := range pool {
		if taken[sp.Name] {
			continue
		}
		if _, err := s.AddPlayer(ctx, sessionID, sp.Name, sp.Category); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}
