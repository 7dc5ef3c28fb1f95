package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Agent operations

func (s *Storage) SaveAgent(ctx context.Context, agent *model.Agent) error {
	data, err := json.Marshal(agent)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, agentKey(agent.ID), data, 0).Err()
}

func (s *Storage) GetAgent(ctx context.Context, id model.AgentID) (*model.Agent, error) {
	data, err := s.client.Get(ctx, agentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAgentNotFound
		}
		return nil, err
	}

	var agent model.Agent
	if err := json.Unmarshal(data, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *Storage) SaveAgentCredentials(ctx context.Context, creds *model.AgentCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, credentialsKey(creds.Username), data, 0).Err()
}

func (s *Storage) GetAgentCredentialsByUsername(ctx context.Context, username string) (*model.AgentCredentials, error) {
	data, err := s.client.Get(ctx, credentialsKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAgentNotFound
		}
		return nil, err
	}

	var creds model.AgentCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.ID)
	indexKey := sessionsForAgentIndexKey(session.AgentID)

	// Pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, slugIndexKey(session.Slug), string(session.ID), 0)
	pipe.SAdd(ctx, indexKey, key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) GetSessionBySlug(ctx context.Context, slug model.SessionSlug) (*model.Session, error) {
	idStr, err := s.client.Get(ctx, slugIndexKey(slug)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	return s.GetSession(ctx, model.SessionID(idStr))
}

func (s *Storage) ListSessionsByAgent(ctx context.Context, agentID model.AgentID) ([]*model.Session, error) {
	sessionKeys, err := s.client.SMembers(ctx, sessionsForAgentIndexKey(agentID)).Result()
	if err != nil {
		return nil, err
	}

	if len(sessionKeys) == 0 {
		return []*model.Session{}, nil
	}

	values, err := s.client.MGet(ctx, sessionKeys...).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.Session, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Deleted but still indexed
		}
		var session model.Session
		if err := json.Unmarshal([]byte(val.(string)), &session); err != nil {
			continue // Skip invalid data
		}
		sessions = append(sessions, &session)
	}

	// Newest first; set membership carries no order
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
		}
		return sessions[i].ID > sessions[j].ID
	})

	return sessions, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	key := sessionKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Del(ctx, slugIndexKey(session.Slug))
	pipe.SRem(ctx, sessionsForAgentIndexKey(session.AgentID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) SlugExists(ctx context.Context, slug model.SessionSlug) (bool, error) {
	exists, err := s.client.Exists(ctx, slugIndexKey(slug)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	// Names are unique within a session; the name index enforces it
	nameKey := playerNameIndexKey(player.SessionID, player.Name)
	existingID, err := s.client.Get(ctx, nameKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if err == nil && existingID != string(player.ID) {
		return model.ErrDuplicatePlayerName
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, nameKey, string(player.ID), 0)
	pipe.SAdd(ctx, playersForSessionIndexKey(player.SessionID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayersBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	playerKeys, err := s.client.SMembers(ctx, playersForSessionIndexKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	if len(playerKeys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, playerKeys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}

	// Oldest first, matching roster display order
	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})

	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	key := playerKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Del(ctx, playerNameIndexKey(player.SessionID, player.Name))
	pipe.SRem(ctx, playersForSessionIndexKey(player.SessionID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayersBySession(ctx context.Context, sessionID model.SessionID) error {
	players, err := s.ListPlayersBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, player := range players {
		pipe.Del(ctx, playerKey(player.ID))
		pipe.Del(ctx, playerNameIndexKey(sessionID, player.Name))
	}
	pipe.Del(ctx, playersForSessionIndexKey(sessionID))
	_, err = pipe.Exec(ctx)
	return err
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	key := matchKey(match.ID)
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, matchesForSessionIndexKey(match.SessionID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) ListMatchesBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error) {
	matchKeys, err := s.client.SMembers(ctx, matchesForSessionIndexKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	if len(matchKeys) == 0 {
		return []*model.Match{}, nil
	}

	values, err := s.client.MGet(ctx, matchKeys...).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.Match, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var match model.Match
		if err := json.Unmarshal([]byte(val.(string)), &match); err != nil {
			continue
		}
		matches = append(matches, &match)
	}

	// Court order keeps the display stable
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CourtID < matches[j].CourtID
	})

	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			return nil
		}
		return err
	}

	key := matchKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, matchesForSessionIndexKey(match.SessionID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteMatchesBySession(ctx context.Context, sessionID model.SessionID) error {
	indexKey := matchesForSessionIndexKey(sessionID)
	matchKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range matchKeys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Saved-player pool operations

func (s *Storage) SaveSavedPlayer(ctx context.Context, sp *model.SavedPlayer) error {
	data, err := json.Marshal(sp)
	if err != nil {
		return err
	}

	// HSetNX enforces one pool entry per name per agent
	added, err := s.client.HSetNX(ctx, savedPlayersKey(sp.AgentID), sp.Name, data).Result()
	if err != nil {
		return err
	}
	if !added {
		return model.ErrPlayerAlreadySaved
	}
	return nil
}

func (s *Storage) ListSavedPlayersByAgent(ctx context.Context, agentID model.AgentID) ([]*model.SavedPlayer, error) {
	values, err := s.client.HVals(ctx, savedPlayersKey(agentID)).Result()
	if err != nil {
		return nil, err
	}

	pool := make([]*model.SavedPlayer, 0, len(values))
	for _, val := range values {
		var sp model.SavedPlayer
		if err := json.Unmarshal([]byte(val), &sp); err != nil {
			continue
		}
		pool = append(pool, &sp)
	}

	sort.Slice(pool, func(i, j int) bool {
		return pool[i].Name < pool[j].Name
	})

	return pool, nil
}
