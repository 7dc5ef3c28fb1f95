package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Agent tests

func (s *StorageSuite) TestSaveAndGetAgent() {
	agent := &model.Agent{
		ID:        "agent-1",
		Username:  "alice",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveAgent(s.ctx, agent)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAgent(s.ctx, "agent-1")
	s.Require().NoError(err)
	s.Equal(agent.ID, retrieved.ID)
	s.Equal(agent.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetAgentNotFound() {
	_, err := s.storage.GetAgent(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAgentNotFound)
}

func (s *StorageSuite) TestSaveAndGetAgentCredentials() {
	creds := &model.AgentCredentials{
		AgentID:      "agent-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveAgentCredentials(s.ctx, creds)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAgentCredentialsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("agent-1", string(retrieved.AgentID))
	s.Equal("hash123", retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetAgentCredentialsNotFound() {
	_, err := s.storage.GetAgentCredentialsByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAgentNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		ID:         "session-1",
		AgentID:    "agent-1",
		Name:       "Tuesday night",
		CourtCount: 2,
		Slug:       "tuesdays",
		CreatedAt:  time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionBySlug() {
	session := &model.Session{ID: "session-1", AgentID: "agent-1", Slug: "tuesdays"}
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSessionBySlug(s.ctx, "tuesdays")
	s.Require().NoError(err)
	s.Equal("session-1", string(retrieved.ID))
}

func (s *StorageSuite) TestGetSessionBySlugNotFound() {
	_, err := s.storage.GetSessionBySlug(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSlugExists() {
	session := &model.Session{ID: "session-1", AgentID: "agent-1", Slug: "tuesdays"}
	_ = s.storage.SaveSession(s.ctx, session)

	exists, err := s.storage.SlugExists(s.ctx, "tuesdays")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.SlugExists(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestListSessionsByAgentNewestFirst() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-1", AgentID: "agent-1", Slug: "first"})
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-2", AgentID: "agent-1", Slug: "second"})
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-3", AgentID: "agent-2", Slug: "other"})

	sessions, err := s.storage.ListSessionsByAgent(s.ctx, "agent-1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal("session-2", string(sessions[0].ID))
	s.Equal("session-1", string(sessions[1].ID))
}

func (s *StorageSuite) TestListSessionsByAgentEmpty() {
	sessions, err := s.storage.ListSessionsByAgent(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestUpdateSessionDoesNotDuplicateListing() {
	session := &model.Session{ID: "session-1", AgentID: "agent-1", Slug: "tuesdays", CourtCount: 1}
	_ = s.storage.SaveSession(s.ctx, session)

	session.CourtCount = 3
	_ = s.storage.SaveSession(s.ctx, session)

	sessions, err := s.storage.ListSessionsByAgent(s.ctx, "agent-1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(3, sessions[0].CourtCount)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{ID: "session-1", AgentID: "agent-1", Slug: "tuesdays"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	exists, err := s.storage.SlugExists(s.ctx, "tuesdays")
	s.Require().NoError(err)
	s.False(exists)

	sessions, err := s.storage.ListSessionsByAgent(s.ctx, "agent-1")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestDeleteSessionMissingIsNoop() {
	err := s.storage.DeleteSession(s.ctx, "nonexistent")
	s.NoError(err)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		SessionID: "session-1",
		Name:      "Alice",
		IsWaiting: true,
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.True(retrieved.IsWaiting)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerDuplicateName() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1", Name: "Alice"})

	err := s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-1", Name: "Alice"})
	s.ErrorIs(err, model.ErrDuplicatePlayerName)
}

func (s *StorageSuite) TestSavePlayerSameNameDifferentSession() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1", Name: "Alice"})

	err := s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-2", Name: "Alice"})
	s.NoError(err)
}

func (s *StorageSuite) TestUpdatePlayerKeepsName() {
	player := &model.Player{ID: "player-1", SessionID: "session-1", Name: "Alice", GamesPlayed: 0}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.GamesPlayed = 1
	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1, retrieved.GamesPlayed)
}

func (s *StorageSuite) TestListPlayersBySessionInsertionOrder() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1", Name: "Sam"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-1", Name: "Alex"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-3", SessionID: "session-2", Name: "Kim"})

	players, err := s.storage.ListPlayersBySession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Sam", players[0].Name)
	s.Equal("Alex", players[1].Name)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1", Name: "Alice"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	// Name is free again
	err = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-1", Name: "Alice"})
	s.NoError(err)
}

func (s *StorageSuite) TestDeletePlayersBySession() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SessionID: "session-1", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SessionID: "session-1", Name: "Bob"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-3", SessionID: "session-2", Name: "Kim"})

	err := s.storage.DeletePlayersBySession(s.ctx, "session-1")
	s.Require().NoError(err)

	players, err := s.storage.ListPlayersBySession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(players)

	// Other sessions untouched
	_, err = s.storage.GetPlayer(s.ctx, "player-3")
	s.NoError(err)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := &model.Match{
		ID:        "match-1",
		SessionID: "session-1",
		CourtID:   1,
		Team1:     [2]model.PlayerID{"a", "b"},
		Team2:     [2]model.PlayerID{"c", "d"},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(match.Team1, retrieved.Team1)
	s.Equal(match.Team2, retrieved.Team2)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestListMatchesBySession() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1", SessionID: "session-1", CourtID: 1})
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-2", SessionID: "session-1", CourtID: 2})
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-3", SessionID: "session-2", CourtID: 1})

	matches, err := s.storage.ListMatchesBySession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(1, matches[0].CourtID)
	s.Equal(2, matches[1].CourtID)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1", SessionID: "session-1", CourtID: 1})

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)

	matches, err := s.storage.ListMatchesBySession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestDeleteMatchMissingIsNoop() {
	err := s.storage.DeleteMatch(s.ctx, "nonexistent")
	s.NoError(err)
}

func (s *StorageSuite) TestDeleteMatchesBySession() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1", SessionID: "session-1", CourtID: 1})
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-2", SessionID: "session-1", CourtID: 2})

	err := s.storage.DeleteMatchesBySession(s.ctx, "session-1")
	s.Require().NoError(err)

	matches, err := s.storage.ListMatchesBySession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(matches)
}

// Saved-player pool tests

func (s *StorageSuite) TestSaveSavedPlayerAndList() {
	_ = s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-1", AgentID: "agent-1", Name: "Sam"})
	_ = s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-2", AgentID: "agent-1", Name: "Alex"})
	_ = s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-3", AgentID: "agent-2", Name: "Kim"})

	pool, err := s.storage.ListSavedPlayersByAgent(s.ctx, "agent-1")
	s.Require().NoError(err)
	s.Require().Len(pool, 2)

	// Sorted by name
	s.Equal("Alex", pool[0].Name)
	s.Equal("Sam", pool[1].Name)
}

func (s *StorageSuite) TestSaveSavedPlayerDuplicateName() {
	_ = s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-1", AgentID: "agent-1", Name: "Sam"})

	err := s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-2", AgentID: "agent-1", Name: "Sam"})
	s.ErrorIs(err, model.ErrPlayerAlreadySaved)
}

func (s *StorageSuite) TestSaveSavedPlayerSameNameDifferentAgent() {
	_ = s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-1", AgentID: "agent-1", Name: "Sam"})

	err := s.storage.SaveSavedPlayer(s.ctx, &model.SavedPlayer{ID: "sp-2", AgentID: "agent-2", Name: "Sam"})
	s.NoError(err)
}

func (s *StorageSuite) TestListSavedPlayersByAgentEmpty() {
	pool, err := s.storage.ListSavedPlayersByAgent(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(pool)
}
