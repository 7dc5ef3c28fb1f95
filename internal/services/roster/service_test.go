package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/mocks"
	"github.com/pradeepsathyan/Court-Badminton/internal/metrics"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	metrics *metrics.Mock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.metrics = metrics.NewMock()
	s.service = New(s.storage, s.clock, s.metrics)
	s.ctx = context.Background()

	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.Session{
		ID:         "session-1",
		AgentID:    "agent-1",
		Name:       "Tuesday social",
		CourtCount: 2,
		Slug:       "tuesdays",
	}))
}

// AddPlayer tests

func (s *ServiceSuite) TestAddPlayerDefaultsToWaiting() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", model.SkillIntermediate)
	s.Require().NoError(err)

	s.NotEmpty(p.ID)
	s.Equal("Sam", p.Name)
	s.Equal(model.SkillIntermediate, p.Category)
	s.Equal(0, p.GamesPlayed)
	s.True(p.IsWaiting)
	s.Equal(s.clock.Now(), p.CreatedAt)
}

func (s *ServiceSuite) TestAddPlayerAllowsEmptyCategory() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)
	s.Empty(p.Category)
}

func (s *ServiceSuite) TestAddPlayerRejectsUnknownCategory() {
	_, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "Grandmaster")
	s.ErrorIs(err, model.ErrInvalidCategory)
}

func (s *ServiceSuite) TestAddPlayerRejectsDuplicateName() {
	_, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	_, err = s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.ErrorIs(err, model.ErrDuplicatePlayerName)
}

func (s *ServiceSuite) TestAddPlayerUnknownSession() {
	_, err := s.service.AddPlayer(s.ctx, "missing", "Sam", "")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestAddPlayerCountsMetric() {
	_, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)
	_, err = s.service.AddPlayer(s.ctx, "session-1", "Alex", "")
	s.Require().NoError(err)

	s.Equal(2, s.metrics.PlayersAdded())
}

// ListPlayers tests

func (s *ServiceSuite) TestListPlayersJoinOrder() {
	for _, name := range []string{"Sam", "Alex", "Kim"} {
		_, err := s.service.AddPlayer(s.ctx, "session-1", name, "")
		s.Require().NoError(err)
	}

	players, err := s.service.ListPlayers(s.ctx, "session-1")
	s.Require().NoError(err)

	s.Require().Len(players, 3)
	s.Equal("Sam", players[0].Name)
	s.Equal("Alex", players[1].Name)
	s.Equal("Kim", players[2].Name)
}

// RemovePlayer tests

func (s *ServiceSuite) TestRemovePlayer() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemovePlayer(s.ctx, p.ID))

	_, err = s.storage.GetPlayer(s.ctx, p.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestRemovePlayerInMatchRejected() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{
		ID: "m1", SessionID: "session-1", CourtID: 1,
		Team1: [2]model.PlayerID{p.ID, "x"},
		Team2: [2]model.PlayerID{"y", "z"},
	}))

	err = s.service.RemovePlayer(s.ctx, p.ID)
	s.ErrorIs(err, model.ErrPlayerInMatch)
}

// SetWaiting tests

func (s *ServiceSuite) TestSetWaitingSitsPlayerOut() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	updated, err := s.service.SetWaiting(s.ctx, p.ID, false)
	s.Require().NoError(err)
	s.False(updated.IsWaiting)
	s.Equal(0, updated.GamesPlayed)

	back, err := s.service.SetWaiting(s.ctx, p.ID, true)
	s.Require().NoError(err)
	s.True(back.IsWaiting)
}

func (s *ServiceSuite) TestSetWaitingInMatchRejected() {
	p, err := s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{
		ID: "m1", SessionID: "session-1", CourtID: 1,
		Team1: [2]model.PlayerID{p.ID, "x"},
		Team2: [2]model.PlayerID{"y", "z"},
	}))

	_, err = s.service.SetWaiting(s.ctx, p.ID, true)
	s.ErrorIs(err, model.ErrPlayerInMatch)
}

// Saved pool tests

func (s *ServiceSuite) TestSaveToPoolAndList() {
	_, err := s.service.SaveToPool(s.ctx, "agent-1", "Sam", model.SkillExpert)
	s.Require().NoError(err)
	_, err = s.service.SaveToPool(s.ctx, "agent-1", "Alex", "")
	s.Require().NoError(err)

	pool, err := s.service.ListPool(s.ctx, "agent-1")
	s.Require().NoError(err)

	// Sorted by name
	s.Require().Len(pool, 2)
	s.Equal("Alex", pool[0].Name)
	s.Equal("Sam", pool[1].Name)
}

func (s *ServiceSuite) TestSaveToPoolRejectsDuplicate() {
	_, err := s.service.SaveToPool(s.ctx, "agent-1", "Sam", "")
	s.Require().NoError(err)

	_, err = s.service.SaveToPool(s.ctx, "agent-1", "Sam", "")
	s.ErrorIs(err, model.ErrPlayerAlreadySaved)
}

func (s *ServiceSuite) TestPoolIsScopedPerAgent() {
	_, err := s.service.SaveToPool(s.ctx, "agent-1", "Sam", "")
	s.Require().NoError(err)

	pool, err := s.service.ListPool(s.ctx, "agent-2")
	s.Require().NoError(err)
	s.Empty(pool)
}

// ImportFromPool tests

func (s *ServiceSuite) TestImportFromPoolSkipsExistingNames() {
	_, err := s.service.SaveToPool(s.ctx, "agent-1", "Sam", model.SkillBeginner)
	s.Require().NoError(err)
	_, err = s.service.SaveToPool(s.ctx, "agent-1", "Alex", "")
	s.Require().NoError(err)

	// Sam is already on the roster
	_, err = s.service.AddPlayer(s.ctx, "session-1", "Sam", "")
	s.Require().NoError(err)

	imported, err := s.service.ImportFromPool(s.ctx, "session-1", "agent-1")
	s.Require().NoError(err)
	s.Equal(1, imported)

	players, err := s.service.ListPlayers(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestImportFromPoolEmptyPool() {
	imported, err := s.service.ImportFromPool(s.ctx, "session-1", "agent-1")
	s.Require().NoError(err)
	s.Equal(0, imported)
}
