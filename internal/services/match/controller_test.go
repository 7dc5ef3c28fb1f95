package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/mocks"
	"github.com/pradeepsathyan/Court-Badminton/internal/metrics"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/rotation"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage/memory"
	"github.com/pradeepsathyan/Court-Badminton/internal/testutil"
)

var errStorageDown = errors.New("storage down")

// failingStorage wraps a Storage and fails the Nth call to SaveMatch or
// SavePlayer. A zero count means the method never fails.
type failingStorage struct {
	storage.Storage
	failSaveMatchOn  int
	failSavePlayerOn int
	saveMatchCalls   int
	savePlayerCalls  int
}

func (f *failingStorage) SaveMatch(ctx context.Context, m *model.Match) error {
	f.saveMatchCalls++
	if f.saveMatchCalls == f.failSaveMatchOn {
		return errStorageDown
	}
	return f.Storage.SaveMatch(ctx, m)
}

func (f *failingStorage) SavePlayer(ctx context.Context, p *model.Player) error {
	f.savePlayerCalls++
	if f.savePlayerCalls == f.failSavePlayerOn {
		return errStorageDown
	}
	return f.Storage.SavePlayer(ctx, p)
}

func (s *ControllerSuite) controllerWith(store storage.Storage) *Controller {
	return NewController(store, rotation.New(s.random), s.clock, s.random, s.metrics, testutil.NopLogger())
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	metrics    *metrics.Mock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.metrics = metrics.NewMock()
	rotationService := rotation.New(s.random)
	s.controller = NewController(s.storage, rotationService, s.clock, s.random, s.metrics, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) createSession(courtCount int) *model.Session {
	session := &model.Session{
		ID:         "session-1",
		AgentID:    "agent-1",
		Name:       "Tuesday social",
		CourtCount: courtCount,
		Slug:       "tuesdays",
		CreatedAt:  s.clock.Now(),
		UpdatedAt:  s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	return session
}

func (s *ControllerSuite) addPlayer(id string, games int, waiting bool) *model.Player {
	p := &model.Player{
		ID:          model.PlayerID(id),
		SessionID:   "session-1",
		Name:        id,
		GamesPlayed: games,
		IsWaiting:   waiting,
		CreatedAt:   s.clock.Now(),
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
	return p
}

func (s *ControllerSuite) addWaitingQuartet() {
	for _, id := range []string{"a", "b", "c", "d"} {
		s.addPlayer(id, 0, true)
	}
}

// GenerateMatches tests

func (s *ControllerSuite) TestGenerateCreatesMatchAndBenchesPlayers() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.random.QueueString("MATCH0000001")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	s.Require().Len(created, 1)
	s.Equal(model.MatchID("MATCH0000001"), created[0].ID)
	s.Equal(1, created[0].CourtID)
	s.Equal([2]model.PlayerID{"a", "b"}, created[0].Team1)
	s.Equal([2]model.PlayerID{"c", "d"}, created[0].Team2)
	s.Equal(s.clock.Now(), created[0].CreatedAt)

	// All four players are off the waiting pool
	for _, id := range []string{"a", "b", "c", "d"} {
		p, err := s.storage.GetPlayer(s.ctx, model.PlayerID(id))
		s.Require().NoError(err)
		s.False(p.IsWaiting)
		s.Equal(0, p.GamesPlayed)
	}

	s.Equal(1, s.metrics.MatchesGenerated())
}

func (s *ControllerSuite) TestGenerateFillsAllIdleCourts() {
	s.createSession(2)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		s.addPlayer(id, 0, true)
	}
	s.random.QueueString("MATCH0000001", "MATCH0000002")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	s.Require().Len(created, 2)
	s.Equal(1, created[0].CourtID)
	s.Equal(2, created[1].CourtID)
	s.Equal(2, s.metrics.MatchesGenerated())
}

func (s *ControllerSuite) TestGenerateInsufficientPlayers() {
	s.createSession(1)
	s.addPlayer("a", 0, true)
	s.addPlayer("b", 0, true)
	s.addPlayer("c", 0, true)

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")

	s.Nil(created)
	eligible, ok := model.IsInsufficientPlayers(err)
	s.Require().True(ok)
	s.Equal(3, eligible)
	s.Equal(1, s.metrics.GenerateRejected("insufficient_players"))
}

func (s *ControllerSuite) TestGenerateNoIdleCourts() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.random.QueueString("MATCH0000001")

	_, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	// All four on court now; four fresh players join
	for _, id := range []string{"e", "f", "g", "h"} {
		s.addPlayer(id, 0, true)
	}

	_, err = s.controller.GenerateMatches(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrNoIdleCourts)
}

func (s *ControllerSuite) TestGenerateSkipsSittingOutPlayers() {
	s.createSession(1)
	s.addPlayer("a", 0, true)
	s.addPlayer("b", 0, false)
	s.addPlayer("c", 0, true)
	s.addPlayer("d", 0, true)
	s.addPlayer("e", 0, true)
	s.random.QueueString("MATCH0000001")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	s.Require().Len(created, 1)
	s.Equal([2]model.PlayerID{"a", "c"}, created[0].Team1)
	s.Equal([2]model.PlayerID{"d", "e"}, created[0].Team2)

	// b stays benched
	b, err := s.storage.GetPlayer(s.ctx, "b")
	s.Require().NoError(err)
	s.False(b.IsWaiting)
}

func (s *ControllerSuite) TestGenerateUnknownSession() {
	_, err := s.controller.GenerateMatches(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestGeneratePartialFailureKeepsEarlierMatch() {
	s.createSession(2)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		s.addPlayer(id, 0, true)
	}
	s.random.QueueString("MATCH0000001", "MATCH0000002")

	store := &failingStorage{Storage: s.storage, failSaveMatchOn: 2}
	controller := s.controllerWith(store)

	created, err := controller.GenerateMatches(s.ctx, "session-1")
	s.ErrorIs(err, errStorageDown)

	// The first court's match survives the failure on the second
	s.Require().Len(created, 1)
	s.Equal(1, created[0].CourtID)

	persisted, err := s.storage.GetMatch(s.ctx, "MATCH0000001")
	s.Require().NoError(err)
	s.Equal([2]model.PlayerID{"a", "b"}, persisted.Team1)
	s.Equal([2]model.PlayerID{"c", "d"}, persisted.Team2)

	_, err = s.storage.GetMatch(s.ctx, "MATCH0000002")
	s.ErrorIs(err, model.ErrMatchNotFound)

	// Its four players are benched; the untouched quartet still waits,
	// so a re-run can fill court 2
	for _, id := range []string{"a", "b", "c", "d"} {
		p, err := s.storage.GetPlayer(s.ctx, model.PlayerID(id))
		s.Require().NoError(err)
		s.False(p.IsWaiting)
	}
	for _, id := range []string{"e", "f", "g", "h"} {
		p, err := s.storage.GetPlayer(s.ctx, model.PlayerID(id))
		s.Require().NoError(err)
		s.True(p.IsWaiting)
	}

	s.Equal(0, s.metrics.MatchesGenerated())
}

// CompleteMatch tests

func (s *ControllerSuite) TestCompleteIncrementsGamesAndRestoresWaiting() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.random.QueueString("MATCH0000001")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	updated, err := s.controller.CompleteMatch(s.ctx, created[0].ID)
	s.Require().NoError(err)

	s.Require().Len(updated, 4)
	for _, p := range updated {
		s.Equal(1, p.GamesPlayed)
		s.True(p.IsWaiting)
	}

	// The match record is gone
	_, err = s.storage.GetMatch(s.ctx, created[0].ID)
	s.ErrorIs(err, model.ErrMatchNotFound)

	s.Equal(1, s.metrics.MatchesCompleted())
}

func (s *ControllerSuite) TestCompleteTwiceFailsSecondTime() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.random.QueueString("MATCH0000001")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.controller.CompleteMatch(s.ctx, created[0].ID)
	s.Require().NoError(err)

	// Repeat completion must not double-count games
	_, err = s.controller.CompleteMatch(s.ctx, created[0].ID)
	s.ErrorIs(err, model.ErrMatchNotFound)

	p, err := s.storage.GetPlayer(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal(1, p.GamesPlayed)
}

func (s *ControllerSuite) TestCompletePartialFailureKeepsMatchRecord() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.random.QueueString("MATCH0000001")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)

	store := &failingStorage{Storage: s.storage, failSavePlayerOn: 3}
	controller := s.controllerWith(store)

	updated, err := controller.CompleteMatch(s.ctx, created[0].ID)
	s.ErrorIs(err, errStorageDown)

	// The first two players were written back before the failure
	s.Require().Len(updated, 2)
	for _, id := range []string{"a", "b"} {
		p, err := s.storage.GetPlayer(s.ctx, model.PlayerID(id))
		s.Require().NoError(err)
		s.Equal(1, p.GamesPlayed)
		s.True(p.IsWaiting)
	}
	for _, id := range []string{"c", "d"} {
		p, err := s.storage.GetPlayer(s.ctx, model.PlayerID(id))
		s.Require().NoError(err)
		s.Equal(0, p.GamesPlayed)
		s.False(p.IsWaiting)
	}

	// The record stays so the caller can see the match and reconcile
	_, err = s.storage.GetMatch(s.ctx, created[0].ID)
	s.Require().NoError(err)
	s.Equal(0, s.metrics.MatchesCompleted())
}

func (s *ControllerSuite) TestCompleteUnknownMatch() {
	_, err := s.controller.CompleteMatch(s.ctx, "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestGenerateCompleteRoundTripFavoursRestedPlayers() {
	s.createSession(1)
	s.addWaitingQuartet()
	s.addPlayer("e", 0, true)
	s.addPlayer("f", 0, true)
	s.random.QueueString("MATCH0000001", "MATCH0000002")

	created, err := s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().Len(created, 1)

	_, err = s.controller.CompleteMatch(s.ctx, created[0].ID)
	s.Require().NoError(err)

	// e and f have played 0 games, a..d have 1; the rested pair goes first
	created, err = s.controller.GenerateMatches(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal([2]model.PlayerID{"e", "f"}, created[0].Team1)
	s.Equal([2]model.PlayerID{"a", "b"}, created[0].Team2)
}

// ListActive tests

func (s *ControllerSuite) TestListActiveEmpty() {
	s.createSession(1)

	matches, err := s.controller.ListActive(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *ControllerSuite) TestListActiveUnknownSession() {
	_, err := s.controller.ListActive(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
