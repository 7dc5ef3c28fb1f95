package match

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/clock"
	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/random"
	"github.com/pradeepsathyan/Court-Badminton/internal/metrics"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/rotation"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
)

const (
	// MatchIDLength is the length of generated match ids
	MatchIDLength = 12
	// MatchIDAlphabet is the characters used in match ids
	MatchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller governs the match lifecycle: creation through the rotation
// engine and completion with its player side effects. Writes within one
// invocation are issued sequentially; there is no rollback. On a mid-loop
// failure the caller reloads state and re-invokes.
type Controller struct {
	storage  storage.Storage
	rotation *rotation.Service
	clock    clock.Clock
	random   random.Random
	metrics  metrics.Metrics
	logger   *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	rotation *rotation.Service,
	clock clock.Clock,
	random random.Random,
	metrics metrics.Metrics,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		rotation: rotation,
		clock:    clock,
		random:   random,
		metrics:  metrics,
		logger:   logger,
	}
}

// Get returns a single active match
func (c *Controller) Get(ctx context.Context, matchID model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, matchID)
}

// ListActive returns the session's active matches
func (c *Controller) ListActive(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error) {
	if _, err := c.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return c.storage.ListMatchesBySession(ctx, sessionID)
}

// GenerateMatches fills the session's idle courts from the waiting pool.
//
// State is read once, the rotation engine plans the full set of new matches,
// and each planned match is persisted court by court: the match record first,
// then waiting=false for its four players, before the next court is touched.
// Partial success is allowed: matches persisted before a storage failure
// remain valid and are returned alongside the error.
func (c *Controller) GenerateMatches(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	players, err := c.storage.ListPlayersBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	active, err := c.storage.ListMatchesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	plan, err := c.rotation.Plan(players, active, session.CourtCount)
	if err != nil {
		if errors.Is(err, model.ErrNoIdleCourts) {
			c.metrics.IncGenerateRejected("no_idle_courts")
		} else if _, ok := model.IsInsufficientPlayers(err); ok {
			c.metrics.IncGenerateRejected("insufficient_players")
		}
		return nil, err
	}

	byID := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	now := c.clock.Now()
	created := make([]*model.Match, 0, len(plan))

	for _, a := range plan {
		m := &model.Match{
			ID:        model.MatchID(c.random.String(MatchIDLength, MatchIDAlphabet)),
			SessionID: sessionID,
			CourtID:   a.CourtID,
			Team1:     a.Team1,
			Team2:     a.Team2,
			CreatedAt: now,
		}

		if err := c.storage.SaveMatch(ctx, m); err != nil {
			c.logger.Error("failed to save match",
				slog.String("session_id", string(sessionID)),
				slog.Int("court_id", a.CourtID),
				slog.String("error", err.Error()),
			)
			return created, err
		}
		created = append(created, m)

		for _, pid := range m.PlayerIDs() {
			placed := *byID[pid]
			placed.IsWaiting = false
			if err := c.storage.SavePlayer(ctx, &placed); err != nil {
				c.logger.Error("failed to mark player as playing",
					slog.String("player_id", string(pid)),
					slog.String("match_id", string(m.ID)),
					slog.String("error", err.Error()),
				)
				return created, err
			}
		}
	}

	c.metrics.IncMatchesGenerated(len(created))
	c.logger.Info("matches generated",
		slog.String("session_id", string(sessionID)),
		slog.Int("count", len(created)),
		slog.Int("court_count", session.CourtCount),
	)

	return created, nil
}

// CompleteMatch ends an active match: each of its four players gains one game
// played and returns to the waiting pool, then the match record is deleted,
// freeing its court. There is no cancel transition; completion is the only
// way a match ends.
//
// The existence check doubles as the idempotence guard: once the record is
// gone a repeat invocation fails with ErrMatchNotFound before any player is
// touched, so games-played can never double-count.
func (c *Controller) CompleteMatch(ctx context.Context, matchID model.MatchID) ([]*model.Player, error) {
	m, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	updated := make([]*model.Player, 0, rotation.PlayersPerMatch)
	for _, pid := range m.PlayerIDs() {
		p, err := c.storage.GetPlayer(ctx, pid)
		if err != nil {
			return updated, err
		}

		finished := *p
		finished.GamesPlayed++
		finished.IsWaiting = true
		if err := c.storage.SavePlayer(ctx, &finished); err != nil {
			c.logger.Error("failed to update player after match",
				slog.String("player_id", string(pid)),
				slog.String("match_id", string(matchID)),
				slog.String("error", err.Error()),
			)
			return updated, err
		}
		updated = append(updated, &finished)
	}

	if err := c.storage.DeleteMatch(ctx, matchID); err != nil {
		return updated, err
	}

	c.metrics.IncMatchesCompleted()
	c.logger.Info("match completed",
		slog.String("match_id", string(matchID)),
		slog.String("session_id", string(m.SessionID)),
		slog.Int("court_id", m.CourtID),
	)

	return updated, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Get(ctx context.Context, matchID model.MatchID) (*model.Match, error)
	ListActive(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error)
	GenerateMatches(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error)
	CompleteMatch(ctx context.Context, matchID model.MatchID) ([]*model.Player, error)
}

var _ ControllerInterface = (*Controller)(nil)
