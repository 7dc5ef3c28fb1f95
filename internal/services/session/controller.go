package session

import (
	"context"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/clock"
	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/random"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage"
)

const (
	// SlugLength is the length of generated shareable slugs
	SlugLength = 8
	// SlugAlphabet is the characters used in slugs (avoid confusing chars)
	SlugAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	// SessionIDLength is the length of generated session ids
	SessionIDLength = 12
	// SessionIDAlphabet is the characters used in session ids
	SessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CreateParams holds the operator-supplied fields for a new session
type CreateParams struct {
	Name       string
	Date       string
	Location   string
	CourtCount int
}

// Controller manages session lifecycle and court configuration
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new session Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// Create creates a new session owned by the given agent, with a unique
// shareable slug for player self-registration
func (c *Controller) Create(ctx context.Context, agentID model.AgentID, params CreateParams) (*model.Session, error) {
	courtCount := params.CourtCount
	if courtCount == 0 {
		courtCount = model.DefaultCourtCount
	}
	if courtCount < 1 {
		return nil, model.ErrInvalidCourtCount
	}

	// Generate a slug nobody else holds
	var slug model.SessionSlug
	for {
		slug = model.SessionSlug(c.random.String(SlugLength, SlugAlphabet))
		exists, err := c.storage.SlugExists(ctx, slug)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:         model.SessionID(c.random.String(SessionIDLength, SessionIDAlphabet)),
		AgentID:    agentID,
		Name:       params.Name,
		Date:       params.Date,
		Location:   params.Location,
		CourtCount: courtCount,
		Slug:       slug,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Get retrieves a session, verifying the requesting agent owns it
func (c *Controller) Get(ctx context.Context, id model.SessionID, requestingAgent model.AgentID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.AgentID != requestingAgent {
		return nil, model.ErrNotSessionOwner
	}
	return session, nil
}

// GetBySlug retrieves a session through its shareable slug. No ownership
// check: the slug is the public booking entry point.
func (c *Controller) GetBySlug(ctx context.Context, slug model.SessionSlug) (*model.Session, error) {
	return c.storage.GetSessionBySlug(ctx, slug)
}

// List returns the agent's sessions, newest first, with roster sizes
func (c *Controller) List(ctx context.Context, agentID model.AgentID) ([]model.SessionListing, error) {
	sessions, err := c.storage.ListSessionsByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	listings := make([]model.SessionListing, 0, len(sessions))
	for _, s := range sessions {
		players, err := c.storage.ListPlayersBySession(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, model.SessionListing{
			Session:     *s,
			PlayerCount: len(players),
		})
	}

	return listings, nil
}

// UpdateCourts changes the session's court count and display names.
// The count may shrink below an occupied court; the occupying match keeps
// its court id and the engine simply plans around courts it no longer knows.
func (c *Controller) UpdateCourts(ctx context.Context, id model.SessionID, requestingAgent model.AgentID, courtCount int, courtNames []string) (*model.Session, error) {
	session, err := c.Get(ctx, id, requestingAgent)
	if err != nil {
		return nil, err
	}

	if courtCount < 1 {
		return nil, model.ErrInvalidCourtCount
	}

	updated := *session
	updated.CourtCount = courtCount
	if courtNames != nil {
		names := make([]string, courtCount)
		copy(names, courtNames)
		updated.CourtNames = names
	}
	updated.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a session and cascades to its players and active matches
func (c *Controller) Delete(ctx context.Context, id model.SessionID, requestingAgent model.AgentID) error {
	if _, err := c.Get(ctx, id, requestingAgent); err != nil {
		return err
	}

	if err := c.storage.DeleteMatchesBySession(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeletePlayersBySession(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteSession(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, agentID model.AgentID, params CreateParams) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID, requestingAgent model.AgentID) (*model.Session, error)
	GetBySlug(ctx context.Context, slug model.SessionSlug) (*model.Session, error)
	List(ctx context.Context, agentID model.AgentID) ([]model.SessionListing, error)
	UpdateCourts(ctx context.Context, id model.SessionID, requestingAgent model.AgentID, courtCount int, courtNames []string) (*model.Session, error)
	Delete(ctx context.Context, id model.SessionID, requestingAgent model.AgentID) error
}

var _ ControllerInterface = (*Controller)(nil)
