package storage

import (
	"context"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Agent operations
	SaveAgent(ctx context.Context, agent *model.Agent) error
	GetAgent(ctx context.Context, id model.AgentID) (*model.Agent, error)
	SaveAgentCredentials(ctx context.Context, creds *model.AgentCredentials) error
	GetAgentCredentialsByUsername(ctx context.Context, username string) (*model.AgentCredentials, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetSessionBySlug(ctx context.Context, slug model.SessionSlug) (*model.Session, error)
	ListSessionsByAgent(ctx context.Context, agentID model.AgentID) ([]*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SlugExists(ctx context.Context, slug model.SessionSlug) (bool, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayersBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	DeletePlayersBySession(ctx context.Context, sessionID model.SessionID) error

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatchesBySession(ctx context.Context, sessionID model.SessionID) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	DeleteMatchesBySession(ctx context.Context, sessionID model.SessionID) error

	// Saved-player pool operations
	SaveSavedPlayer(ctx context.Context, sp *model.SavedPlayer) error
	ListSavedPlayersByAgent(ctx context.Context, agentID model.AgentID) ([]*model.SavedPlayer, error)
}
