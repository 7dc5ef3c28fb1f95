package model

import "time"

// AgentID uniquely identifies an organizer account
type AgentID string

// Agent represents a meetup organizer
type Agent struct {
	ID        AgentID
	Username  string
	CreatedAt time.Time
}

// AgentCredentials holds an agent's authentication data
// Stored separately so the password hash never travels with the agent record
type AgentCredentials struct {
	AgentID      AgentID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
