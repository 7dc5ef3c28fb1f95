package request

// RegisterRequest is the request body for registering an agent
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Name       string `json:"name"`
	Date       string `json:"date,omitempty"`
	Location   string `json:"location,omitempty"`
	CourtCount int    `json:"court_count,omitempty"`
}

// UpdateCourtsRequest is the request body for updating a session's courts
type UpdateCourtsRequest struct {
	CourtCount int      `json:"court_count"`
	CourtNames []string `json:"court_names,omitempty"`
}

// AddPlayerRequest is the request body for registering a player, either by
// the organizer or through the public booking link
type AddPlayerRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// SetWaitingRequest is the request body for toggling a player's availability
type SetWaitingRequest struct {
	IsWaiting bool `json:"is_waiting"`
}

// SavePlayerRequest is the request body for adding a player to the saved pool
type SavePlayerRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
