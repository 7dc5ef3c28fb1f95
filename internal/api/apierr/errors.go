package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotSessionOwner     = "NOT_SESSION_OWNER"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeMatchNotFound       = "MATCH_NOT_FOUND"
	CodeAgentNotFound       = "AGENT_NOT_FOUND"
	CodeDuplicatePlayerName = "DUPLICATE_PLAYER_NAME"
	CodePlayerInMatch       = "PLAYER_IN_MATCH"
	CodePlayerAlreadySaved  = "PLAYER_ALREADY_SAVED"
	CodeInvalidCourtCount   = "INVALID_COURT_COUNT"
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeNoIdleCourts        = "NO_IDLE_COURTS"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Insufficient-players carries the eligible count
	if eligible, ok := model.IsInsufficientPlayers(err); ok {
		msg := fmt.Sprintf("Need at least 4 waiting players, have %d", eligible)
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, msg}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAgentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAgentNotFound, "Agent not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrNotSessionOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotSessionOwner, "Only the session owner can perform this action"}}
	case errors.Is(err, model.ErrDuplicatePlayerName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayerName, "A player with this name is already registered"}}
	case errors.Is(err, model.ErrPlayerInMatch):
		return &httpError{http.StatusConflict, APIError{CodePlayerInMatch, "Player is in an active match"}}
	case errors.Is(err, model.ErrPlayerAlreadySaved):
		return &httpError{http.StatusConflict, APIError{CodePlayerAlreadySaved, "Player is already in the saved pool"}}
	case errors.Is(err, model.ErrInvalidCourtCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCourtCount, "Court count must be at least 1"}}
	case errors.Is(err, model.ErrInvalidCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCategory, "Category must be Beginner, Intermediate or Expert"}}
	case errors.Is(err, model.ErrNoIdleCourts):
		return &httpError{http.StatusConflict, APIError{CodeNoIdleCourts, "All courts are occupied"}}
	case errors.Is(err, model.ErrCourtOccupied):
		return &httpError{http.StatusConflict, APIError{CodeNoIdleCourts, "Court is occupied"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
