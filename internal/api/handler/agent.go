package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/middleware"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/request"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/response"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
)

// AgentHandler handles organizer account endpoints
type AgentHandler struct {
	authService *auth.Service
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(authService *auth.Service) *AgentHandler {
	return &AgentHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/agents/register
func (h *AgentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/agents/login
func (h *AgentHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/agents/logout
func (h *AgentHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session != nil {
		h.authService.InvalidateSession(session.Token)
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/agents/me
func (h *AgentHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	response.JSON(w, http.StatusOK, response.AgentFromModel(agent))
}
