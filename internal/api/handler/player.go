package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/middleware"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/request"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/response"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/roster"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/session"
)

// PlayerHandler handles roster and saved-pool endpoints
type PlayerHandler struct {
	rosterService     *roster.Service
	sessionController *session.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service, sessionController *session.Controller) *PlayerHandler {
	return &PlayerHandler{
		rosterService:     rosterService,
		sessionController: sessionController,
	}
}

// Add handles POST /api/v1/sessions/{id}/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.sessionController.Get(r.Context(), sessionID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	p, err := h.rosterService.AddPlayer(r.Context(), sessionID, req.Name, model.SkillCategory(req.Category))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// List handles GET /api/v1/sessions/{id}/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.sessionController.Get(r.Context(), sessionID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.rosterService.ListPlayers(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Remove handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	playerID := model.PlayerID(mux.Vars(r)["id"])

	if err := h.authorizePlayer(r, playerID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.rosterService.RemovePlayer(r.Context(), playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetWaiting handles PATCH /api/v1/players/{id}/waiting
func (h *PlayerHandler) SetWaiting(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	playerID := model.PlayerID(mux.Vars(r)["id"])

	if err := h.authorizePlayer(r, playerID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	var req request.SetWaitingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.rosterService.SetWaiting(r.Context(), playerID, req.IsWaiting)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// SaveToPool handles POST /api/v1/pool
func (h *PlayerHandler) SaveToPool(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())

	var req request.SavePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	sp, err := h.rosterService.SaveToPool(r.Context(), agent.ID, req.Name, model.SkillCategory(req.Category))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SavedPlayerFromModel(sp))
}

// ListPool handles GET /api/v1/pool
func (h *PlayerHandler) ListPool(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())

	saved, err := h.rosterService.ListPool(r.Context(), agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.SavedPlayer, len(saved))
	for i, sp := range saved {
		out[i] = response.SavedPlayerFromModel(sp)
	}

	response.JSON(w, http.StatusOK, out)
}

// ImportFromPool handles POST /api/v1/sessions/{id}/players/import
func (h *PlayerHandler) ImportFromPool(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.sessionController.Get(r.Context(), sessionID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	imported, err := h.rosterService.ImportFromPool(r.Context(), sessionID, agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ImportResponse{Imported: imported})
}

// authorizePlayer checks that the player's session belongs to the agent
func (h *PlayerHandler) authorizePlayer(r *http.Request, playerID model.PlayerID, agentID model.AgentID) error {
	p, err := h.rosterService.GetPlayer(r.Context(), playerID)
	if err != nil {
		return err
	}
	_, err = h.sessionController.Get(r.Context(), p.SessionID, agentID)
	return err
}
