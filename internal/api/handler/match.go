package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/middleware"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/response"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/match"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/session"
)

// MatchHandler handles match lifecycle endpoints
type MatchHandler struct {
	matchController   *match.Controller
	sessionController *session.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController *match.Controller, sessionController *session.Controller) *MatchHandler {
	return &MatchHandler{
		matchController:   matchController,
		sessionController: sessionController,
	}
}

// List handles GET /api/v1/sessions/{id}/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	s, err := h.sessionController.Get(r.Context(), sessionID, agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	matches, err := h.matchController.ListActive(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchesFromModel(matches, s))
}

// Generate handles POST /api/v1/sessions/{id}/matches/generate
func (h *MatchHandler) Generate(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	s, err := h.sessionController.Get(r.Context(), sessionID, agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.matchController.GenerateMatches(r.Context(), sessionID)
	if err != nil {
		// Matches persisted before a storage failure remain valid; report
		// the error only when nothing was created
		if len(created) == 0 {
			WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusCreated, response.GenerateResponse{
		Created: response.MatchesFromModel(created, s),
	})
}

// Complete handles POST /api/v1/matches/{id}/complete
func (h *MatchHandler) Complete(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	matchID := model.MatchID(mux.Vars(r)["id"])

	m, err := h.matchController.Get(r.Context(), matchID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.sessionController.Get(r.Context(), m.SessionID, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.matchController.CompleteMatch(r.Context(), matchID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompleteResponse{
		UpdatedPlayers: response.PlayersFromModel(updated),
	})
}
