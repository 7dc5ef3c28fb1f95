package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/request"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/response"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/match"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/roster"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/session"
)

// BookingHandler handles the public self-registration endpoints reached
// through a session's shareable slug link. No authentication required.
type BookingHandler struct {
	sessionController *session.Controller
	rosterService     *roster.Service
	matchController   *match.Controller
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(sessionController *session.Controller, rosterService *roster.Service, matchController *match.Controller) *BookingHandler {
	return &BookingHandler{
		sessionController: sessionController,
		rosterService:     rosterService,
		matchController:   matchController,
	}
}

// Get handles GET /api/v1/bookings/{slug}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := model.SessionSlug(mux.Vars(r)["slug"])

	s, err := h.sessionController.GetBySlug(r.Context(), slug)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.rosterService.ListPlayers(r.Context(), s.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	matches, err := h.matchController.ListActive(r.Context(), s.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Booking{
		Session: response.SessionFromModel(s),
		Players: response.PlayersFromModel(players),
		Matches: response.MatchesFromModel(matches, s),
	})
}

// Book handles POST /api/v1/bookings/{slug}/players
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	slug := model.SessionSlug(mux.Vars(r)["slug"])

	s, err := h.sessionController.GetBySlug(r.Context(), slug)
	if err != nil {
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

	p, err := h.rosterService.AddPlayer(r.Context(), s.ID, req.Name, model.SkillCategory(req.Category))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}
