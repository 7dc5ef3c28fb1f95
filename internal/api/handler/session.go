package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/middleware"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/request"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/response"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/session"
)

// SessionHandler handles session management endpoints
type SessionHandler struct {
	sessionController *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionController *session.Controller) *SessionHandler {
	return &SessionHandler{
		sessionController: sessionController,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	s, err := h.sessionController.Create(r.Context(), agent.ID, session.CreateParams{
		Name:       req.Name,
		Date:       req.Date,
		Location:   req.Location,
		CourtCount: req.CourtCount,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())

	listings, err := h.sessionController.List(r.Context(), agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.SessionListing, len(listings))
	for i, l := range listings {
		out[i] = response.SessionListingFromModel(l)
	}

	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	id := model.SessionID(mux.Vars(r)["id"])

	s, err := h.sessionController.Get(r.Context(), id, agent.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// UpdateCourts handles PATCH /api/v1/sessions/{id}/courts
func (h *SessionHandler) UpdateCourts(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.UpdateCourtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	s, err := h.sessionController.UpdateCourts(r.Context(), id, agent.ID, req.CourtCount, req.CourtNames)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	agent := middleware.MustGetAgent(r.Context())
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.sessionController.Delete(r.Context(), id, agent.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
