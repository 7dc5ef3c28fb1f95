package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/handler"
	"github.com/pradeepsathyan/Court-Badminton/internal/api/middleware"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/match"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/roster"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
	RosterService     *roster.Service
	MatchController   *match.Controller
	// MetricsHandler serves GET /metrics when set
	MetricsHandler http.Handler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	agentHandler := handler.NewAgentHandler(cfg.AuthService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	playerHandler := handler.NewPlayerHandler(cfg.RosterService, cfg.SessionController)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.SessionController)
	bookingHandler := handler.NewBookingHandler(cfg.SessionController, cfg.RosterService, cfg.MatchController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Agent routes (no auth required for registering/logging in)
	api.HandleFunc("/agents/register", agentHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/agents/login", agentHandler.Login).Methods(http.MethodPost)

	// Protected agent routes
	agentProtected := api.PathPrefix("/agents").Subrouter()
	agentProtected.Use(authMiddleware)
	agentProtected.HandleFunc("/logout", agentHandler.Logout).Methods(http.MethodPost)
	agentProtected.HandleFunc("/me", agentHandler.GetMe).Methods(http.MethodGet)

	// Public booking routes, reached through the shareable slug link
	api.HandleFunc("/bookings/{slug}", bookingHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{slug}/players", bookingHandler.Book).Methods(http.MethodPost)

	// Session routes (all require auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("", sessionHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/courts", sessionHandler.UpdateCourts).Methods(http.MethodPatch)

	// Roster routes scoped to a session
	sessions.HandleFunc("/{id}/players", playerHandler.Add).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/players", playerHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/players/import", playerHandler.ImportFromPool).Methods(http.MethodPost)

	// Match routes scoped to a session
	sessions.HandleFunc("/{id}/matches", matchHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/matches/generate", matchHandler.Generate).Methods(http.MethodPost)

	// Player routes addressed by player id
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/{id}", playerHandler.Remove).Methods(http.MethodDelete)
	players.HandleFunc("/{id}/waiting", playerHandler.SetWaiting).Methods(http.MethodPatch)

	// Match completion addressed by match id
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("/{id}/complete", matchHandler.Complete).Methods(http.MethodPost)

	// Saved-player pool (agent scoped)
	pool := api.PathPrefix("/pool").Subrouter()
	pool.Use(authMiddleware)
	pool.HandleFunc("", playerHandler.SaveToPool).Methods(http.MethodPost)
	pool.HandleFunc("", playerHandler.ListPool).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus metrics (no auth)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
