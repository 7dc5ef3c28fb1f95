package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pradeepsathyan/Court-Badminton/internal/api/apierr"
	"github.com/pradeepsathyan/Court-Badminton/internal/model"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
)

type contextKey string

const (
	agentContextKey   contextKey = "agent"
	sessionContextKey contextKey = "session"
)

// Auth creates authentication middleware
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			// Add session and agent to context
			ctx := r.Context()
			ctx = context.WithValue(ctx, sessionContextKey, session)
			ctx = context.WithValue(ctx, agentContextKey, &session.Agent)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetAgent returns the authenticated agent from the request context
func GetAgent(ctx context.Context) *model.Agent {
	agent, _ := ctx.Value(agentContextKey).(*model.Agent)
	return agent
}

// GetSession returns the auth session from the request context
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// MustGetAgent returns the authenticated agent or panics
func MustGetAgent(ctx context.Context) *model.Agent {
	agent := GetAgent(ctx)
	if agent == nil {
		panic("no agent in context - auth middleware not applied?")
	}
	return agent
}
