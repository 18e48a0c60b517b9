package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordrush/wordrush/internal/api/handler"
	"github.com/wordrush/wordrush/internal/api/middleware"
	"github.com/wordrush/wordrush/internal/services/auth"
	"github.com/wordrush/wordrush/internal/services/round"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	RoundController *round.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	roundHandler := handler.NewRoundHandler(cfg.RoundController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Round state is readable without a session so rounds can be
	// spectated; the handler enriches the view for participants
	api.Handle("/rounds/{id}", optionalAuthMiddleware(http.HandlerFunc(roundHandler.Get))).Methods(http.MethodGet)

	// Mutating round routes require auth
	rounds := api.PathPrefix("/rounds").Subrouter()
	rounds.Use(authMiddleware)
	rounds.HandleFunc("", roundHandler.Create).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/submit", roundHandler.Submit).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/finish", roundHandler.Finish).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
