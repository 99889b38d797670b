// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/codr1/Matchday/internal/api"
	"github.com/codr1/Matchday/internal/api/auth"
	"github.com/codr1/Matchday/internal/api/matches"
	"github.com/codr1/Matchday/internal/api/officials"
	"github.com/codr1/Matchday/internal/api/reports"
	"github.com/codr1/Matchday/internal/api/teams"
	"github.com/codr1/Matchday/internal/config"
)

func newServer(cfg *config.Config, verifier api.TokenVerifier) *http.Server {
	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      newHandler(cfg, verifier),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newHandler(cfg *config.Config, verifier api.TokenVerifier) http.Handler {
	router := http.NewServeMux()

	// Register routes
	registerRoutes(router, api.WithAuth(verifier))

	// Setup middleware chain
	return api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithCORS(cfg.CORS.AllowedOrigins),
	)
}

func registerRoutes(mux *http.ServeMux, requireAuth api.Middleware) {
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// User routes
	mux.HandleFunc("POST /api/v1/users/register", auth.HandleRegister)
	mux.HandleFunc("POST /api/v1/users/login", auth.HandleLogin)
	mux.Handle("GET /api/v1/users/me", protected(auth.HandleMe))

	// Team and player routes
	mux.Handle("GET /api/v1/teams", protected(teams.HandleListTeams))
	mux.Handle("POST /api/v1/teams", protected(teams.HandleCreateTeam))
	mux.Handle("GET /api/v1/teams/{id}", protected(teams.HandleGetTeam))
	mux.Handle("PUT /api/v1/teams/{id}", protected(teams.HandleUpdateTeam))
	mux.Handle("DELETE /api/v1/teams/{id}", protected(teams.HandleDeleteTeam))
	mux.Handle("GET /api/v1/players", protected(teams.HandleListPlayers))
	mux.Handle("POST /api/v1/players", protected(teams.HandleCreatePlayer))
	mux.Handle("GET /api/v1/players/{id}", protected(teams.HandleGetPlayer))
	mux.Handle("DELETE /api/v1/players/{id}", protected(teams.HandleDeletePlayer))

	// Referee and venue routes
	mux.Handle("GET /api/v1/referees", protected(officials.HandleListReferees))
	mux.Handle("POST /api/v1/referees", protected(officials.HandleCreateReferee))
	mux.Handle("DELETE /api/v1/referees/{id}", protected(officials.HandleDeleteReferee))
	mux.Handle("GET /api/v1/venues", protected(officials.HandleListVenues))
	mux.Handle("POST /api/v1/venues", protected(officials.HandleCreateVenue))
	mux.Handle("DELETE /api/v1/venues/{id}", protected(officials.HandleDeleteVenue))

	// Match routes
	mux.Handle("GET /api/v1/matches", protected(matches.HandleListMatches))
	mux.Handle("POST /api/v1/matches", protected(matches.HandleCreateMatch))
	mux.Handle("POST /api/v1/matches/schedule", protected(matches.HandleGenerateSchedule))
	mux.Handle("GET /api/v1/matches/{id}", protected(matches.HandleGetMatch))
	mux.Handle("GET /api/v1/matches/{id}/players", protected(matches.HandleListMatchPlayers))
	mux.Handle("DELETE /api/v1/matches/{id}", protected(matches.HandleDeleteMatch))

	// Goal and card routes
	mux.Handle("GET /api/v1/goals", protected(matches.HandleListGoals))
	mux.Handle("POST /api/v1/goals", protected(matches.HandleCreateGoal))
	mux.Handle("DELETE /api/v1/goals/{id}", protected(matches.HandleDeleteGoal))
	mux.Handle("GET /api/v1/cards", protected(matches.HandleListCards))
	mux.Handle("POST /api/v1/cards", protected(matches.HandleCreateCard))
	mux.Handle("DELETE /api/v1/cards/{id}", protected(matches.HandleDeleteCard))

	// Report routes
	mux.Handle("GET /api/v1/standings", protected(reports.HandleStandings))
	mux.Handle("GET /api/v1/dashboard/stats", protected(reports.HandleDashboardStats))
	mux.Handle("GET /api/v1/reports/{type}", protected(reports.HandleReport))
}
