package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/codr1/Matchday/internal/api/auth"
	"github.com/codr1/Matchday/internal/api/matches"
	"github.com/codr1/Matchday/internal/api/officials"
	"github.com/codr1/Matchday/internal/api/reports"
	"github.com/codr1/Matchday/internal/api/teams"
	"github.com/codr1/Matchday/internal/cache"
	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/ratelimit"
	"github.com/codr1/Matchday/internal/testutil"
)

func TestRoutes(t *testing.T) {
	database := testutil.NewTestDB(t)
	clock := clockwork.NewFakeClock()
	store := cache.NewMemory(clock)
	limiter := ratelimit.New(&ratelimit.Config{MaxAttempts: 5, Lockout: time.Minute, MaxIPPerHour: 100, Clock: clock})
	t.Cleanup(limiter.Close)
	tokens := auth.NewTokenManager("route-secret", time.Hour, clock)

	auth.InitHandlers(database.Queries, tokens, limiter, false)
	teams.InitHandlers(database.Queries, store, time.Minute)
	officials.InitHandlers(database.Queries, store, time.Minute)
	matches.InitHandlers(database, leagues.NewLedger(database))
	reports.InitHandlers(database.Queries, clock)

	cfg := &config.Config{}
	handler := newHandler(cfg, tokens)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	if recorder.Code != http.StatusOK || recorder.Body.String() != "OK" {
		t.Fatalf("health: %d %q", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated teams: %d", recorder.Code)
	}

	for _, path := range []string{"/api/v1/users/register", "/api/v1/users/login"} {
		recorder = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"username":"coach","password":"secret"}`))
		handler.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusCreated && recorder.Code != http.StatusOK {
			t.Fatalf("%s: %d body: %s", path, recorder.Code, recorder.Body.String())
		}
		if path != "/api/v1/users/login" {
			continue
		}
		var login struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(recorder.Body).Decode(&login); err != nil {
			t.Fatalf("decode login: %v", err)
		}

		recorder = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{"name":"Lions","city":"Leeds"}`))
		req.Header.Set("Authorization", "Bearer "+login.Token)
		handler.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("authenticated create team: %d body: %s", recorder.Code, recorder.Body.String())
		}

		recorder = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/1", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		handler.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("get team through router: %d", recorder.Code)
		}

		recorder = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/standings?format=csv&token="+login.Token, nil)
		handler.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("csv download with query token: %d body: %s", recorder.Code, recorder.Body.String())
		}
	}
}
