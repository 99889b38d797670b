package auth

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/codr1/Matchday/internal/api/authz"
	"github.com/codr1/Matchday/internal/ratelimit"
	"github.com/codr1/Matchday/internal/testutil"
)

func setupAuthTest(t *testing.T, maxAttempts int) *TokenManager {
	t.Helper()

	database := testutil.NewTestDB(t)
	clock := clockwork.NewFakeClock()

	prevQueries, prevTokens, prevLimiter := queries, tokens, limiter
	t.Cleanup(func() {
		queries, tokens, limiter = prevQueries, prevTokens, prevLimiter
	})

	queries = database.Queries
	tokens = NewTokenManager("test-secret", time.Hour, clock)
	limiter = ratelimit.New(&ratelimit.Config{
		MaxAttempts:  maxAttempts,
		Lockout:      5 * time.Minute,
		MaxIPPerHour: 100,
		Clock:        clock,
	})
	t.Cleanup(limiter.Close)

	return tokens
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegisterAndLogin(t *testing.T) {
	manager := setupAuthTest(t, 5)

	recorder := postJSON(HandleRegister, "/api/v1/users/register", `{"username":"coach","password":"secret"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("register status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	var user userResponse
	if err := json.NewDecoder(recorder.Body).Decode(&user); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	if user.ID == 0 || user.Username != "coach" || user.Role != "user" {
		t.Fatalf("registered user: %+v", user)
	}
	if strings.Contains(recorder.Body.String(), "password") {
		t.Fatalf("register response leaks password: %s", recorder.Body.String())
	}

	recorder = postJSON(HandleLogin, "/api/v1/users/login", `{"username":"coach","password":"secret"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("login status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	var login loginResponse
	if err := json.NewDecoder(recorder.Body).Decode(&login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	principal, err := manager.Verify(login.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if principal.ID != user.ID {
		t.Fatalf("principal id: %d", principal.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupAuthTest(t, 5)

	postJSON(HandleRegister, "/api/v1/users/register", `{"username":"coach","password":"secret"}`)
	recorder := postJSON(HandleRegister, "/api/v1/users/register", `{"username":"coach","password":"other"}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("status: %d", recorder.Code)
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	setupAuthTest(t, 5)

	recorder := postJSON(HandleRegister, "/api/v1/users/register", `{"username":"  ","password":"secret"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", recorder.Code)
	}
}

func TestRegisterRejectsOversizedPassword(t *testing.T) {
	setupAuthTest(t, 5)

	body := `{"username":"coach","password":"` + strings.Repeat("p", maxPasswordBytes+1) + `"}`
	recorder := postJSON(HandleRegister, "/api/v1/users/register", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "at most 72 bytes") {
		t.Fatalf("error body: %s", recorder.Body.String())
	}

	recorder = postJSON(HandleLogin, "/api/v1/users/login", `{"username":"coach","password":"secret"}`)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("user created despite rejected password: status %d", recorder.Code)
	}
}

func TestLoginAfterWrongPassword(t *testing.T) {
	setupAuthTest(t, 5)

	recorder := postJSON(HandleRegister, "/api/v1/users/register", `{"username":"referee.ana","password":"whistle-2024"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("register status: %d", recorder.Code)
	}

	recorder = postJSON(HandleLogin, "/api/v1/users/login", `{"username":"referee.ana","password":"Whistle-2024"}`)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status: %d", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "token") {
		t.Fatalf("token issued for wrong password: %s", recorder.Body.String())
	}

	recorder = postJSON(HandleLogin, "/api/v1/users/login", `{"username":"referee.ana","password":"whistle-2024"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("correct password status: %d", recorder.Code)
	}
	var login loginResponse
	if err := json.NewDecoder(recorder.Body).Decode(&login); err != nil || login.Token == "" {
		t.Fatalf("login response: %+v err: %v", login, err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	setupAuthTest(t, 5)
	postJSON(HandleRegister, "/api/v1/users/register", `{"username":"coach","password":"secret"}`)

	for _, body := range []string{
		`{"username":"coach","password":"wrong"}`,
		`{"username":"nobody","password":"secret"}`,
	} {
		recorder := postJSON(HandleLogin, "/api/v1/users/login", body)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("body %s: status %d", body, recorder.Code)
		}
	}
}

func TestLoginLockout(t *testing.T) {
	setupAuthTest(t, 2)
	postJSON(HandleRegister, "/api/v1/users/register", `{"username":"coach","password":"secret"}`)

	for i := 0; i < 2; i++ {
		recorder := postJSON(HandleLogin, "/api/v1/users/login", `{"username":"coach","password":"wrong"}`)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status %d", i+1, recorder.Code)
		}
	}

	recorder := postJSON(HandleLogin, "/api/v1/users/login", `{"username":"coach","password":"secret"}`)
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("status: %d", recorder.Code)
	}
	if recorder.Header().Get("Retry-After") != "300" {
		t.Fatalf("retry after: %q", recorder.Header().Get("Retry-After"))
	}
}

func TestMe(t *testing.T) {
	recorder := httptest.NewRecorder()
	HandleMe(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status: %d", recorder.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(authz.ContextWithUser(req.Context(), &authz.AuthUser{ID: 7, Role: authz.RoleUser}))
	recorder = httptest.NewRecorder()
	HandleMe(recorder, req)

	var got principalResponse
	if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 7 || got.Role != authz.RoleUser {
		t.Fatalf("principal: %+v", got)
	}
}
