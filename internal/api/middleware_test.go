package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codr1/Matchday/internal/api/authz"
)

type stubVerifier struct {
	token string
}

func (s stubVerifier) Verify(token string) (*authz.AuthUser, error) {
	if token != s.token {
		return nil, errors.New("bad token")
	}
	return &authz.AuthUser{ID: 3, Role: authz.RoleUser}, nil
}

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := authz.UserFromContext(r.Context())
		if user == nil || user.ID != 3 {
			t.Fatalf("principal missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestWithAuth(t *testing.T) {
	handler := ChainMiddleware(protectedHandler(t), WithAuth(stubVerifier{token: "good"}), WithRequestID)

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{name: "missing token", target: "/api/v1/teams", want: http.StatusUnauthorized},
		{name: "bad token", target: "/api/v1/teams", header: "Bearer nope", want: http.StatusForbidden},
		{name: "bearer header", target: "/api/v1/teams", header: "Bearer good", want: http.StatusNoContent},
		{name: "lowercase scheme", target: "/api/v1/teams", header: "bearer good", want: http.StatusNoContent},
		{name: "query token", target: "/api/v1/reports/standings?format=csv&token=good", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)
			if recorder.Code != tt.want {
				t.Fatalf("status: got %d want %d", recorder.Code, tt.want)
			}
		})
	}
}

func TestWithRecovery(t *testing.T) {
	handler := ChainMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), WithRecovery, WithRequestID)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", recorder.Code)
	}
	if recorder.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestWithLoggingCapturesDefaultStatus(t *testing.T) {
	var captured *responseWriter
	handler := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = w.(*responseWriter)
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if captured == nil || captured.status != http.StatusOK {
		t.Fatalf("status not captured: %+v", captured)
	}
}

func TestWithCORSPreflight(t *testing.T) {
	handler := WithCORS([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin: %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.Header.Set("Origin", "http://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin for foreign site: %q", got)
	}
}
