package apiutil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/codr1/Matchday/internal/leagues"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{leagues.Validation("bad"), http.StatusBadRequest},
		{leagues.NotFound("missing"), http.StatusNotFound},
		{leagues.InvalidRelationship("wrong team"), http.StatusBadRequest},
		{leagues.Conflict("dup"), http.StatusConflict},
		{leagues.DependencyExists("in use"), http.StatusConflict},
		{leagues.Storage("boom", errors.New("disk")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusForError(tt.err); got != tt.want {
			t.Fatalf("StatusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWriteErrorBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/9", nil)
	recorder := httptest.NewRecorder()

	WriteError(recorder, req, leagues.NotFound("team not found"))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: %d", recorder.Code)
	}
	var body ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "team not found" {
		t.Fatalf("message: %q", body.Error)
	}
}

func TestWriteErrorHidesUnexpectedCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	recorder := httptest.NewRecorder()

	WriteError(recorder, req, errors.New("secret connection string"))

	if strings.Contains(recorder.Body.String(), "secret") {
		t.Fatalf("leaked cause: %s", recorder.Body.String())
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Lions","colour":"gold"}`))
	var dst struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(req, &dst); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Lions"}{"name":"Tigers"}`))
	var dst struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(req, &dst); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/12", nil)
	req.SetPathValue("id", "12")
	id, err := PathID(req)
	if err != nil || id != 12 {
		t.Fatalf("got %d, %v", id, err)
	}

	req.SetPathValue("id", "-1")
	if _, err := PathID(req); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenderHTMLComponent(t *testing.T) {
	recorder := httptest.NewRecorder()
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})

	if !RenderHTMLComponent(context.Background(), recorder, component, map[string]string{"HX-Trigger": "refresh"}, "log", "user") {
		t.Fatal("expected render to succeed")
	}
	if recorder.Header().Get("Content-Type") != "text/html" || recorder.Header().Get("HX-Trigger") != "refresh" {
		t.Fatalf("headers: %v", recorder.Header())
	}
	if recorder.Body.String() != "<p>ok</p>" {
		t.Fatalf("body: %q", recorder.Body.String())
	}
}
