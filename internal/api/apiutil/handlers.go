package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/leagues"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return leagues.Validation("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return leagues.Validation("missing request body")
		}
		return leagues.Validation(fmt.Sprintf("invalid JSON body: %v", err))
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return leagues.Validation("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// StatusForError maps an error kind to its HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, leagues.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, leagues.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, leagues.ErrInvalidRelationship):
		return http.StatusBadRequest
	case errors.Is(err, leagues.ErrConflict), errors.Is(err, leagues.ErrDependencyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body. Server errors are logged with
// their cause and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)
	message := leagues.Message(err)
	if status == http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		if !errors.Is(err, leagues.ErrStorage) {
			message = "Internal Server Error"
		}
	}

	if writeErr := WriteJSON(w, status, ErrorResponse{Error: message}); writeErr != nil {
		log.Ctx(r.Context()).Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// WriteErrorMessage writes a JSON error body with an explicit status.
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := WriteJSON(w, status, ErrorResponse{Error: message}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write error response")
	}
}

// WriteOK writes payload with status, logging encode failures.
func WriteOK(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := WriteJSON(w, status, payload); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}
