package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ehon-app/ehon/internal/services"
)

// SpeechGenerator produces an MP3 file for text and returns its path.
type SpeechGenerator interface {
	Generate(ctx context.Context, text, voice, instructions string) (string, error)
}

// CoverGenerator produces a cached cover image and returns its public path.
type CoverGenerator interface {
	Generate(ctx context.Context, theme string) (string, error)
}

// Readiness reports provider-client state for the health endpoint.
type Readiness interface {
	Ready() (bool, string)
}

// Handler contains all HTTP handlers
type Handler struct {
	speech    SpeechGenerator
	cover     CoverGenerator
	readiness Readiness
	hasKey    bool
}

// NewHandler creates a new handler
func NewHandler(speech SpeechGenerator, cover CoverGenerator, readiness Readiness, hasKey bool) *Handler {
	return &Handler{
		speech:    speech,
		cover:     cover,
		readiness: readiness,
		hasKey:    hasKey,
	}
}

// statusForError maps the generator error taxonomy to an HTTP status:
// validation errors are the caller's fault, everything else is a 500.
func statusForError(err error) int {
	var valErr *services.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": message}); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON error response")
	}
}
