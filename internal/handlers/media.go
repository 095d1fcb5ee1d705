package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// defaultTheme is used wherever a request does not name a theme.
const defaultTheme = "red"

type ttsRequest struct {
	Text         string `json:"text"`
	Voice        string `json:"voice"`
	Instructions string `json:"instructions"`
}

type coverRequest struct {
	Theme string `json:"theme"`
}

// TTS handles POST /tts: synthesizes speech for the request text and streams
// the MP3 bytes back. Empty or whitespace-only text is rejected before the
// generator is ever invoked.
func (h *Handler) TTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	// A missing or malformed body is treated as an empty request, like any
	// other empty-text submission.
	_ = json.NewDecoder(r.Body).Decode(&req)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeJSONError(w, http.StatusBadRequest, "text が空です")
		return
	}

	path, err := h.speech.Generate(r.Context(), text, req.Voice, req.Instructions)
	if err != nil {
		log.Error().Err(err).Int("text_length", len(text)).Msg("Failed to generate speech")
		writeJSONError(w, statusForError(err), err.Error())
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to open generated audio")
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()
	// The synthesized file exists only to back this one response.
	defer os.Remove(path)

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := io.Copy(w, f); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to stream audio response")
	}
}

// GenerateCover handles POST /api/generate_cover: generates (or regenerates)
// the cached cover for the theme and returns its public path.
func (h *Handler) GenerateCover(w http.ResponseWriter, r *http.Request) {
	var req coverRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	theme := req.Theme
	if theme == "" {
		theme = defaultTheme
	}

	path, err := h.cover.Generate(r.Context(), theme)
	if err != nil {
		log.Error().Err(err).Str("theme", theme).Msg("Failed to generate cover")
		writeJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"path": path,
	})
}
