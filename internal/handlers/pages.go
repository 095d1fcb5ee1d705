package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type pageData struct {
	Theme string
}

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "index", pageData{Theme: defaultTheme})
}

// Select handles GET /select
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "select", pageData{Theme: defaultTheme})
}

// Story handles GET /story?theme=
func (h *Handler) Story(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "story", pageData{Theme: themeFromQuery(r)})
}

// StoryEnd handles GET /story_end?theme=
func (h *Handler) StoryEnd(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "story_end", pageData{Theme: themeFromQuery(r)})
}

func themeFromQuery(r *http.Request) string {
	if theme := r.URL.Query().Get("theme"); theme != "" {
		return theme
	}
	return defaultTheme
}

func renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render page")
	}
}
