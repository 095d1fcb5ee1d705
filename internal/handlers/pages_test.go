package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestStory_ThemeFromQuery asserts the story page renders the requested
// theme, defaulting to red.
func TestStory_ThemeFromQuery(t *testing.T) {
	h := NewHandler(&fakeSpeech{}, &fakeCover{}, &fakeReadiness{ready: true}, true)

	tests := []struct {
		url   string
		theme string
	}{
		{"/story?theme=pigs", "pigs"},
		{"/story", "red"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.url, nil)
		rec := httptest.NewRecorder()

		h.Story(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tt.url, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `data-theme="`+tt.theme+`"`) {
			t.Errorf("%s: page does not carry theme %q", tt.url, tt.theme)
		}
	}
}

// TestPages_Render asserts every page template renders without error.
func TestPages_Render(t *testing.T) {
	h := NewHandler(&fakeSpeech{}, &fakeCover{}, &fakeReadiness{ready: true}, true)

	pages := map[string]http.HandlerFunc{
		"/":          h.Index,
		"/select":    h.Select,
		"/story":     h.Story,
		"/story_end": h.StoryEnd,
	}
	for url, handler := range pages {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", url, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: unexpected content type %s", url, ct)
		}
		if rec.Body.Len() == 0 {
			t.Errorf("%s: empty page body", url)
		}
	}
}
