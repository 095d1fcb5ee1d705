package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHealth_Ready asserts the ready shape: client_error is JSON null.
func TestHealth_Ready(t *testing.T) {
	h := NewHandler(&fakeSpeech{}, &fakeCover{}, &fakeReadiness{ready: true}, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["has_key"] != true || resp["client_ready"] != true {
		t.Errorf("unexpected response %v", resp)
	}
	if resp["client_error"] != nil {
		t.Errorf("expected client_error null, got %v", resp["client_error"])
	}
}

// TestHealth_Unready asserts the unready shape carries the init error string.
func TestHealth_Unready(t *testing.T) {
	h := NewHandler(&fakeSpeech{}, &fakeCover{}, &fakeReadiness{ready: false, reason: "no API key configured"}, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["has_key"] != false || resp["client_ready"] != false {
		t.Errorf("unexpected response %v", resp)
	}
	if resp["client_error"] != "no API key configured" {
		t.Errorf("expected client_error string, got %v", resp["client_error"])
	}
}
