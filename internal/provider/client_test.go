package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/ehon-app/ehon/internal/config"
)

// TestNewClient_NoKey asserts the unready state: construction succeeds, the
// reason is recorded, and every call fails fast with it.
func TestNewClient_NoKey(t *testing.T) {
	c := NewClient(&config.Config{
		SpeechModel: "gpt-4o-mini-tts",
		ImageModel:  "gpt-image-1",
	})

	ready, reason := c.Ready()
	if ready {
		t.Fatal("expected unready client without an API key")
	}
	if !strings.Contains(reason, "OPENAI_API_KEY") {
		t.Errorf("reason does not name the expected variable: %q", reason)
	}

	if _, err := c.Synthesize(context.Background(), "hello", "nova", ""); err == nil || !strings.Contains(err.Error(), reason) {
		t.Errorf("Synthesize on unready client: expected error carrying %q, got %v", reason, err)
	}
	if _, err := c.GenerateImage(context.Background(), "a prompt"); err == nil || !strings.Contains(err.Error(), reason) {
		t.Errorf("GenerateImage on unready client: expected error carrying %q, got %v", reason, err)
	}
}

// TestNewClient_WithKey asserts readiness once a key is present.
func TestNewClient_WithKey(t *testing.T) {
	c := NewClient(&config.Config{
		OpenAIAPIKey: "sk-test",
		SpeechModel:  "gpt-4o-mini-tts",
		ImageModel:   "gpt-image-1",
	})

	ready, reason := c.Ready()
	if !ready {
		t.Fatalf("expected ready client, got reason %q", reason)
	}
	if reason != "" {
		t.Errorf("expected empty reason when ready, got %q", reason)
	}
}
