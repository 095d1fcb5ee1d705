package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	// Server
	HTTPAddr string
	LogLevel string

	// Static assets; the cover cache lives under <StaticDir>/img
	StaticDir string

	// OpenAI API
	OpenAIAPIKey string
	SpeechModel  string // TTS model, e.g. gpt-4o-mini-tts
	SpeechVoice  string // default TTS voice, e.g. nova
	ImageModel   string // image generation, e.g. gpt-image-1
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StaticDir: getEnv("STATIC_DIR", "static"),

		// First non-empty name wins; API_KEY is the legacy fallback.
		OpenAIAPIKey: firstEnv("OPENAI_API_KEY", "API_KEY"),
		SpeechModel:  getEnv("OPENAI_SPEECH_MODEL", "gpt-4o-mini-tts"),
		SpeechVoice:  getEnv("OPENAI_SPEECH_VOICE", "nova"),
		ImageModel:   getEnv("OPENAI_IMAGE_MODEL", "gpt-image-1"),
	}
}

// HasKey reports whether an API key was found in the environment.
func (c *Config) HasKey() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the value of the first listed environment variable that is non-empty.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
