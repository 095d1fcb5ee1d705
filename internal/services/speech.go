package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SpeechSynthesizer is the provider surface the speech generator needs.
type SpeechSynthesizer interface {
	Ready() (bool, string)
	Synthesize(ctx context.Context, text, voice, instructions string) (io.ReadCloser, error)
}

// SpeechService turns input text into a playable MP3 file. Each call writes a
// fresh file under the OS temp directory; paths are never reused. The service
// does not delete finished files (the serving handler removes each one after
// streaming it),
// but a partial file from a failed stream copy is removed so callers never
// see an incomplete artifact.
type SpeechService struct {
	client       SpeechSynthesizer
	defaultVoice string
	tempDir      string // empty means os.TempDir()
}

// NewSpeechService creates a speech generator. defaultVoice is used when a
// request does not name a voice.
func NewSpeechService(client SpeechSynthesizer, defaultVoice string) *SpeechService {
	return &SpeechService{
		client:       client,
		defaultVoice: defaultVoice,
	}
}

// Generate synthesizes speech for text and returns the path of the written
// MP3 file. voice and instructions are optional. The caller has already
// rejected empty text; the adapter must be ready or the call fails fast.
func (s *SpeechService) Generate(ctx context.Context, text, voice, instructions string) (string, error) {
	if ready, reason := s.client.Ready(); !ready {
		return "", &ConfigurationError{Reason: reason}
	}

	if voice == "" {
		voice = s.defaultVoice
	}

	body, err := s.client.Synthesize(ctx, text, voice, instructions)
	if err != nil {
		return "", &ProviderError{Op: "synthesize speech", Err: err}
	}
	defer body.Close()

	dir := s.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "tts_"+uuid.New().String()+".mp3")

	f, err := os.Create(path)
	if err != nil {
		return "", &ProviderError{Op: "create audio file", Err: err}
	}

	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", &ProviderError{Op: "write audio file", Err: err}
	}

	log.Info().
		Str("path", path).
		Str("voice", voice).
		Int64("audio_size_bytes", written).
		Msg("Speech audio generated")

	return path, nil
}
