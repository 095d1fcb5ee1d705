package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/ehon-app/ehon/internal/prompt"
)

// themePattern is the allow-list for theme strings used as path segments.
// Unknown themes are valid as long as they match; anything else never
// reaches the filesystem or the provider.
var themePattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ImageGenerator is the provider surface the cover generator needs.
type ImageGenerator interface {
	Ready() (bool, string)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// CoverService generates and caches one cover image per theme. The cache
// path is derived only from the theme, so repeated generations share a
// stable public URL while the bytes change with each provider call.
type CoverService struct {
	client    ImageGenerator
	staticDir string
}

// NewCoverService creates a cover generator writing under <staticDir>/img.
func NewCoverService(client ImageGenerator, staticDir string) *CoverService {
	return &CoverService{
		client:    client,
		staticDir: staticDir,
	}
}

// Generate builds the theme prompt, asks the provider for a 1024x1024 image,
// and replaces <staticDir>/img/<theme>_cover.png atomically (temp file plus
// rename, so a concurrent reader never sees a half-written cover). It
// returns the public path /static/img/<theme>_cover.png.
func (s *CoverService) Generate(ctx context.Context, theme string) (string, error) {
	if !themePattern.MatchString(theme) {
		return "", &ValidationError{Message: "invalid theme: must match [a-z0-9_-]{1,64}"}
	}

	if ready, reason := s.client.Ready(); !ready {
		return "", &ConfigurationError{Reason: reason}
	}

	outDir := filepath.Join(s.staticDir, "img")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", &ProviderError{Op: "create image directory", Err: err}
	}

	b64, err := s.client.GenerateImage(ctx, prompt.ForTheme(theme))
	if err != nil {
		return "", &ProviderError{Op: "generate cover image", Err: err}
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", &ProviderError{Op: "decode cover image", Err: err}
	}

	// Each call writes its own temp file; concurrent regenerations of one
	// theme then race only on the final rename, where the last writer wins.
	tmp, err := os.CreateTemp(outDir, theme+"_cover-*.tmp")
	if err != nil {
		return "", &ProviderError{Op: "create cover temp file", Err: err}
	}
	tmpPath := tmp.Name()
	_, err = tmp.Write(raw)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", &ProviderError{Op: "write cover image", Err: err}
	}

	outPath := filepath.Join(outDir, theme+"_cover.png")
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return "", &ProviderError{Op: "replace cover image", Err: err}
	}

	log.Info().
		Str("theme", theme).
		Bool("curated", prompt.Known(theme)).
		Int("image_size_bytes", len(raw)).
		Str("path", outPath).
		Msg("Cover image generated")

	return "/static/img/" + theme + "_cover.png", nil
}
