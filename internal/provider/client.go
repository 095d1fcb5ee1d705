package provider

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"

	"github.com/ehon-app/ehon/internal/config"
)

// Client wraps the OpenAI API client. It is the single choke point for all
// generative-media calls: speech synthesis and cover image synthesis.
//
// A Client is constructed once at process start and is immutable afterwards.
// When no API key is configured the Client is unready: it records the reason,
// Ready reports false, and every call fails fast without touching the network.
type Client struct {
	api         openai.Client
	ready       bool
	initErr     string
	speechModel string
	imageModel  string
}

// NewClient builds the adapter from config. Construction never fails the
// process; a missing key yields an unready client.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		speechModel: cfg.SpeechModel,
		imageModel:  cfg.ImageModel,
	}

	if cfg.OpenAIAPIKey == "" {
		c.initErr = "no API key configured (set OPENAI_API_KEY or API_KEY)"
		log.Warn().Str("error", c.initErr).Msg("OpenAI client not initialized")
		return c
	}

	c.api = openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	c.ready = true

	log.Info().
		Str("speech_model", c.speechModel).
		Str("image_model", c.imageModel).
		Msg("OpenAI client initialized")

	return c
}

// Ready reports whether the client was initialized, and the recorded
// initialization error when it was not.
func (c *Client) Ready() (bool, string) {
	return c.ready, c.initErr
}

// Synthesize converts text to speech and returns the MP3 response body as a
// stream. instructions is an optional read-aloud direction and may be empty.
// The caller owns the returned reader and must close it.
func (c *Client) Synthesize(ctx context.Context, text, voice, instructions string) (io.ReadCloser, error) {
	if !c.ready {
		return nil, fmt.Errorf("openai client is not initialized: %s", c.initErr)
	}

	params := openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.speechModel),
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}
	if instructions != "" {
		params.Instructions = openai.String(instructions)
	}

	res, err := c.api.Audio.Speech.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}

	log.Debug().
		Str("voice", voice).
		Int("text_length", len(text)).
		Msg("Speech synthesis response received")

	return res.Body, nil
}

// GenerateImage generates a 1024x1024 image for the prompt and returns the
// provider's base64 payload verbatim; decoding is the caller's concern.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.ready {
		return "", fmt.Errorf("openai client is not initialized: %s", c.initErr)
	}

	resp, err := c.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:  openai.ImageModel(c.imageModel),
		Prompt: prompt,
		Size:   openai.ImageGenerateParamsSize1024x1024,
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("image generation: no image payload in response")
	}

	log.Debug().
		Int("b64_length", len(resp.Data[0].B64JSON)).
		Msg("Image generation response received")

	return resp.Data[0].B64JSON, nil
}
