package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/slidegen/slidegen-api/internal/config"
	"github.com/slidegen/slidegen-api/internal/generation"
)

// ErrInvalidConfig is returned when the backend configuration is invalid.
var ErrInvalidConfig = errors.New("invalid gemini configuration")

// CompletionBackend abstracts the single text-completion call the
// synthesizer makes per generation. Its only contract is "returns text that
// is supposed to be a JSON array matching the slide schema."
type CompletionBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiBackend implements CompletionBackend against the Gemini API.
type GeminiBackend struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	logger          *slog.Logger
}

// Ensure GeminiBackend implements the CompletionBackend interface
var _ CompletionBackend = (*GeminiBackend)(nil)

// NewGeminiBackend creates a GeminiBackend from the LLM configuration.
// Returns an error if the API key or model name is missing or the client
// cannot be constructed.
func NewGeminiBackend(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, err)
	}

	return &GeminiBackend{
		client:          client,
		model:           cfg.ModelName,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		logger:          logger.With(slog.String("component", "gemini_backend")),
	}, nil
}

// Complete implements CompletionBackend. It makes a single generation call;
// this is the long-latency, single-point-of-failure external call of the
// pipeline and is never retried here.
func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	b.logger.DebugContext(ctx, "calling Gemini API",
		slog.String("model", b.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: b.maxOutputTokens,
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrBackendFailure, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", generation.ErrBackendFailure)
	}

	b.logger.DebugContext(ctx, "Gemini API call succeeded",
		slog.Int("response_length", len(text)))
	return text, nil
}
