package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
)

// Synthesizer implements the generation.DeckSynthesizer interface. It
// composes the generation prompt, makes the single completion call, parses
// and validates the response, and enriches the validated deck with images.
type Synthesizer struct {
	backend  CompletionBackend
	enricher *generation.ImageEnricher
	logger   *slog.Logger
}

// Ensure Synthesizer implements the generation.DeckSynthesizer interface
var _ generation.DeckSynthesizer = (*Synthesizer)(nil)

// NewSynthesizer creates a Synthesizer with the provided backend and image
// enricher. If logger is nil, a default logger will be used.
func NewSynthesizer(backend CompletionBackend, enricher *generation.ImageEnricher, logger *slog.Logger) *Synthesizer {
	if backend == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("backend cannot be nil")
	}
	if enricher == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("enricher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Synthesizer{
		backend:  backend,
		enricher: enricher,
		logger:   logger.With(slog.String("component", "deck_synthesizer")),
	}
}

// Synthesize implements generation.DeckSynthesizer.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	content generation.SourceContent,
	params generation.Params,
) (domain.Deck, error) {
	prompt, err := buildPrompt(content, params)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "synthesizing deck",
		slog.String("mode", string(params.Mode)),
		slog.String("theme", string(params.Theme)),
		slog.Int("content_length", len(content.Body)))

	text, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// The model is instructed to emit only a JSON array. Its output is
	// untrusted; parse strictly and hand the result to the validator
	// before anything enters the Deck type.
	var raw []domain.Slide
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidJSON, err)
	}

	deck, err := generation.ValidateDeck(raw, params.Mode)
	if err != nil {
		return nil, err
	}

	s.enrichImages(ctx, deck)

	s.logger.InfoContext(ctx, "deck synthesized",
		slog.Int("slide_count", len(deck)))
	return deck, nil
}

// enrichImages resolves an image for every slide, using its image prompt or
// falling back to its title, and attaches results positionally. Resolution
// failures leave the image URL absent; the renderer applies a theme-default
// background.
func (s *Synthesizer) enrichImages(ctx context.Context, deck domain.Deck) {
	queries := make([]string, len(deck))
	for i := range deck {
		queries[i] = deck[i].ImagePrompt
		if queries[i] == "" {
			queries[i] = deck[i].Title
		}
	}

	urls := s.enricher.ResolveMany(ctx, queries)
	for i := range deck {
		deck[i].ImageURL = urls[i]
	}
}
