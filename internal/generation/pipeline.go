package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/slidegen/slidegen-api/internal/domain"
)

// Pipeline sequences the generation stages: fetch the source URL, then
// synthesize the deck (which internally enriches images and validates).
// Each generation is stateless and independent; a Pipeline is safe for
// concurrent use.
type Pipeline struct {
	fetcher     ContentFetcher
	synthesizer DeckSynthesizer
	logger      *slog.Logger
}

// Ensure Pipeline implements the Generator interface
var _ Generator = (*Pipeline)(nil)

// NewPipeline creates a Pipeline with the provided collaborators.
// If logger is nil, a default logger will be used.
func NewPipeline(fetcher ContentFetcher, synthesizer DeckSynthesizer, logger *slog.Logger) *Pipeline {
	if fetcher == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("fetcher cannot be nil")
	}
	if synthesizer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("synthesizer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		fetcher:     fetcher,
		synthesizer: synthesizer,
		logger:      logger.With(slog.String("component", "generation_pipeline")),
	}
}

// GenerateDeck implements the Generator interface. It runs the pipeline to
// completion and returns either a finished deck or the first failure
// wrapped in a *PipelineError tagged with the failing stage. No stage is
// retried and no partial deck is ever returned.
func (p *Pipeline) GenerateDeck(ctx context.Context, params Params) (domain.Deck, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "starting deck generation",
		slog.String("source_url", params.SourceURL),
		slog.String("theme", string(params.Theme)),
		slog.String("mode", string(params.Mode)))

	content, err := p.fetcher.Fetch(ctx, params.SourceURL)
	if err != nil {
		p.logger.WarnContext(ctx, "source fetch failed",
			slog.String("source_url", params.SourceURL),
			slog.String("error", err.Error()))
		return nil, &PipelineError{Stage: StageFetch, Err: err}
	}

	deck, err := p.synthesizer.Synthesize(ctx, content, params)
	if err != nil {
		stage := StageSynthesize
		if errors.Is(err, ErrSchemaViolation) || errors.Is(err, ErrCountViolation) {
			stage = StageValidate
		}
		p.logger.WarnContext(ctx, "deck synthesis failed",
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()))
		return nil, &PipelineError{Stage: stage, Err: err}
	}

	p.logger.InfoContext(ctx, "deck generation completed",
		slog.Int("slide_count", len(deck)))
	return deck, nil
}
