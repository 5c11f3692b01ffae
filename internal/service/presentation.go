package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
	"github.com/slidegen/slidegen-api/internal/platform/logger"
	"github.com/slidegen/slidegen-api/internal/store"
)

// PresentationService coordinates deck generation and persistence.
// Generation is synchronous: a presentation is saved only after the full
// pipeline has produced a validated deck, so a pipeline failure leaves
// nothing behind.
type PresentationService struct {
	generator generation.Generator
	presStore store.PresentationStore
	logger    *slog.Logger
}

// NewPresentationService creates a new PresentationService.
// If logger is nil, a default logger will be used.
func NewPresentationService(
	generator generation.Generator,
	presStore store.PresentationStore,
	logger *slog.Logger,
) *PresentationService {
	// ALLOW-PANIC: Constructor enforces required dependency
	if generator == nil {
		panic("generator cannot be nil")
	}
	// ALLOW-PANIC: Constructor enforces required dependency
	if presStore == nil {
		panic("presentation store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PresentationService{
		generator: generator,
		presStore: presStore,
		logger:    logger.With(slog.String("component", "presentation_service")),
	}
}

// GenerateAndSave runs the generation pipeline for the given parameters and
// persists the resulting presentation owned by createdBy.
// Pipeline failures are returned as *generation.PipelineError and nothing
// is persisted.
func (s *PresentationService) GenerateAndSave(
	ctx context.Context,
	params generation.Params,
	createdBy uuid.UUID,
) (*domain.Presentation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("starting presentation generation",
		slog.String("source_url", params.SourceURL),
		slog.String("theme", string(params.Theme)),
		slog.String("mode", string(params.Mode)))

	deck, err := s.generator.GenerateDeck(ctx, params)
	if err != nil {
		log.Warn("deck generation failed",
			slog.String("error", err.Error()),
			slog.String("source_url", params.SourceURL))
		return nil, err
	}

	presentation, err := domain.NewPresentation(
		params.Title,
		params.ClientName,
		params.SourceURL,
		params.Theme,
		deck,
		createdBy,
	)
	if err != nil {
		log.Error("generated deck produced an invalid presentation",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build presentation: %w", err)
	}

	if err := s.presStore.Create(ctx, presentation); err != nil {
		log.Error("failed to persist presentation",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return nil, err
	}

	log.Info("presentation generated and saved",
		slog.String("presentation_id", presentation.ID.String()),
		slog.Int("slide_count", len(presentation.Slides)))
	return presentation, nil
}

// Get retrieves a presentation by ID.
func (s *PresentationService) Get(ctx context.Context, id uuid.UUID) (*domain.Presentation, error) {
	return s.presStore.GetByID(ctx, id)
}

// GetShared retrieves a presentation by its share token.
func (s *PresentationService) GetShared(ctx context.Context, token string) (*domain.Presentation, error) {
	return s.presStore.GetByShareToken(ctx, token)
}

// List retrieves a page of presentations and the total count.
func (s *PresentationService) List(ctx context.Context, limit, offset int) ([]*domain.Presentation, int, error) {
	return s.presStore.List(ctx, limit, offset)
}

// Update applies the given mutable fields to an existing presentation.
// Empty title/clientName/theme arguments leave the stored values unchanged;
// a nil slides argument leaves the deck unchanged.
func (s *PresentationService) Update(
	ctx context.Context,
	id uuid.UUID,
	title, clientName string,
	theme domain.Theme,
	slides domain.Deck,
) (*domain.Presentation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	presentation, err := s.presStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		presentation.Title = title
	}
	if clientName != "" {
		presentation.ClientName = clientName
	}
	if theme != "" {
		if !domain.IsValidTheme(theme) {
			return nil, domain.ErrInvalidTheme
		}
		presentation.Theme = theme
	}
	if slides != nil {
		presentation.Slides = slides
	}
	presentation.Touch()

	if err := s.presStore.Update(ctx, presentation); err != nil {
		log.Warn("failed to update presentation",
			slog.String("error", err.Error()),
			slog.String("presentation_id", id.String()))
		return nil, err
	}

	return presentation, nil
}

// Delete removes a presentation by ID.
func (s *PresentationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.presStore.Delete(ctx, id)
}
