package generation

import (
	"context"

	"github.com/slidegen/slidegen-api/internal/domain"
)

// SourceContent is the normalized text retrieved from a source URL. It is
// produced once per generation, consumed only by the deck synthesizer, and
// never persisted.
type SourceContent struct {
	Title     string
	Body      string
	OriginURL string
}

// Params carries the caller-supplied inputs for one generation. It is
// immutable for the duration of the request.
type Params struct {
	SourceURL  string
	Title      string
	ClientName string
	Theme      domain.Theme
	Mode       domain.DeckMode
}

// Validate checks that the parameters are complete and reference defined
// theme and mode variants.
func (p Params) Validate() error {
	if p.SourceURL == "" {
		return domain.NewValidationError("source_url", "is required", domain.ErrValidation)
	}
	if p.Title == "" {
		return domain.NewValidationError("title", "is required", domain.ErrValidation)
	}
	if !domain.IsValidTheme(p.Theme) {
		return domain.NewValidationError("theme", "must be executive, minimal or tech", domain.ErrValidation)
	}
	if !domain.IsValidDeckMode(p.Mode) {
		return domain.NewValidationError("mode", "must be short or extended", domain.ErrValidation)
	}
	return nil
}

// Generator is the single externally callable entry point of the generation
// core. Implementations run the full fetch/synthesize/enrich/validate
// pipeline and either return a finished deck or a stage-classified error.
type Generator interface {
	// GenerateDeck produces a validated deck from the given parameters.
	// On failure it returns a *PipelineError identifying the failing stage.
	GenerateDeck(ctx context.Context, params Params) (domain.Deck, error)
}

// ContentFetcher retrieves and normalizes the raw text of a source URL.
// A single attempt is made; failures are terminal and classified as
// ErrFetchTimeout, ErrFetchStatus or ErrFetchNetwork.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (SourceContent, error)
}

// DeckSynthesizer builds a generation prompt from the source content and
// parameters, invokes the generative backend, and returns a validated,
// image-enriched deck.
type DeckSynthesizer interface {
	Synthesize(ctx context.Context, content SourceContent, params Params) (domain.Deck, error)
}

// ImageSearcher resolves a single search query to an image URL. An empty
// string with a nil error means no image was found; implementations with no
// configured credential return empty results without calling out.
type ImageSearcher interface {
	RandomImage(ctx context.Context, query string) (string, error)
}
