package generation

import (
	"context"
	"log/slog"
	"sync"
)

// ImageEnricher resolves a batch of image search queries concurrently,
// tolerating partial failure. Images are a cosmetic enhancement, so a failed
// or empty resolution yields an absent result rather than an error; the
// renderer falls back to a theme-default background.
type ImageEnricher struct {
	searcher ImageSearcher
	logger   *slog.Logger
}

// NewImageEnricher creates an ImageEnricher backed by the given searcher.
// If logger is nil, a default logger will be used.
func NewImageEnricher(searcher ImageSearcher, logger *slog.Logger) *ImageEnricher {
	if searcher == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("searcher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageEnricher{
		searcher: searcher,
		logger:   logger.With(slog.String("component", "image_enricher")),
	}
}

// ResolveMany resolves every query to an image URL, issuing all lookups
// concurrently and joining before returning. The result has the same length
// and order as the input; position i holds the URL for queries[i] or the
// empty string when no image could be resolved. Individual failures never
// fail the batch.
func (e *ImageEnricher) ResolveMany(ctx context.Context, queries []string) []string {
	results := make([]string, len(queries))
	if len(queries) == 0 {
		return results
	}

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			url, err := e.searcher.RandomImage(ctx, query)
			if err != nil {
				e.logger.WarnContext(ctx, "image resolution failed",
					slog.String("query", query),
					slog.String("error", err.Error()))
				return
			}
			results[i] = url
		}(i, query)
	}
	wg.Wait()

	return results
}
