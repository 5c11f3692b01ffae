package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/slidegen/slidegen-api/internal/domain"
)

// PresentationStore defines the interface for presentation persistence.
type PresentationStore interface {
	// Create saves a new presentation to the store.
	// It handles domain validation internally.
	// Returns ErrShareTokenExists if the share token is already in use.
	Create(ctx context.Context, presentation *domain.Presentation) error

	// GetByID retrieves a presentation by its unique ID.
	// Returns ErrPresentationNotFound if the presentation does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Presentation, error)

	// GetByShareToken retrieves a presentation by its opaque share token.
	// This is the unauthenticated public-read path.
	// Returns ErrPresentationNotFound if no presentation has the token.
	GetByShareToken(ctx context.Context, token string) (*domain.Presentation, error)

	// List retrieves presentations ordered by creation time descending,
	// newest first, with limit/offset pagination. It also returns the total
	// number of presentations for pagination metadata.
	List(ctx context.Context, limit, offset int) ([]*domain.Presentation, int, error)

	// Update saves changes to an existing presentation.
	// Returns ErrPresentationNotFound if the presentation does not exist.
	// Returns validation errors if the presentation data is invalid.
	Update(ctx context.Context, presentation *domain.Presentation) error

	// Delete removes a presentation from the store by its ID.
	// Returns ErrPresentationNotFound if the presentation does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
