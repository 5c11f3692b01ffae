package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Presentation-specific validation errors
var (
	// ErrPresentationIDEmpty is returned when a presentation ID is empty or nil.
	ErrPresentationIDEmpty = errors.New("presentation ID cannot be empty")

	// ErrPresentationTitleEmpty is returned when a presentation's title is empty.
	ErrPresentationTitleEmpty = errors.New("presentation title cannot be empty")

	// ErrPresentationSourceURLEmpty is returned when a presentation's source URL is empty.
	ErrPresentationSourceURLEmpty = errors.New("presentation source URL cannot be empty")

	// ErrPresentationShareTokenEmpty is returned when a presentation's share token is empty.
	ErrPresentationShareTokenEmpty = errors.New("presentation share token cannot be empty")
)

// PlaceholderUserID is the created_by value used until real authentication
// is wired in. It matches the all-zero user id the dashboard expects.
var PlaceholderUserID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// Presentation wraps one generated deck together with its request metadata
// and sharing state. The slides are stored as opaque JSONB and handed to the
// renderer verbatim.
type Presentation struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ClientName string    `json:"client_name,omitempty"`
	SourceURL  string    `json:"source_url"`
	Theme      Theme     `json:"theme"`
	Slides     Deck      `json:"slides"`
	ShareToken string    `json:"share_token"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPresentation creates a new Presentation wrapping the given deck.
// It generates a new UUID for the presentation ID, a fresh opaque share
// token, and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewPresentation(
	title, clientName, sourceURL string,
	theme Theme,
	slides Deck,
	createdBy uuid.UUID,
) (*Presentation, error) {
	presentation := &Presentation{
		ID:         uuid.New(),
		Title:      title,
		ClientName: clientName,
		SourceURL:  sourceURL,
		Theme:      theme,
		Slides:     slides,
		ShareToken: uuid.NewString(),
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := presentation.Validate(); err != nil {
		return nil, err
	}

	return presentation, nil
}

// Validate checks if the Presentation has valid data.
// Returns an error if any field fails validation.
func (p *Presentation) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPresentationIDEmpty
	}

	if p.Title == "" {
		return ErrPresentationTitleEmpty
	}

	if p.SourceURL == "" {
		return ErrPresentationSourceURLEmpty
	}

	if !IsValidTheme(p.Theme) {
		return ErrInvalidTheme
	}

	if p.ShareToken == "" {
		return ErrPresentationShareTokenEmpty
	}

	return p.Slides.Validate()
}

// Touch updates the UpdatedAt timestamp after an edit.
func (p *Presentation) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
